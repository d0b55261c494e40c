// Package reports renders printable directory reports.
package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"nexhr/internal/domain/analytics"
	"nexhr/internal/domain/directory"
)

type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// GenerateDirectoryPDF writes a department-by-department roster summary and
// returns the file path.
func (s *Service) GenerateDirectoryPDF(departments []directory.Department, employees []directory.Employee) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.dir, fmt.Sprintf("directory-%s.pdf", time.Now().Format("2006-01-02")))

	overview := analytics.ComputeOverview(employees)
	stats := analytics.ComputeDepartmentStats(departments, employees)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Directory")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d", overview.TotalEmployees))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average performance: %.0f", overview.AvgPerformance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average attendance: %.0f%%", overview.AvgAttendanceRate))
	pdf.Ln(10)

	for _, dep := range stats {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%d)", dep.Name, dep.EmployeeCount))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, emp := range employees {
			if emp.Department != dep.ID {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s - %s, %s", emp.FullName(), emp.Position, emp.Location))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
