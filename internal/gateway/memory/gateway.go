// Package memory implements the directory gateway on in-memory row
// collections. It backs local development and tests, and is the alternate
// persistence path when no database is configured. Rows are stored in the
// persistence shape so the row mapping stays load-bearing on this path too.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"nexhr/internal/domain/directory"
	"nexhr/internal/gateway/rowmap"
)

type Gateway struct {
	mu          sync.Mutex
	employees   []rowmap.EmployeeRow
	departments []rowmap.DepartmentRow
	attendance  []rowmap.AttendanceRow
}

func New() *Gateway {
	return &Gateway{}
}

func (g *Gateway) ListEmployees(ctx context.Context) ([]directory.Employee, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := make([]rowmap.EmployeeRow, len(g.employees))
	copy(rows, g.employees)
	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].FirstName) < strings.ToLower(rows[j].FirstName)
	})

	out := make([]directory.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowmap.ToEmployee(row))
	}
	return out, nil
}

func (g *Gateway) CreateEmployee(ctx context.Context, emp directory.Employee) (directory.Employee, error) {
	if emp.FirstName == "" || emp.LastName == "" || emp.Email == "" {
		return directory.Employee{}, fmt.Errorf("%w: first name, last name and email are required", directory.ErrValidation)
	}

	emp.ID = uuid.NewString()
	row := rowmap.FromEmployee(emp)
	if row.Skills == nil {
		row.Skills = []string{}
	}

	g.mu.Lock()
	g.employees = append(g.employees, row)
	g.mu.Unlock()
	return rowmap.ToEmployee(row), nil
}

func (g *Gateway) UpdateEmployee(ctx context.Context, id string, update directory.EmployeeUpdate) (directory.Employee, error) {
	patch := rowmap.PatchFromUpdate(update)

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.employees {
		if g.employees[i].ID != id {
			continue
		}
		row := g.employees[i]
		if err := applyPatch(&row, patch); err != nil {
			return directory.Employee{}, err
		}
		g.employees[i] = row
		return rowmap.ToEmployee(row), nil
	}
	return directory.Employee{}, directory.ErrNotFound
}

func (g *Gateway) DeleteEmployee(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.employees {
		if g.employees[i].ID == id {
			g.employees = append(g.employees[:i], g.employees[i+1:]...)
			return nil
		}
	}
	return directory.ErrNotFound
}

func (g *Gateway) ListDepartments(ctx context.Context) ([]directory.Department, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := make([]rowmap.DepartmentRow, len(g.departments))
	copy(rows, g.departments)
	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})

	out := make([]directory.Department, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowmap.ToDepartment(row))
	}
	return out, nil
}

func (g *Gateway) ListAttendanceByDate(ctx context.Context, date string) ([]directory.AttendanceRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var rows []rowmap.AttendanceRow
	for _, row := range g.attendance {
		if row.Date == date {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	out := make([]directory.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowmap.ToAttendance(row))
	}
	return out, nil
}

func (g *Gateway) ListAllAttendance(ctx context.Context) ([]directory.AttendanceRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := make([]rowmap.AttendanceRow, len(g.attendance))
	copy(rows, g.attendance)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})

	out := make([]directory.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowmap.ToAttendance(row))
	}
	return out, nil
}

func (g *Gateway) IsEmpty(ctx context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.employees) == 0, nil
}

func (g *Gateway) SeedAll(ctx context.Context, departments []directory.Department, employees []directory.Employee, attendance []directory.AttendanceRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, dep := range departments {
		g.departments = append(g.departments, rowmap.FromDepartment(dep))
	}
	for _, emp := range employees {
		row := rowmap.FromEmployee(emp)
		if row.Skills == nil {
			row.Skills = []string{}
		}
		g.employees = append(g.employees, row)
	}
	for _, rec := range attendance {
		g.attendance = append(g.attendance, rowmap.FromAttendance(rec))
	}
	return nil
}

// applyPatch writes the patch's columns onto the stored row, mirroring what
// the SQL SET clause does on the database path.
func applyPatch(row *rowmap.EmployeeRow, patch rowmap.EmployeePatch) error {
	for i, column := range patch.Columns {
		value := patch.Values[i]
		switch column {
		case "first_name":
			row.FirstName = value.(string)
		case "last_name":
			row.LastName = value.(string)
		case "email":
			row.Email = value.(string)
		case "phone":
			row.Phone = value.(string)
		case "avatar":
			row.Avatar = value.(string)
		case "position":
			row.Position = value.(string)
		case "department":
			row.Department = value.(string)
		case "department_name":
			row.DepartmentName = value.(string)
		case "salary":
			row.Salary = value.(float64)
		case "start_date":
			row.StartDate = value.(string)
		case "status":
			row.Status = value.(string)
		case "location":
			row.Location = value.(string)
		case "manager":
			if value == nil {
				row.Manager = nil
			} else {
				manager := value.(string)
				row.Manager = &manager
			}
		case "skills":
			row.Skills = value.([]string)
		case "performance":
			row.Performance = value.(float64)
		case "attendance_rate":
			row.AttendanceRate = value.(float64)
		default:
			return fmt.Errorf("%w: unknown column %s", directory.ErrValidation, column)
		}
	}
	return nil
}
