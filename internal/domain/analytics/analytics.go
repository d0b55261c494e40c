// Package analytics computes the dashboard aggregates over the directory
// collections.
package analytics

import (
	"math"

	"nexhr/internal/domain/directory"
)

type Overview struct {
	TotalEmployees    int            `json:"totalEmployees"`
	AvgPerformance    float64        `json:"avgPerformance"`
	AvgAttendanceRate float64        `json:"avgAttendanceRate"`
	TotalSalary       float64        `json:"totalSalary"`
	StatusCounts      map[string]int `json:"statusCounts"`
}

type DepartmentStats struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	Icon           string  `json:"icon"`
	HeadCount      int     `json:"headCount"`
	Budget         int64   `json:"budget"`
	EmployeeCount  int     `json:"employeeCount"`
	AvgPerformance float64 `json:"avgPerformance"`
	AvgSalary      float64 `json:"avgSalary"`
}

type DaySummary struct {
	Date       string  `json:"date"`
	Present    int     `json:"present"`
	Remote     int     `json:"remote"`
	Late       int     `json:"late"`
	Absent     int     `json:"absent"`
	HalfDay    int     `json:"halfDay"`
	TotalHours float64 `json:"totalHours"`
}

// ComputeOverview summarizes the employee collection. Averages are rounded
// to the nearest integer, matching the dashboard's display.
func ComputeOverview(employees []directory.Employee) Overview {
	overview := Overview{
		TotalEmployees: len(employees),
		StatusCounts:   map[string]int{},
	}
	if len(employees) == 0 {
		return overview
	}

	var perf, attendance float64
	for _, emp := range employees {
		perf += emp.Performance
		attendance += emp.AttendanceRate
		overview.TotalSalary += emp.Salary
		overview.StatusCounts[emp.Status]++
	}
	overview.AvgPerformance = math.Round(perf / float64(len(employees)))
	overview.AvgAttendanceRate = math.Round(attendance / float64(len(employees)))
	return overview
}

// ComputeDepartmentStats joins each department with its current members.
// Departments are returned in collection order; HeadCount stays the seeded
// informational figure while EmployeeCount reflects actual membership.
func ComputeDepartmentStats(departments []directory.Department, employees []directory.Employee) []DepartmentStats {
	stats := make([]DepartmentStats, 0, len(departments))
	for _, dep := range departments {
		entry := DepartmentStats{
			ID:        dep.ID,
			Name:      dep.Name,
			Color:     dep.Color,
			Icon:      dep.Icon,
			HeadCount: dep.HeadCount,
			Budget:    dep.Budget,
		}
		var perf, salary float64
		for _, emp := range employees {
			if emp.Department != dep.ID {
				continue
			}
			entry.EmployeeCount++
			perf += emp.Performance
			salary += emp.Salary
		}
		if entry.EmployeeCount > 0 {
			entry.AvgPerformance = math.Round(perf / float64(entry.EmployeeCount))
			entry.AvgSalary = salary / float64(entry.EmployeeCount)
		}
		stats = append(stats, entry)
	}
	return stats
}

// SummarizeDay tallies one day's attendance records by status.
func SummarizeDay(date string, records []directory.AttendanceRecord) DaySummary {
	summary := DaySummary{Date: date}
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		switch rec.Status {
		case directory.AttendanceStatusPresent:
			summary.Present++
		case directory.AttendanceStatusRemote:
			summary.Remote++
		case directory.AttendanceStatusLate:
			summary.Late++
		case directory.AttendanceStatusAbsent:
			summary.Absent++
		case directory.AttendanceStatusHalfDay:
			summary.HalfDay++
		}
		summary.TotalHours += rec.HoursWorked
	}
	return summary
}
