package directory

import "strings"

// SortField is the closed set of employee fields the directory can order by.
// Unknown inputs fall back to SortByFirstName instead of producing a
// degenerate empty-key sort.
type SortField string

const (
	SortByFirstName      SortField = "firstName"
	SortByLastName       SortField = "lastName"
	SortByEmail          SortField = "email"
	SortByPosition       SortField = "position"
	SortByDepartment     SortField = "departmentName"
	SortBySalary         SortField = "salary"
	SortByStartDate      SortField = "startDate"
	SortByStatus         SortField = "status"
	SortByPerformance    SortField = "performance"
	SortByAttendanceRate SortField = "attendanceRate"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

type comparator func(a, b Employee) int

var comparators = map[SortField]comparator{
	SortByFirstName:      func(a, b Employee) int { return compareFold(a.FirstName, b.FirstName) },
	SortByLastName:       func(a, b Employee) int { return compareFold(a.LastName, b.LastName) },
	SortByEmail:          func(a, b Employee) int { return compareFold(a.Email, b.Email) },
	SortByPosition:       func(a, b Employee) int { return compareFold(a.Position, b.Position) },
	SortByDepartment:     func(a, b Employee) int { return compareFold(a.DepartmentName, b.DepartmentName) },
	SortBySalary:         func(a, b Employee) int { return compareFloat(a.Salary, b.Salary) },
	SortByStartDate:      func(a, b Employee) int { return strings.Compare(a.StartDate, b.StartDate) },
	SortByStatus:         func(a, b Employee) int { return compareFold(a.Status, b.Status) },
	SortByPerformance:    func(a, b Employee) int { return compareFloat(a.Performance, b.Performance) },
	SortByAttendanceRate: func(a, b Employee) int { return compareFloat(a.AttendanceRate, b.AttendanceRate) },
}

// ParseSortField maps arbitrary input to a known field, defaulting to
// first name.
func ParseSortField(value string) SortField {
	field := SortField(value)
	if _, ok := comparators[field]; ok {
		return field
	}
	return SortByFirstName
}

func ParseSortDir(value string) SortDir {
	if SortDir(value) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
