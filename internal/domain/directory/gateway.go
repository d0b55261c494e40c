package directory

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid record")
)

// Gateway is the persistence boundary for the directory. Implementations must
// return the full row on update so the store can apply an authoritative
// replace, and must order list results as documented.
type Gateway interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) (Employee, error)
	UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]Department, error)

	ListAttendanceByDate(ctx context.Context, date string) ([]AttendanceRecord, error)
	ListAllAttendance(ctx context.Context) ([]AttendanceRecord, error)

	IsEmpty(ctx context.Context) (bool, error)
	SeedAll(ctx context.Context, departments []Department, employees []Employee, attendance []AttendanceRecord) error
}
