// Package rowmap converts between the application's record shapes and the
// persistence layer's row shapes (snake_case columns, SQL NULL for absent
// optional values). Conversions are total and lossless in both directions;
// any naming drift here silently breaks persistence, so the round-trip law
// is covered by tests.
package rowmap

import "nexhr/internal/domain/directory"

type EmployeeRow struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Avatar         string   `json:"avatar"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	DepartmentName string   `json:"department_name"`
	Salary         float64  `json:"salary"`
	StartDate      string   `json:"start_date"`
	Status         string   `json:"status"`
	Location       string   `json:"location"`
	Manager        *string  `json:"manager"`
	Skills         []string `json:"skills"`
	Performance    float64  `json:"performance"`
	AttendanceRate float64  `json:"attendance_rate"`
}

func ToEmployee(row EmployeeRow) directory.Employee {
	return directory.Employee{
		ID:             row.ID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		Phone:          row.Phone,
		Avatar:         row.Avatar,
		Position:       row.Position,
		Department:     row.Department,
		DepartmentName: row.DepartmentName,
		Salary:         row.Salary,
		StartDate:      row.StartDate,
		Status:         row.Status,
		Location:       row.Location,
		Manager:        row.Manager,
		Skills:         row.Skills,
		Performance:    row.Performance,
		AttendanceRate: row.AttendanceRate,
	}
}

// FromEmployee builds a full row payload. The identifier travels only when
// the record already carries one, distinguishing create payloads from
// already-identified rows.
func FromEmployee(emp directory.Employee) EmployeeRow {
	return EmployeeRow{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Avatar:         emp.Avatar,
		Position:       emp.Position,
		Department:     emp.Department,
		DepartmentName: emp.DepartmentName,
		Salary:         emp.Salary,
		StartDate:      emp.StartDate,
		Status:         emp.Status,
		Location:       emp.Location,
		Manager:        emp.Manager,
		Skills:         emp.Skills,
		Performance:    emp.Performance,
		AttendanceRate: emp.AttendanceRate,
	}
}

// EmployeePatch lists only the columns explicitly present in a partial
// update, in a stable order suitable for building a SET clause.
type EmployeePatch struct {
	Columns []string
	Values  []any
}

func (p *EmployeePatch) add(column string, value any) {
	p.Columns = append(p.Columns, column)
	p.Values = append(p.Values, value)
}

// PatchFromUpdate translates a partial edit into row columns. An explicit
// null manager clears the stored value; untouched fields produce no column.
func PatchFromUpdate(update directory.EmployeeUpdate) EmployeePatch {
	var patch EmployeePatch
	if update.FirstName != nil {
		patch.add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		patch.add("last_name", *update.LastName)
	}
	if update.Email != nil {
		patch.add("email", *update.Email)
	}
	if update.Phone != nil {
		patch.add("phone", *update.Phone)
	}
	if update.Avatar != nil {
		patch.add("avatar", *update.Avatar)
	}
	if update.Position != nil {
		patch.add("position", *update.Position)
	}
	if update.Department != nil {
		patch.add("department", *update.Department)
	}
	if update.DepartmentName != nil {
		patch.add("department_name", *update.DepartmentName)
	}
	if update.Salary != nil {
		patch.add("salary", *update.Salary)
	}
	if update.StartDate != nil {
		patch.add("start_date", *update.StartDate)
	}
	if update.Status != nil {
		patch.add("status", *update.Status)
	}
	if update.Location != nil {
		patch.add("location", *update.Location)
	}
	if update.ManagerSet {
		if update.Manager != nil {
			patch.add("manager", *update.Manager)
		} else {
			patch.add("manager", nil)
		}
	}
	if update.Skills != nil {
		patch.add("skills", *update.Skills)
	}
	if update.Performance != nil {
		patch.add("performance", *update.Performance)
	}
	if update.AttendanceRate != nil {
		patch.add("attendance_rate", *update.AttendanceRate)
	}
	return patch
}
