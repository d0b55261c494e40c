package directory

import "encoding/json"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on-leave"
	EmployeeStatusRemote   = "remote"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusHalfDay = "half-day"
	AttendanceStatusRemote  = "remote"
)

type Employee struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Avatar         string   `json:"avatar"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	DepartmentName string   `json:"departmentName"`
	Salary         float64  `json:"salary"`
	StartDate      string   `json:"startDate"`
	Status         string   `json:"status"`
	Location       string   `json:"location"`
	Manager        *string  `json:"manager,omitempty"`
	Skills         []string `json:"skills"`
	Performance    float64  `json:"performance"`
	AttendanceRate float64  `json:"attendanceRate"`
}

type Department struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	HeadCount int     `json:"headCount"`
	Budget    int64   `json:"budget"`
	ManagerID *string `json:"managerId,omitempty"`
	Icon      string  `json:"icon"`
}

type AttendanceRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	Status       string  `json:"status"`
	HoursWorked  float64 `json:"hoursWorked"`
}

// EmployeeUpdate carries a partial employee edit. Nil pointers mean the field
// is untouched by the write. Manager is tri-state (untouched, cleared, set),
// so it gets an explicit presence flag filled in by UnmarshalJSON.
type EmployeeUpdate struct {
	FirstName      *string   `json:"firstName,omitempty"`
	LastName       *string   `json:"lastName,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Avatar         *string   `json:"avatar,omitempty"`
	Position       *string   `json:"position,omitempty"`
	Department     *string   `json:"department,omitempty"`
	DepartmentName *string   `json:"departmentName,omitempty"`
	Salary         *float64  `json:"salary,omitempty"`
	StartDate      *string   `json:"startDate,omitempty"`
	Status         *string   `json:"status,omitempty"`
	Location       *string   `json:"location,omitempty"`
	Manager        *string   `json:"-"`
	ManagerSet     bool      `json:"-"`
	Skills         *[]string `json:"skills,omitempty"`
	Performance    *float64  `json:"performance,omitempty"`
	AttendanceRate *float64  `json:"attendanceRate,omitempty"`
}

func (u *EmployeeUpdate) UnmarshalJSON(data []byte) error {
	type plain EmployeeUpdate
	aux := struct {
		*plain
		Manager json.RawMessage `json:"manager"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Manager != nil {
		u.ManagerSet = true
		if string(aux.Manager) != "null" {
			var manager string
			if err := json.Unmarshal(aux.Manager, &manager); err != nil {
				return err
			}
			u.Manager = &manager
		}
	}
	return nil
}

// FullName is the display form used by search and attendance denormalization.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
