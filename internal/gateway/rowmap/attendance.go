package rowmap

import "nexhr/internal/domain/directory"

type AttendanceRow struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Status       string  `json:"status"`
	HoursWorked  float64 `json:"hours_worked"`
}

func ToAttendance(row AttendanceRow) directory.AttendanceRecord {
	return directory.AttendanceRecord{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Date:         row.Date,
		CheckIn:      row.CheckIn,
		CheckOut:     row.CheckOut,
		Status:       row.Status,
		HoursWorked:  row.HoursWorked,
	}
}

func FromAttendance(rec directory.AttendanceRecord) AttendanceRow {
	return AttendanceRow{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		Status:       rec.Status,
		HoursWorked:  rec.HoursWorked,
	}
}
