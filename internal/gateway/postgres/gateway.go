// Package postgres implements the directory gateway on a PostgreSQL backend.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nexhr/internal/domain/directory"
	"nexhr/internal/gateway/rowmap"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// Queryer is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Gateway struct {
	db Queryer
}

func New(db Queryer) *Gateway {
	return &Gateway{db: db}
}

const employeeColumns = `id, first_name, last_name, email, phone, avatar, position,
       department, department_name, salary, start_date, status, location,
       manager, skills, performance, attendance_rate`

func (g *Gateway) ListEmployees(ctx context.Context) ([]directory.Employee, error) {
	rows, err := g.db.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []directory.Employee
	for rows.Next() {
		row, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rowmap.ToEmployee(row))
	}
	return out, rows.Err()
}

func (g *Gateway) CreateEmployee(ctx context.Context, emp directory.Employee) (directory.Employee, error) {
	emp.ID = uuid.NewString()
	row := rowmap.FromEmployee(emp)
	if row.Skills == nil {
		row.Skills = []string{}
	}

	returned := g.db.QueryRow(ctx, `
    INSERT INTO employees (id, first_name, last_name, email, phone, avatar, position,
      department, department_name, salary, start_date, status, location,
      manager, skills, performance, attendance_rate)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
    RETURNING `+employeeColumns+`
  `,
		row.ID, row.FirstName, row.LastName, row.Email, row.Phone, row.Avatar, row.Position,
		row.Department, row.DepartmentName, row.Salary, row.StartDate, row.Status, row.Location,
		row.Manager, row.Skills, row.Performance, row.AttendanceRate,
	)

	created, err := scanEmployeeRow(returned)
	if err != nil {
		return directory.Employee{}, translatePgError(err)
	}
	return rowmap.ToEmployee(created), nil
}

func (g *Gateway) UpdateEmployee(ctx context.Context, id string, update directory.EmployeeUpdate) (directory.Employee, error) {
	patch := rowmap.PatchFromUpdate(update)
	if len(patch.Columns) == 0 {
		// Nothing to change; return the current row.
		return g.getEmployee(ctx, id)
	}

	assignments := make([]string, 0, len(patch.Columns))
	for i, column := range patch.Columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
	}
	args := append(patch.Values, id)

	returned := g.db.QueryRow(ctx, fmt.Sprintf(`
    UPDATE employees
    SET %s
    WHERE id = $%d
    RETURNING %s
  `, strings.Join(assignments, ", "), len(args), employeeColumns), args...)

	updated, err := scanEmployeeRow(returned)
	if err != nil {
		return directory.Employee{}, translatePgError(err)
	}
	return rowmap.ToEmployee(updated), nil
}

func (g *Gateway) DeleteEmployee(ctx context.Context, id string) error {
	cmd, err := g.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return directory.ErrNotFound
	}
	return nil
}

func (g *Gateway) ListDepartments(ctx context.Context) ([]directory.Department, error) {
	rows, err := g.db.Query(ctx, `
    SELECT id, name, color, head_count, budget, manager_id, icon
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []directory.Department
	for rows.Next() {
		var row rowmap.DepartmentRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Color, &row.HeadCount, &row.Budget, &row.ManagerID, &row.Icon); err != nil {
			return nil, err
		}
		out = append(out, rowmap.ToDepartment(row))
	}
	return out, rows.Err()
}

const attendanceColumns = `id, employee_id, employee_name, date, check_in, check_out, status, hours_worked`

func (g *Gateway) ListAttendanceByDate(ctx context.Context, date string) ([]directory.AttendanceRecord, error) {
	rows, err := g.db.Query(ctx, `
    SELECT `+attendanceColumns+`
    FROM attendance_records
    WHERE date = $1
    ORDER BY employee_name
  `, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (g *Gateway) ListAllAttendance(ctx context.Context) ([]directory.AttendanceRecord, error) {
	rows, err := g.db.Query(ctx, `
    SELECT `+attendanceColumns+`
    FROM attendance_records
    ORDER BY date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func (g *Gateway) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := g.db.QueryRow(ctx, `SELECT COUNT(1) FROM employees`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

// SeedAll bulk-inserts the fixture collections. Inserts are sequential with
// no rollback on partial failure.
func (g *Gateway) SeedAll(ctx context.Context, departments []directory.Department, employees []directory.Employee, attendance []directory.AttendanceRecord) error {
	for _, dep := range departments {
		row := rowmap.FromDepartment(dep)
		if _, err := g.db.Exec(ctx, `
      INSERT INTO departments (id, name, color, head_count, budget, manager_id, icon)
      VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, row.ID, row.Name, row.Color, row.HeadCount, row.Budget, row.ManagerID, row.Icon); err != nil {
			return translatePgError(err)
		}
	}
	for _, emp := range employees {
		row := rowmap.FromEmployee(emp)
		if row.Skills == nil {
			row.Skills = []string{}
		}
		if _, err := g.db.Exec(ctx, `
      INSERT INTO employees (id, first_name, last_name, email, phone, avatar, position,
        department, department_name, salary, start_date, status, location,
        manager, skills, performance, attendance_rate)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
    `,
			row.ID, row.FirstName, row.LastName, row.Email, row.Phone, row.Avatar, row.Position,
			row.Department, row.DepartmentName, row.Salary, row.StartDate, row.Status, row.Location,
			row.Manager, row.Skills, row.Performance, row.AttendanceRate,
		); err != nil {
			return translatePgError(err)
		}
	}
	for _, rec := range attendance {
		row := rowmap.FromAttendance(rec)
		if _, err := g.db.Exec(ctx, `
      INSERT INTO attendance_records (id, employee_id, employee_name, date, check_in, check_out, status, hours_worked)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, row.ID, row.EmployeeID, row.EmployeeName, row.Date, row.CheckIn, row.CheckOut, row.Status, row.HoursWorked); err != nil {
			return translatePgError(err)
		}
	}
	return nil
}

func (g *Gateway) getEmployee(ctx context.Context, id string) (directory.Employee, error) {
	returned := g.db.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	row, err := scanEmployeeRow(returned)
	if err != nil {
		return directory.Employee{}, translatePgError(err)
	}
	return rowmap.ToEmployee(row), nil
}

func scanEmployeeRow(row pgx.Row) (rowmap.EmployeeRow, error) {
	var out rowmap.EmployeeRow
	err := row.Scan(
		&out.ID, &out.FirstName, &out.LastName, &out.Email, &out.Phone, &out.Avatar, &out.Position,
		&out.Department, &out.DepartmentName, &out.Salary, &out.StartDate, &out.Status, &out.Location,
		&out.Manager, &out.Skills, &out.Performance, &out.AttendanceRate,
	)
	return out, err
}

func collectAttendance(rows pgx.Rows) ([]directory.AttendanceRecord, error) {
	var out []directory.AttendanceRecord
	for rows.Next() {
		var row rowmap.AttendanceRow
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.EmployeeName, &row.Date, &row.CheckIn, &row.CheckOut, &row.Status, &row.HoursWorked); err != nil {
			return nil, err
		}
		out = append(out, rowmap.ToAttendance(row))
	}
	return out, rows.Err()
}

func translatePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return directory.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode, foreignKeyViolationCode, checkViolationCode:
			return fmt.Errorf("%w: %s", directory.ErrValidation, pgErr.Message)
		}
	}
	return err
}
