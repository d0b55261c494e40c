package directory

import (
	"context"
	"errors"
	"testing"
)

// fakeGateway records calls and returns canned results.
type fakeGateway struct {
	employees   []Employee
	departments []Department
	attendance  []AttendanceRecord

	listEmployeesErr   error
	listDepartmentsErr error
	createErr          error
	updateErr          error
	deleteErr          error

	created Employee
	updated Employee
	deleted []string
}

func (f *fakeGateway) ListEmployees(ctx context.Context) ([]Employee, error) {
	if f.listEmployeesErr != nil {
		return nil, f.listEmployeesErr
	}
	return f.employees, nil
}

func (f *fakeGateway) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	if f.createErr != nil {
		return Employee{}, f.createErr
	}
	emp.ID = "generated-id"
	f.created = emp
	return emp, nil
}

func (f *fakeGateway) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (Employee, error) {
	if f.updateErr != nil {
		return Employee{}, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeGateway) DeleteEmployee(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGateway) ListDepartments(ctx context.Context) ([]Department, error) {
	if f.listDepartmentsErr != nil {
		return nil, f.listDepartmentsErr
	}
	return f.departments, nil
}

func (f *fakeGateway) ListAttendanceByDate(ctx context.Context, date string) ([]AttendanceRecord, error) {
	return f.attendance, nil
}

func (f *fakeGateway) ListAllAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	return f.attendance, nil
}

func (f *fakeGateway) IsEmpty(ctx context.Context) (bool, error) {
	return len(f.employees) == 0, nil
}

func (f *fakeGateway) SeedAll(ctx context.Context, departments []Department, employees []Employee, attendance []AttendanceRecord) error {
	return nil
}

func sampleEmployees() []Employee {
	return []Employee{
		{ID: "1", FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@nexhr.com", Position: "Senior Software Engineer", Department: "eng", DepartmentName: "Engineering", Status: EmployeeStatusActive, Salary: 145000},
		{ID: "2", FirstName: "Marcus", LastName: "Rodriguez", Email: "marcus.r@nexhr.com", Position: "UX Design Lead", Department: "design", DepartmentName: "Design", Status: EmployeeStatusActive, Salary: 125000},
		{ID: "3", FirstName: "Aisha", LastName: "Patel", Email: "aisha.patel@nexhr.com", Position: "Sales Director", Department: "sales", DepartmentName: "Sales", Status: EmployeeStatusRemote, Salary: 165000},
	}
}

func loadedStore(t *testing.T, gateway *fakeGateway) *Store {
	t.Helper()
	store := NewStore(gateway)
	if err := store.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	return store
}

func TestFetchAllAbortsWhenEitherLoadFails(t *testing.T) {
	gateway := &fakeGateway{
		employees:          sampleEmployees(),
		listDepartmentsErr: errors.New("boom"),
	}
	store := NewStore(gateway)

	if err := store.FetchAll(context.Background()); err == nil {
		t.Fatal("expected FetchAll to fail")
	}
	if len(store.Employees()) != 0 {
		t.Fatal("failed FetchAll must not replace collections")
	}
}

func TestSearchMatchesAnyOfFourFields(t *testing.T) {
	store := loadedStore(t, &fakeGateway{employees: sampleEmployees()})

	cases := []struct {
		query string
		want  string
	}{
		{"chen", "1"},        // full name
		{"marcus.r@", "2"},   // email
		{"sales direc", "3"}, // position
		{"design", "2"},      // department name
	}
	for _, tc := range cases {
		store.SetSearchQuery(tc.query)
		got := store.FilteredEmployees()
		if len(got) != 1 || got[0].ID != tc.want {
			t.Fatalf("query %q: expected only employee %s, got %v", tc.query, tc.want, got)
		}
	}

	store.SetSearchQuery("no such person")
	if got := store.FilteredEmployees(); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFiltersCompose(t *testing.T) {
	store := loadedStore(t, &fakeGateway{employees: sampleEmployees()})

	store.SetSelectedDepartment("eng")
	got := store.FilteredEmployees()
	if len(got) != 1 || got[0].Department != "eng" {
		t.Fatalf("department filter: got %v", got)
	}

	store.SetSelectedDepartment(FilterAll)
	store.SetSelectedStatus(EmployeeStatusRemote)
	got = store.FilteredEmployees()
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("status filter: got %v", got)
	}

	// 'all' restricts nothing.
	store.SetSelectedStatus(FilterAll)
	if got = store.FilteredEmployees(); len(got) != 3 {
		t.Fatalf("expected all 3 employees, got %d", len(got))
	}
}

func TestSortDirectionReversesOrder(t *testing.T) {
	store := loadedStore(t, &fakeGateway{employees: sampleEmployees()})
	store.SetSortField(SortBySalary)

	store.SetSortDir(SortAsc)
	asc := store.FilteredEmployees()
	store.SetSortDir(SortDesc)
	desc := store.FilteredEmployees()

	if asc[0].ID != "2" || asc[2].ID != "3" {
		t.Fatalf("ascending salary order wrong: %v", asc)
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatal("descending order is not the reverse of ascending")
		}
	}
}

func TestSortIsDeterministic(t *testing.T) {
	store := loadedStore(t, &fakeGateway{employees: sampleEmployees()})
	store.SetSortField(SortByLastName)

	first := store.FilteredEmployees()
	second := store.FilteredEmployees()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("repeated calls must return identical ordering")
		}
	}
}

func TestAddEmployeeCommitsAfterGatewaySuccess(t *testing.T) {
	gateway := &fakeGateway{
		employees:   sampleEmployees(),
		departments: []Department{{ID: "eng", Name: "Engineering"}},
	}
	store := loadedStore(t, gateway)

	created, err := store.AddEmployee(context.Background(), Employee{
		FirstName: "New", LastName: "Hire", Email: "new.hire@nexhr.com",
		Department: "eng", DepartmentName: "stale name",
	})
	if err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}
	if created.ID != "generated-id" {
		t.Fatalf("expected gateway-generated id, got %q", created.ID)
	}
	if gateway.created.DepartmentName != "Engineering" {
		t.Fatalf("department name not re-resolved before write: %q", gateway.created.DepartmentName)
	}

	count := 0
	for _, emp := range store.Employees() {
		if emp.ID == created.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected new id exactly once, found %d", count)
	}
}

func TestAddEmployeeFailureLeavesCollectionUnchanged(t *testing.T) {
	gateway := &fakeGateway{employees: sampleEmployees(), createErr: errors.New("rejected")}
	store := loadedStore(t, gateway)

	if _, err := store.AddEmployee(context.Background(), Employee{FirstName: "X"}); err == nil {
		t.Fatal("expected create error")
	}
	if len(store.Employees()) != 3 {
		t.Fatal("failed create must not mutate the collection")
	}
}

func TestUpdateEmployeeReplacesWithGatewayRow(t *testing.T) {
	authoritative := Employee{ID: "1", FirstName: "Sarah", LastName: "Chen", Email: "updated@nexhr.com", Department: "eng", DepartmentName: "Engineering", Status: EmployeeStatusActive}
	gateway := &fakeGateway{employees: sampleEmployees(), updated: authoritative}
	store := loadedStore(t, gateway)

	email := "updated@nexhr.com"
	got, err := store.UpdateEmployee(context.Background(), "1", EmployeeUpdate{Email: &email})
	if err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}
	if got.Email != email {
		t.Fatalf("expected returned row, got %v", got)
	}

	for _, emp := range store.Employees() {
		if emp.ID == "1" && emp.Email != email {
			t.Fatal("local record not replaced with gateway response")
		}
	}
}

func TestUpdateEmployeeNotFoundLeavesCollectionUnchanged(t *testing.T) {
	gateway := &fakeGateway{employees: sampleEmployees(), updateErr: ErrNotFound}
	store := loadedStore(t, gateway)

	email := "x@nexhr.com"
	if _, err := store.UpdateEmployee(context.Background(), "missing", EmployeeUpdate{Email: &email}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	for _, emp := range store.Employees() {
		if emp.Email == email {
			t.Fatal("failed update must not mutate the collection")
		}
	}
}

func TestDeleteEmployeeRemovesRecord(t *testing.T) {
	gateway := &fakeGateway{employees: sampleEmployees()}
	store := loadedStore(t, gateway)

	if err := store.DeleteEmployee(context.Background(), "2"); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}
	for _, emp := range store.Employees() {
		if emp.ID == "2" {
			t.Fatal("deleted record still present")
		}
	}
}

func TestDeleteEmployeeIsIdempotent(t *testing.T) {
	gateway := &fakeGateway{employees: sampleEmployees(), deleteErr: ErrNotFound}
	store := loadedStore(t, gateway)

	if err := store.DeleteEmployee(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of a nonexistent id must not fail: %v", err)
	}
	if len(store.Employees()) != 3 {
		t.Fatal("collection changed by a no-op delete")
	}
}

func TestDeleteEmployeePropagatesTransportErrors(t *testing.T) {
	gateway := &fakeGateway{employees: sampleEmployees(), deleteErr: errors.New("transport down")}
	store := loadedStore(t, gateway)

	if err := store.DeleteEmployee(context.Background(), "1"); err == nil {
		t.Fatal("expected transport error")
	}
	if len(store.Employees()) != 3 {
		t.Fatal("failed delete must not mutate the collection")
	}
}

func TestFilteredEmployeesReturnsCopies(t *testing.T) {
	store := loadedStore(t, &fakeGateway{employees: sampleEmployees()})

	view := store.FilteredEmployees()
	view[0].FirstName = "mutated"

	for _, emp := range store.Employees() {
		if emp.FirstName == "mutated" {
			t.Fatal("mutating the returned slice must not affect store state")
		}
	}
}
