package directory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// FilterAll selects every department or status when set as the corresponding
// filter value.
const FilterAll = "all"

// Store owns the in-memory employee and department collections for a session
// together with the directory's filter and sort criteria. All persistence is
// delegated to the Gateway; local state changes only after the gateway
// confirms a write.
type Store struct {
	gateway Gateway

	mu          sync.RWMutex
	employees   []Employee
	departments []Department

	searchQuery        string
	selectedDepartment string
	selectedStatus     string
	sortField          SortField
	sortDir            SortDir
}

func NewStore(gateway Gateway) *Store {
	return &Store{
		gateway:            gateway,
		selectedDepartment: FilterAll,
		selectedStatus:     FilterAll,
		sortField:          SortByFirstName,
		sortDir:            SortAsc,
	}
}

// FetchAll replaces both collections from the gateway. Either both loads
// succeed and both collections are swapped in together, or neither is
// touched.
func (s *Store) FetchAll(ctx context.Context) error {
	employees, err := s.gateway.ListEmployees(ctx)
	if err != nil {
		return err
	}
	departments, err := s.gateway.ListDepartments(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.employees = employees
	s.departments = departments
	s.mu.Unlock()
	return nil
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

func (s *Store) SetSelectedDepartment(id string) {
	s.mu.Lock()
	s.selectedDepartment = id
	s.mu.Unlock()
}

func (s *Store) SetSelectedStatus(status string) {
	s.mu.Lock()
	s.selectedStatus = status
	s.mu.Unlock()
}

func (s *Store) SetSortField(field SortField) {
	s.mu.Lock()
	s.sortField = ParseSortField(string(field))
	s.mu.Unlock()
}

func (s *Store) SetSortDir(dir SortDir) {
	s.mu.Lock()
	s.sortDir = ParseSortDir(string(dir))
	s.mu.Unlock()
}

// AddEmployee persists a new record through the gateway and appends the
// returned record (carrying the generated identifier) to the collection.
// The department display name is re-resolved from the department collection
// before the write so the denormalized copy cannot drift.
func (s *Store) AddEmployee(ctx context.Context, emp Employee) (Employee, error) {
	emp.ID = ""
	if name, ok := s.departmentName(emp.Department); ok {
		emp.DepartmentName = name
	}

	created, err := s.gateway.CreateEmployee(ctx, emp)
	if err != nil {
		return Employee{}, err
	}

	s.mu.Lock()
	s.employees = append(s.employees, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateEmployee sends only the provided fields to the gateway and replaces
// the local record wholesale with the gateway's returned row.
func (s *Store) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (Employee, error) {
	if update.Department != nil {
		if name, ok := s.departmentName(*update.Department); ok {
			update.DepartmentName = &name
		}
	}

	updated, err := s.gateway.UpdateEmployee(ctx, id, update)
	if err != nil {
		return Employee{}, err
	}

	s.mu.Lock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteEmployee removes the record remotely and locally. A missing record is
// not an error; delete is idempotent.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.gateway.DeleteEmployee(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	s.mu.Lock()
	kept := s.employees[:0]
	for _, emp := range s.employees {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}
	s.employees = kept
	s.mu.Unlock()
	return nil
}

// FilteredEmployees derives the current view: search filter, department
// filter, status filter, then a stable sort. The returned slice is a copy.
func (s *Store) FilteredEmployees() []Employee {
	s.mu.RLock()
	result := make([]Employee, 0, len(s.employees))
	query := strings.ToLower(s.searchQuery)
	for _, emp := range s.employees {
		if query != "" && !matchesQuery(emp, query) {
			continue
		}
		if s.selectedDepartment != FilterAll && emp.Department != s.selectedDepartment {
			continue
		}
		if s.selectedStatus != FilterAll && emp.Status != s.selectedStatus {
			continue
		}
		result = append(result, emp)
	}
	compare := comparators[s.sortField]
	descending := s.sortDir == SortDesc
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		cmp := compare(result[i], result[j])
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return result
}

// Employees returns a copy of the unfiltered collection.
func (s *Store) Employees() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Departments returns a copy of the department collection.
func (s *Store) Departments() []Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func (s *Store) departmentName(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dep := range s.departments {
		if dep.ID == id {
			return dep.Name, true
		}
	}
	return "", false
}

func matchesQuery(emp Employee, query string) bool {
	return strings.Contains(strings.ToLower(emp.FirstName+" "+emp.LastName), query) ||
		strings.Contains(strings.ToLower(emp.Email), query) ||
		strings.Contains(strings.ToLower(emp.Position), query) ||
		strings.Contains(strings.ToLower(emp.DepartmentName), query)
}
