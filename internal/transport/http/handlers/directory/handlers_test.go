package directoryhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"nexhr/internal/domain/directory"
	"nexhr/internal/fixtures"
	"nexhr/internal/gateway/memory"
)

func newTestRouter(t *testing.T) (chi.Router, *directory.Store) {
	t.Helper()

	gateway := memory.New()
	ctx := context.Background()
	if err := gateway.SeedAll(ctx, fixtures.Departments(), fixtures.Employees(), fixtures.Attendance()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := directory.NewStore(gateway)
	if err := store.FetchAll(ctx); err != nil {
		t.Fatalf("initial fetch failed: %v", err)
	}

	r := chi.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	return r, store
}

type employeeListEnvelope struct {
	Success bool                 `json:"success"`
	Data    []directory.Employee `json:"data"`
}

type employeeEnvelope struct {
	Success bool               `json:"success"`
	Data    directory.Employee `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestListEmployeesAppliesQueryFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees?department=eng&status=active&sort=salary&dir=desc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope employeeListEnvelope
	decodeInto(t, rec, &envelope)
	if !envelope.Success || len(envelope.Data) == 0 {
		t.Fatalf("expected a non-empty filtered list: %s", rec.Body.String())
	}
	for i, emp := range envelope.Data {
		if emp.Department != "eng" || emp.Status != directory.EmployeeStatusActive {
			t.Fatalf("record %d escaped the filters: %+v", i, emp)
		}
		if i > 0 && envelope.Data[i-1].Salary < emp.Salary {
			t.Fatalf("expected descending salary order at %d", i)
		}
	}
}

func TestListEmployeesSearch(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees?q=sarah.chen%40", nil))

	var envelope employeeListEnvelope
	decodeInto(t, rec, &envelope)
	if len(envelope.Data) != 1 || envelope.Data[0].FirstName != "Sarah" {
		t.Fatalf("expected the single email match: %s", rec.Body.String())
	}
}

func TestCreateEmployee(t *testing.T) {
	r, store := newTestRouter(t)
	before := len(store.Employees())

	payload := `{"firstName":"Nora","lastName":"Iqbal","email":"nora.iqbal@nexhr.com","department":"design"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(payload)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope employeeEnvelope
	decodeInto(t, rec, &envelope)
	if envelope.Data.ID == "" {
		t.Fatal("created employee must carry a generated identifier")
	}
	if envelope.Data.DepartmentName != "Design" {
		t.Fatalf("department name must be resolved on create, got %q", envelope.Data.DepartmentName)
	}
	if envelope.Data.Status != directory.EmployeeStatusActive {
		t.Fatalf("missing status must default to active, got %q", envelope.Data.Status)
	}
	if len(store.Employees()) != before+1 {
		t.Fatal("created employee must join the collection")
	}
}

func TestCreateEmployeeValidationFailure(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"firstName":"Solo"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope employeeEnvelope
	decodeInto(t, rec, &envelope)
	if envelope.Error == nil || envelope.Error.Code != "validation_failed" {
		t.Fatalf("expected validation error code: %s", rec.Body.String())
	}
}

func TestUpdateEmployee(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := `{"position":"Principal Engineer","department":"design"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/employees/1", bytes.NewBufferString(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope employeeEnvelope
	decodeInto(t, rec, &envelope)
	if envelope.Data.Position != "Principal Engineer" {
		t.Fatalf("position not updated: %+v", envelope.Data)
	}
	if envelope.Data.DepartmentName != "Design" {
		t.Fatalf("department name must follow the department change, got %q", envelope.Data.DepartmentName)
	}
	if envelope.Data.FirstName != "Sarah" {
		t.Fatalf("untouched fields must survive: %+v", envelope.Data)
	}
}

func TestUpdateUnknownEmployee(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/employees/ghost", bytes.NewBufferString(`{"position":"X"}`)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteEmployee(t *testing.T) {
	r, store := newTestRouter(t)
	before := len(store.Employees())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/employees/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(store.Employees()) != before-1 {
		t.Fatal("deleted employee must leave the collection")
	}

	// Replaying the delete succeeds; the store treats missing records as done.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/employees/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat delete must succeed, got %d", rec.Code)
	}
}

func TestListDepartments(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []directory.Department `json:"data"`
	}
	decodeInto(t, rec, &envelope)
	if len(envelope.Data) != 7 {
		t.Fatalf("expected the seven seeded departments, got %d", len(envelope.Data))
	}
}
