package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nexhr/internal/domain/directory"
	"nexhr/internal/transport/http/api"
	"nexhr/internal/transport/http/middleware"
)

type Handler struct {
	Store *directory.Store
}

func NewHandler(store *directory.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
	r.Get("/departments", h.handleListDepartments)
}

// handleListEmployees applies the session's directory criteria from the
// query string, then returns the derived view.
func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.Store.SetSearchQuery(query.Get("q"))
	if dep := query.Get("department"); dep != "" {
		h.Store.SetSelectedDepartment(dep)
	} else {
		h.Store.SetSelectedDepartment(directory.FilterAll)
	}
	if status := query.Get("status"); status != "" {
		h.Store.SetSelectedStatus(status)
	} else {
		h.Store.SetSelectedStatus(directory.FilterAll)
	}
	h.Store.SetSortField(directory.ParseSortField(query.Get("sort")))
	h.Store.SetSortDir(directory.ParseSortDir(query.Get("dir")))

	api.Success(w, h.Store.FilteredEmployees(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Status == "" {
		payload.Status = directory.EmployeeStatusActive
	}

	created, err := h.Store.AddEmployee(r.Context(), payload)
	if err != nil {
		failFromError(w, r, err, "employee_create_failed", "failed to create employee")
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var update directory.EmployeeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Store.UpdateEmployee(r.Context(), employeeID, update)
	if err != nil {
		failFromError(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		failFromError(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Departments(), middleware.GetRequestID(r.Context()))
}

func failFromError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, directory.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, directory.ErrValidation):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
