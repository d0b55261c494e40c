package analyticshandler

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"nexhr/internal/domain/analytics"
	"nexhr/internal/domain/directory"
	"nexhr/internal/domain/reports"
	"nexhr/internal/transport/http/api"
	"nexhr/internal/transport/http/middleware"
)

type Handler struct {
	Store   *directory.Store
	Reports *reports.Service
}

func NewHandler(store *directory.Store, reportSvc *reports.Service) *Handler {
	return &Handler{Store: store, Reports: reportSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/analytics/overview", h.handleOverview)
	r.Get("/analytics/departments", h.handleDepartments)
	r.Get("/reports/directory.pdf", h.handleDirectoryPDF)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	api.Success(w, analytics.ComputeOverview(h.Store.Employees()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	stats := analytics.ComputeDepartmentStats(h.Store.Departments(), h.Store.Employees())
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDirectoryPDF(w http.ResponseWriter, r *http.Request) {
	filePath, err := h.Reports.GenerateDirectoryPDF(h.Store.Departments(), h.Store.Employees())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", middleware.GetRequestID(r.Context()))
		return
	}
	defer os.Remove(filePath)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="directory.pdf"`)
	http.ServeFile(w, r, filePath)
}
