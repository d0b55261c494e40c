package attendancehandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nexhr/internal/domain/analytics"
	"nexhr/internal/domain/directory"
	"nexhr/internal/transport/http/api"
	"nexhr/internal/transport/http/middleware"
)

type Handler struct {
	Gateway directory.Gateway
}

func NewHandler(gateway directory.Gateway) *Handler {
	return &Handler{Gateway: gateway}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleByDate)
		r.Get("/summary", h.handleSummary)
		r.Get("/all", h.handleAll)
	})
}

func requestedDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}

func (h *Handler) handleByDate(w http.ResponseWriter, r *http.Request) {
	records, err := h.Gateway.ListAttendanceByDate(r.Context(), requestedDate(r))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	date := requestedDate(r)
	records, err := h.Gateway.ListAttendanceByDate(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_summary_failed", "failed to summarize attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, analytics.SummarizeDay(date, records), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.Gateway.ListAllAttendance(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}
