package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nexhr/internal/auth"
	"nexhr/internal/transport/http/api"
	"nexhr/internal/transport/http/middleware"
)

type Handler struct {
	Secret     string
	SessionTTL time.Duration
}

func NewHandler(secret string, ttl time.Duration) *Handler {
	return &Handler{Secret: secret, SessionTTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
}

func (h *Handler) RegisterSessionRoutes(r chi.Router) {
	r.Get("/me", h.handleMe)
}

type loginRequest struct {
	Provider string `json:"provider"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	profile, err := auth.ProfileFor(payload.Provider)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "unknown_provider", "unsupported login provider", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, profile, h.SessionTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue session token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"user":  profile,
		"token": token,
	}, middleware.GetRequestID(r.Context()))
}

// Sessions are stateless tokens; logout exists so clients have a place to
// drop theirs.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]bool{"loggedOut": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, user, middleware.GetRequestID(r.Context()))
}
