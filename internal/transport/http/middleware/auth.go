package middleware

import (
	"context"
	"net/http"
	"strings"

	"nexhr/internal/auth"
	"nexhr/internal/requestctx"
	"nexhr/internal/transport/http/api"
)

// Session validates the bearer session token and stores the mock user on the
// request context. The token itself is the only credential; its claims come
// from the mocked provider profiles.
func Session(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}

			user, err := auth.ParseToken(secret, token)
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid session token", GetRequestID(r.Context()))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestctx.WithUser(r.Context(), user)))
		})
	}
}

func GetUser(ctx context.Context) (auth.User, bool) {
	return requestctx.GetUser(ctx)
}
