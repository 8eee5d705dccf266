package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/pbriand/marque/internal/auth"
	"github.com/pbriand/marque/internal/httpserver/helpers"
)

type ctxKey int

const userIDKey ctxKey = iota

// Auth requires a valid bearer token and stores the authenticated user
// id in the request context.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("missing bearer token"))
				return
			}

			userID, err := issuer.Verify(token)
			if err != nil {
				helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// BearerToken extracts the bearer token from the Authorization header,
// or "" when there is none.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
