package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/handlers"
	"github.com/pbriand/marque/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.AuthRateBurst,
		RefillPerMin: d.AuthRatePerMin,
		TrustProxy:   d.TrustProxy,
	}))

	limited.Post("/api/auth/register", handlers.Register(d))
	limited.Post("/api/auth/login", handlers.Login(d))
	limited.Post("/api/auth/reset/request", handlers.ResetRequest(d))
	limited.Post("/api/auth/reset/confirm", handlers.ResetConfirm(d))

	// Logout does its own token handling so an expired session can
	// still evict its cache.
	r.Post("/api/auth/logout", handlers.Logout(d))
}
