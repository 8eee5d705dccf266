package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pbriand/marque/internal/httpserver/deps"
)

func init() { Register(registerMetrics) }

func registerMetrics(r chi.Router, d deps.Deps) {
	r.Get("/metrics", d.Metrics.Handler().ServeHTTP)
}
