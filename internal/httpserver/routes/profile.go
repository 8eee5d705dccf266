package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/handlers"
	"github.com/pbriand/marque/internal/httpserver/mw"
)

func init() { Register(registerProfile) }

func registerProfile(r chi.Router, d deps.Deps) {
	r.With(mw.Auth(d.Issuer)).Route("/api/profile", func(r chi.Router) {
		r.Get("/", handlers.GetProfile(d))
		r.Patch("/", handlers.PatchProfile(d))
	})
}
