package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/handlers"
	"github.com/pbriand/marque/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.With(mw.Auth(d.Issuer)).Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.CreateBookmark(d))
		r.Patch("/{id}", handlers.UpdateBookmark(d))
		r.Delete("/{id}", handlers.DeleteBookmark(d))
	})
}
