package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/helpers"
	"github.com/pbriand/marque/internal/httpserver/mw"
	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/repo"
	"github.com/pbriand/marque/internal/store"
)

type collectionResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
	Total     int               `json:"total"`
}

func writeCollection(w http.ResponseWriter, status int, bookmarks []domain.Bookmark) {
	helpers.WriteJSON(w, status, collectionResponse{Bookmarks: bookmarks, Total: len(bookmarks)})
}

func sessionRepo(d deps.Deps, r *http.Request) (*repo.Repository, error) {
	rep := d.Sessions.Repository(mw.UserID(r))
	if r.URL.Query().Get("refresh") == "1" {
		if err := rep.Load(r.Context()); err != nil {
			return nil, err
		}
		return rep, nil
	}
	if err := rep.EnsureLoaded(r.Context()); err != nil {
		return nil, err
	}
	return rep, nil
}

// ListBookmarks serves the session's collection, optionally narrowed by
// q / filter / value query parameters. match=fuzzy switches plain
// substring search for fuzzy ranking.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := sessionRepo(d, r)
		if err != nil {
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}

		q := r.URL.Query()
		query := q.Get("q")
		mode := domain.ParseFilterMode(q.Get("filter"))
		value := q.Get("value")

		var result []domain.Bookmark
		if q.Get("match") == "fuzzy" && query != "" {
			// Rank first so fuzzy order survives, then narrow.
			result = domain.FuzzyRank(rep.Bookmarks(), query)
			result = domain.Filter(result, "", mode, value)
		} else {
			result = domain.Filter(rep.Bookmarks(), query, mode, value)
		}

		writeCollection(w, http.StatusOK, result)
	}
}

// CreateBookmark validates a candidate, persists it and answers with the
// refreshed collection.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c domain.Candidate
		if err := helpers.DecodeJSON(r, &c); err != nil {
			helpers.WriteError(w, err)
			return
		}
		if fieldErrs := domain.Validate(c); len(fieldErrs) > 0 {
			helpers.WriteError(w, helpers.ErrValidationFailed.WithFields(fieldErrs))
			return
		}

		rep := d.Sessions.Repository(mw.UserID(r))
		if err := rep.Add(r.Context(), c); err != nil {
			d.Metrics.ObserveMutation("add", err)
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}
		d.Metrics.ObserveMutation("add", nil)
		d.Logger.Info("bookmark created",
			logger.String("user_id", rep.UserID()),
			logger.String("name", c.Name))

		writeCollection(w, http.StatusCreated, rep.Bookmarks())
	}
}

// UpdateBookmark applies a partial patch to one bookmark.
func UpdateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var p domain.Patch
		if err := helpers.DecodeJSON(r, &p); err != nil {
			helpers.WriteError(w, err)
			return
		}
		if p.Empty() {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("patch has no fields"))
			return
		}
		if fieldErrs := domain.ValidatePatch(p); len(fieldErrs) > 0 {
			helpers.WriteError(w, helpers.ErrValidationFailed.WithFields(fieldErrs))
			return
		}

		rep := d.Sessions.Repository(mw.UserID(r))
		if err := rep.Update(r.Context(), id, p); err != nil {
			d.Metrics.ObserveMutation("update", err)
			if errors.Is(err, store.ErrNotFound) {
				helpers.WriteError(w, helpers.ErrNotFound.WithDetail("bookmark not found"))
				return
			}
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}
		d.Metrics.ObserveMutation("update", nil)

		writeCollection(w, http.StatusOK, rep.Bookmarks())
	}
}

// DeleteBookmark removes one bookmark from the collection.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rep := d.Sessions.Repository(mw.UserID(r))
		if err := rep.Delete(r.Context(), id); err != nil {
			d.Metrics.ObserveMutation("delete", err)
			if errors.Is(err, store.ErrNotFound) {
				helpers.WriteError(w, helpers.ErrNotFound.WithDetail("bookmark not found"))
				return
			}
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}
		d.Metrics.ObserveMutation("delete", nil)
		d.Logger.Info("bookmark deleted",
			logger.String("user_id", rep.UserID()),
			logger.String("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
