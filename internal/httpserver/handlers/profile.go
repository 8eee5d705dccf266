package handlers

import (
	"errors"
	"net/http"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/helpers"
	"github.com/pbriand/marque/internal/httpserver/mw"
	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/store"
)

// GetProfile returns the session's profile, creating the default one on
// first access.
func GetProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := mw.UserID(r)

		p, err := d.Profiles.GetProfile(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
				return
			}
			p = domain.DefaultProfile(userID, d.TimeNow())
			if err := d.Profiles.SaveProfile(r.Context(), p); err != nil {
				helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
				return
			}
			d.Logger.Info("default profile created", logger.String("user_id", userID))
		}

		helpers.WriteJSON(w, http.StatusOK, p)
	}
}

// PatchProfile applies a partial update to the session's profile.
func PatchProfile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := mw.UserID(r)

		var patch domain.ProfilePatch
		if err := helpers.DecodeJSON(r, &patch); err != nil {
			helpers.WriteError(w, err)
			return
		}
		if patch.Empty() {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("patch has no fields"))
			return
		}

		p, err := d.Profiles.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p = domain.DefaultProfile(userID, d.TimeNow())
			} else {
				helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
				return
			}
		}

		patch.Apply(&p, d.TimeNow())
		if err := d.Profiles.SaveProfile(r.Context(), p); err != nil {
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}

		helpers.WriteJSON(w, http.StatusOK, p)
	}
}
