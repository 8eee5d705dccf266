package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/pbriand/marque/internal/auth"
	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/httpserver/helpers"
	"github.com/pbriand/marque/internal/httpserver/mw"
	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/store"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func newSessionResponse(token string, u domain.User) sessionResponse {
	var resp sessionResponse
	resp.Token = token
	resp.User.ID = u.ID
	resp.User.Email = u.Email
	return resp
}

// Register creates an account, its default profile and a first session.
func Register(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}

		if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("invalid email address"))
			return
		}
		if len(req.Password) < auth.MinPasswordLength {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("password too short"))
			return
		}

		hash, err := auth.HashPassword(req.Password, d.BcryptCost)
		if err != nil {
			d.Logger.Error("failed to hash password", logger.Error(err))
			helpers.WriteError(w, helpers.ErrInternal)
			return
		}

		u, err := d.Users.CreateUser(r.Context(), req.Email, hash)
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				helpers.WriteError(w, helpers.ErrConflict.WithDetail("email already registered"))
				return
			}
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}

		// Best effort: the profile handler recreates a default on first
		// read if this write is lost.
		profile := domain.DefaultProfile(u.ID, d.TimeNow())
		if err := d.Profiles.SaveProfile(r.Context(), profile); err != nil {
			d.Logger.Warn("failed to create default profile",
				logger.String("user_id", u.ID),
				logger.Error(err))
		}

		token, err := d.Issuer.Mint(u.ID)
		if err != nil {
			d.Logger.Error("failed to mint session token", logger.Error(err))
			helpers.WriteError(w, helpers.ErrInternal)
			return
		}

		d.Logger.Info("user registered", logger.String("user_id", u.ID))
		helpers.WriteJSON(w, http.StatusCreated, newSessionResponse(token, u))
	}
}

// Login verifies credentials and mints a session token.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}

		u, err := d.Users.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			// Unknown email and wrong password answer identically.
			helpers.WriteError(w, helpers.ErrInvalidCredentials)
			return
		}
		if !auth.CheckPassword(u.PasswordHash, req.Password) {
			helpers.WriteError(w, helpers.ErrInvalidCredentials)
			return
		}

		token, err := d.Issuer.Mint(u.ID)
		if err != nil {
			d.Logger.Error("failed to mint session token", logger.Error(err))
			helpers.WriteError(w, helpers.ErrInternal)
			return
		}

		helpers.WriteJSON(w, http.StatusOK, newSessionResponse(token, u))
	}
}

// Logout evicts the session's repository so nothing is served from a
// stale cache after a later login. Expired tokens are accepted as long
// as signature and issuer check out: a session that just lapsed must
// still be able to drop its cache.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mw.BearerToken(r)
		if token == "" {
			helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("missing bearer token"))
			return
		}

		userID, err := d.Issuer.Subject(token)
		if err != nil {
			helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("invalid token"))
			return
		}

		d.Sessions.Evict(userID)
		d.Logger.Info("session closed", logger.String("user_id", userID))
		w.WriteHeader(http.StatusNoContent)
	}
}

type resetRequestBody struct {
	Email string `json:"email"`
}

// ResetRequest issues a one-time password reset token. The response is
// identical whether or not the email is registered.
func ResetRequest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequestBody
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}

		u, err := d.Users.GetUserByEmail(r.Context(), req.Email)
		if err == nil {
			token := uuid.NewString()
			if err := d.ResetTokens.SaveResetToken(r.Context(), token, u.ID, d.ResetTokenTTL); err != nil {
				d.Logger.Error("failed to save reset token", logger.Error(err))
			} else {
				// No mail delivery here; operators read the token from
				// debug logs or wire their own delivery on top.
				d.Logger.Debug("password reset token issued",
					logger.String("user_id", u.ID),
					logger.String("token", token))
			}
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

type resetConfirmBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetConfirm consumes a reset token and rewrites the password hash.
func ResetConfirm(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetConfirmBody
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteError(w, err)
			return
		}
		if len(req.Password) < auth.MinPasswordLength {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("password too short"))
			return
		}

		userID, err := d.ResetTokens.ConsumeResetToken(r.Context(), req.Token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("invalid or expired reset token"))
				return
			}
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}

		hash, err := auth.HashPassword(req.Password, d.BcryptCost)
		if err != nil {
			d.Logger.Error("failed to hash password", logger.Error(err))
			helpers.WriteError(w, helpers.ErrInternal)
			return
		}
		if err := d.Users.SetPasswordHash(r.Context(), userID, hash); err != nil {
			helpers.WriteError(w, helpers.ErrStoreUnavailable.WithDetail(err.Error()))
			return
		}

		// Existing sessions keep their tokens until expiry; the cached
		// repository is dropped so the next one starts clean.
		d.Sessions.Evict(userID)
		d.Logger.Info("password reset", logger.String("user_id", userID))
		w.WriteHeader(http.StatusNoContent)
	}
}
