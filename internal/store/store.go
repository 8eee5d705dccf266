// Package store defines the persistence contracts the rest of the
// application programs against. The redis subpackage is the production
// implementation; tests substitute in-memory fakes.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/pbriand/marque/internal/domain"
)

var (
	// ErrNotFound is returned when a row does not exist or does not
	// belong to the qualifying user. Callers cannot distinguish the two
	// cases on purpose.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by CreateUser on a duplicate email.
	ErrEmailTaken = errors.New("email already registered")
)

// Bookmarks is the remote bookmark store contract. Ids and timestamps
// are assigned here, never by callers. Every operation is scoped by the
// owning user id.
type Bookmarks interface {
	// ListBookmarks returns the user's full collection ordered by
	// creation time, most recent first. Never a partial page.
	ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// CreateBookmark persists a candidate for the user and returns the
	// stored row with id and timestamps filled in.
	CreateBookmark(ctx context.Context, userID string, c domain.Candidate) (domain.Bookmark, error)

	// UpdateBookmark applies a partial update to the row matching both
	// id and userID. ErrNotFound when it matches neither.
	UpdateBookmark(ctx context.Context, id, userID string, p domain.Patch) error

	// DeleteBookmark hard-deletes the row matching both id and userID.
	DeleteBookmark(ctx context.Context, id, userID string) error
}

// Users stores credentials records.
type Users interface {
	CreateUser(ctx context.Context, email, passwordHash string) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	SetPasswordHash(ctx context.Context, userID, passwordHash string) error
}

// Profiles stores the user-facing account details.
type Profiles interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	SaveProfile(ctx context.Context, p domain.Profile) error
}

// ResetTokens stores one-time password reset tokens.
type ResetTokens interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error

	// ConsumeResetToken returns the user id bound to the token and
	// invalidates it. ErrNotFound for unknown or expired tokens.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}
