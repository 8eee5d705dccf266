package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/store"
)

// CreateUser registers a credentials record. The email is claimed with
// SETNX so two concurrent registrations cannot both win.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (domain.User, error) {
	email = normalizeEmail(email)

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}

	claimed, err := s.client.SetNX(ctx, EmailKey(email), u.ID, 0).Result()
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to claim email: %w", err)
	}
	if !claimed {
		return domain.User{}, store.ErrEmailTaken
	}

	if err := s.saveUser(ctx, u); err != nil {
		// Roll the claim back so the email is not burned forever.
		_ = s.client.Del(ctx, EmailKey(email)).Err()
		return domain.User{}, err
	}

	return u, nil
}

// GetUser retrieves a credentials record by id.
func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	data, err := s.client.Get(ctx, UserKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return domain.User{}, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return u, nil
}

// GetUserByEmail resolves the email index and loads the record.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	id, err := s.client.Get(ctx, EmailKey(normalizeEmail(email))).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.User{}, store.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to resolve email: %w", err)
	}
	return s.GetUser(ctx, id)
}

// SetPasswordHash rewrites the stored hash, used by the reset flow.
func (s *Store) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	u.PasswordHash = passwordHash
	return s.saveUser(ctx, u)
}

func (s *Store) saveUser(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.client.Set(ctx, UserKey(u.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
