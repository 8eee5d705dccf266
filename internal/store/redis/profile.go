package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/store"
)

// GetProfile retrieves a profile row. ErrNotFound when the user has
// never had one; the caller decides whether to create a default.
func (s *Store) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	data, err := s.client.Get(ctx, ProfileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.Profile{}, store.ErrNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return p, nil
}

// SaveProfile writes the full profile row.
func (s *Store) SaveProfile(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, ProfileKey(p.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
