package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pbriand/marque/internal/store"
)

// SaveResetToken binds a one-time token to a user id. Expiry is handled
// by Redis TTL, so expired tokens need no sweeping.
func (s *Store) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, ResetKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken resolves and invalidates a token in one step.
// GETDEL keeps the one-time guarantee even for concurrent confirms.
func (s *Store) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, ResetKey(token)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return userID, nil
}
