package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/store"
)

// ListBookmarks returns the user's full collection, most recent first.
func (s *Store) ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	ids, err := s.client.SMembers(ctx, UserBookmarksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark ids: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Bookmark{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = BookmarkKey(id)
	}

	rows, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	bookmarks := make([]domain.Bookmark, 0, len(rows))
	for _, row := range rows {
		raw, ok := row.(string)
		if !ok {
			// Row expired or vanished between SMEMBERS and MGET; skip it.
			continue
		}

		var b domain.Bookmark
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
		}
		// The set is per-user, but never trust it alone.
		if b.UserID != userID {
			continue
		}
		bookmarks = append(bookmarks, b)
	}

	sort.SliceStable(bookmarks, func(i, j int) bool {
		return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
	})

	return bookmarks, nil
}

// CreateBookmark persists a candidate and returns the stored row with a
// fresh id and timestamps.
func (s *Store) CreateBookmark(ctx context.Context, userID string, c domain.Candidate) (domain.Bookmark, error) {
	now := s.now()
	b := domain.Bookmark{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Category:    c.Category,
		Icon:        c.Icon,
		Color:       c.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.saveBookmark(ctx, b); err != nil {
		return domain.Bookmark{}, err
	}
	return b, nil
}

// UpdateBookmark applies a partial update to the row matching both id
// and userID.
func (s *Store) UpdateBookmark(ctx context.Context, id, userID string, p domain.Patch) error {
	b, err := s.getOwnedBookmark(ctx, id, userID)
	if err != nil {
		return err
	}

	p.Apply(&b)
	b.UpdatedAt = s.now()

	return s.saveBookmark(ctx, b)
}

// DeleteBookmark hard-deletes the row matching both id and userID.
func (s *Store) DeleteBookmark(ctx context.Context, id, userID string) error {
	if _, err := s.getOwnedBookmark(ctx, id, userID); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, BookmarkKey(id))
	pipe.SRem(ctx, UserBookmarksKey(userID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return nil
}

// saveBookmark writes the row and keeps the per-user id set in sync.
func (s *Store) saveBookmark(ctx context.Context, b domain.Bookmark) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, BookmarkKey(b.ID), data, 0)
	pipe.SAdd(ctx, UserBookmarksKey(b.UserID), b.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	return nil
}

// getOwnedBookmark loads a row and verifies ownership. A row that exists
// but belongs to someone else reports the same ErrNotFound as a missing
// one.
func (s *Store) getOwnedBookmark(ctx context.Context, id, userID string) (domain.Bookmark, error) {
	data, err := s.client.Get(ctx, BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.Bookmark{}, store.ErrNotFound
		}
		return domain.Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		return domain.Bookmark{}, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	if b.UserID != userID {
		return domain.Bookmark{}, store.ErrNotFound
	}
	return b, nil
}
