package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/store"
)

type memStore struct {
	users map[string]domain.User // email -> user
	rows  []domain.Bookmark
	seq   int
}

func (m *memStore) ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	out := []domain.Bookmark{}
	for _, b := range m.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CreateBookmark(ctx context.Context, userID string, c domain.Candidate) (domain.Bookmark, error) {
	m.seq++
	b := domain.Bookmark{
		ID:        string(rune('0' + m.seq)),
		UserID:    userID,
		Name:      c.Name,
		URL:       c.URL,
		Category:  c.Category,
		Icon:      c.Icon,
		Color:     c.Color,
		CreatedAt: time.Now(),
	}
	m.rows = append(m.rows, b)
	return b, nil
}

func (m *memStore) UpdateBookmark(ctx context.Context, id, userID string, p domain.Patch) error {
	return nil
}

func (m *memStore) DeleteBookmark(ctx context.Context, id, userID string) error {
	return nil
}

func (m *memStore) CreateUser(ctx context.Context, email, hash string) (domain.User, error) {
	u := domain.User{ID: "u-" + email, Email: email, PasswordHash: hash}
	m.users[email] = u
	return u, nil
}

func (m *memStore) GetUser(ctx context.Context, id string) (domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return domain.User{}, store.ErrNotFound
}

func (m *memStore) SetPasswordHash(ctx context.Context, userID, hash string) error {
	return nil
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

const seedYAML = `
- name: GitHub
  url: https://github.com
  category: Development
  icon: Github
- name: Slack
  url: https://slack.com
`

func TestSeedReloadImportsOnce(t *testing.T) {
	ms := &memStore{users: map[string]domain.User{}}
	if _, err := ms.CreateUser(context.Background(), "admin@example.com", "x"); err != nil {
		t.Fatal(err)
	}

	sr := NewSeedReloader(
		writeSeed(t, seedYAML),
		"admin@example.com",
		ms, ms, nil,
		logger.New("error", false),
		time.Hour,
		nil,
	)

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if len(ms.rows) != 2 {
		t.Fatalf("Reload() imported %d rows, want 2", len(ms.rows))
	}

	// Re-import is idempotent: same URLs are not duplicated.
	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("second Reload() error = %v", err)
	}
	if len(ms.rows) != 2 {
		t.Errorf("second Reload() grew collection to %d rows, want 2", len(ms.rows))
	}
}

func TestSeedReloadUnknownUserIsSkipped(t *testing.T) {
	ms := &memStore{users: map[string]domain.User{}}

	sr := NewSeedReloader(
		writeSeed(t, seedYAML),
		"nobody@example.com",
		ms, ms, nil,
		logger.New("error", false),
		time.Hour,
		nil,
	)

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v, want nil for unregistered seed user", err)
	}
	if len(ms.rows) != 0 {
		t.Errorf("Reload() imported %d rows for unknown user, want 0", len(ms.rows))
	}
}

func TestSeedReloadInvalidEntriesSkipped(t *testing.T) {
	ms := &memStore{users: map[string]domain.User{}}
	if _, err := ms.CreateUser(context.Background(), "admin@example.com", "x"); err != nil {
		t.Fatal(err)
	}

	sr := NewSeedReloader(
		writeSeed(t, `
- name: ""
  url: https://nameless.example.com
- name: OK
  url: https://ok.example.com
`),
		"admin@example.com",
		ms, ms, nil,
		logger.New("error", false),
		time.Hour,
		nil,
	)

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if len(ms.rows) != 1 || ms.rows[0].Name != "OK" {
		t.Errorf("Reload() rows = %+v, want only OK", ms.rows)
	}
}
