// Package session owns the one-repository-per-authenticated-session
// rule: repositories are created on first use, evicted on logout, and
// expire after an idle TTL so caches never outlive their session.
package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pbriand/marque/internal/repo"
	"github.com/pbriand/marque/internal/store"
)

// Manager hands out per-user repositories. Exactly one repository is
// live per user id at a time; two requests racing on a cold entry may
// build two candidates but only one wins and both observers get it.
type Manager struct {
	store store.Bookmarks
	repos *gocache.Cache
}

// NewManager creates a manager whose repositories expire after idleTTL
// without use.
func NewManager(st store.Bookmarks, idleTTL time.Duration) *Manager {
	return &Manager{
		store: st,
		repos: gocache.New(idleTTL, 2*idleTTL),
	}
}

// Repository returns the live repository for the user, creating and
// binding one if needed. The idle TTL is renewed on every call.
func (m *Manager) Repository(userID string) *repo.Repository {
	if r, ok := m.repos.Get(userID); ok {
		// Renew the idle clock.
		m.repos.SetDefault(userID, r)
		return r.(*repo.Repository)
	}

	fresh := repo.New(userID, m.store)
	if err := m.repos.Add(userID, fresh, gocache.DefaultExpiration); err != nil {
		// Lost the race to another request; use the winner.
		if r, ok := m.repos.Get(userID); ok {
			return r.(*repo.Repository)
		}
	}
	return fresh
}

// Evict drops the user's repository. Called on logout so a later login
// starts from a clean cache and nothing leaks across sessions.
func (m *Manager) Evict(userID string) {
	m.repos.Delete(userID)
}

// Len reports the number of live repositories, for the infra endpoint.
func (m *Manager) Len() int {
	return m.repos.ItemCount()
}
