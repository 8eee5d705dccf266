// Package repo holds the per-session bookmark repository: a full
// in-memory replica of one user's remote collection, kept consistent by
// refetching after every mutation.
package repo

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pbriand/marque/internal/domain"
	"github.com/pbriand/marque/internal/store"
)

// State is the snapshot the presentation shell observes. A load failure
// is distinct from an empty collection: Err is set and Bookmarks keeps
// its last-known-good value.
type State struct {
	Bookmarks []domain.Bookmark
	Loading   bool
	Err       error
}

// Repository is the single source of truth for one user's bookmarks
// within a session. It is bound to the user at construction and never
// rebound; logout discards the whole repository.
//
// Consistency contract: mutations are serialized, every mutation
// refetches the full collection before reporting success, and a fetch
// that resolves out of order never overwrites the result of a later one.
type Repository struct {
	userID string
	store  store.Bookmarks

	// group collapses concurrent shell-triggered loads into one fetch.
	group singleflight.Group

	// mutMu serializes mutations (the per-session mutation queue).
	mutMu sync.Mutex

	mu       sync.RWMutex
	cache    []domain.Bookmark
	inflight int
	err      error

	// genNext numbers fetches at issue time; genApplied is the highest
	// fetch that has updated the cache. A slower, older fetch completing
	// late is discarded instead of clobbering newer data.
	genNext    uint64
	genApplied uint64
}

// New binds a repository to a user. An empty userID is the normal
// "no user yet" startup state: loads complete empty, mutations no-op.
func New(userID string, st store.Bookmarks) *Repository {
	return &Repository{
		userID: userID,
		store:  st,
		cache:  []domain.Bookmark{},
	}
}

// UserID returns the owning user id.
func (r *Repository) UserID() string { return r.userID }

// Load refetches the full collection. Concurrent callers share a single
// fetch. On failure the cache is left unchanged and the error is
// recorded in the state.
func (r *Repository) Load(ctx context.Context) error {
	if r.userID == "" {
		// Not authenticated: loading-complete-empty, not an error.
		r.mu.Lock()
		r.cache = []domain.Bookmark{}
		r.err = nil
		r.mu.Unlock()
		return nil
	}

	_, err, _ := r.group.Do("load", func() (interface{}, error) {
		return nil, r.fetch(ctx)
	})
	return err
}

// EnsureLoaded performs the initial fetch if no fetch has ever been
// applied; afterwards reads are served from the cache until a mutation
// or an explicit Load refreshes it.
func (r *Repository) EnsureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.genApplied > 0
	r.mu.RUnlock()

	if loaded {
		return nil
	}
	return r.Load(ctx)
}

// Add validates nothing: callers run the form validator first. It
// creates the row, then refetches so the caller always observes the
// post-mutation collection.
func (r *Repository) Add(ctx context.Context, c domain.Candidate) error {
	return r.mutate(ctx, func() error {
		_, err := r.store.CreateBookmark(ctx, r.userID, c)
		return err
	})
}

// Update applies a partial update to one of the user's rows, then
// refetches.
func (r *Repository) Update(ctx context.Context, id string, p domain.Patch) error {
	return r.mutate(ctx, func() error {
		return r.store.UpdateBookmark(ctx, id, r.userID, p)
	})
}

// Delete removes one of the user's rows, then refetches.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.mutate(ctx, func() error {
		return r.store.DeleteBookmark(ctx, id, r.userID)
	})
}

// State returns a copy of the observable state.
func (r *Repository) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bookmark, len(r.cache))
	copy(out, r.cache)
	return State{
		Bookmarks: out,
		Loading:   r.inflight > 0,
		Err:       r.err,
	}
}

// Bookmarks returns a copy of the cached collection.
func (r *Repository) Bookmarks() []domain.Bookmark {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bookmark, len(r.cache))
	copy(out, r.cache)
	return out
}

// mutate runs op under the mutation lock, then refreshes. The refresh
// must not join a fetch that was already in flight before the mutation
// (it would observe pre-mutation data), so the shared load key is
// forgotten first.
func (r *Repository) mutate(ctx context.Context, op func() error) error {
	if r.userID == "" {
		return nil
	}

	r.mutMu.Lock()
	defer r.mutMu.Unlock()

	if err := op(); err != nil {
		r.mu.Lock()
		r.err = err
		r.mu.Unlock()
		return err
	}

	r.group.Forget("load")
	return r.fetch(ctx)
}

// fetch performs one full-collection fetch and applies it unless a
// younger fetch already did.
func (r *Repository) fetch(ctx context.Context) error {
	r.mu.Lock()
	r.genNext++
	gen := r.genNext
	r.inflight++
	r.mu.Unlock()

	bookmarks, err := r.store.ListBookmarks(ctx, r.userID)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--

	if err != nil {
		// Cache stays last-known-good; the shell shows a failed state.
		// A fetch that a younger one already superseded stays silent,
		// same as its data would: the newer snapshot is the truth.
		if gen > r.genApplied {
			r.err = err
		}
		return err
	}

	if gen > r.genApplied {
		r.genApplied = gen
		r.cache = bookmarks
		r.err = nil
	}
	return nil
}
