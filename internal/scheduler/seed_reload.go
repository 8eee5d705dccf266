package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/session"
	"github.com/pbriand/marque/internal/sources/seed"
	"github.com/pbriand/marque/internal/store"
)

// SeedReloader periodically imports the seed file into the seed user's
// collection. Imports are idempotent: entries whose URL the user already
// has are skipped.
type SeedReloader struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	bookmarks     store.Bookmarks
	users         store.Users
	sessions      *session.Manager
	logger        logger.Logger
	userEmail     string
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a seed reloader for the given user email.
func NewSeedReloader(
	seedFile string,
	userEmail string,
	bookmarks store.Bookmarks,
	users store.Users,
	sessions *session.Manager,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seed.NewLoader(seedFile),
		mapper:        seed.NewMapper(),
		bookmarks:     bookmarks,
		users:         users,
		sessions:      sessions,
		logger:        log,
		userEmail:     userEmail,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start imports once, then keeps importing on the interval and on manual
// triggers until the context ends or Stop is called.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed import failed: %w", err)
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload imports the seed file into the seed user's collection.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	sr.logger.Info("importing bookmark seed file",
		logger.String("user", sr.userEmail))

	config, err := sr.loader.Load()
	if err != nil {
		return err
	}

	candidates, skipped := sr.mapper.MapCandidates(config)
	if skipped > 0 {
		sr.logger.Warn("seed file contains invalid entries",
			logger.Int("skipped", skipped))
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no valid entries in seed file")
	}

	user, err := sr.users.GetUserByEmail(ctx, sr.userEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Not fatal: the account may simply not be registered yet.
			sr.logger.Warn("seed user not registered, skipping import",
				logger.String("user", sr.userEmail))
			return nil
		}
		return err
	}

	existing, err := sr.bookmarks.ListBookmarks(ctx, user.ID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, b := range existing {
		have[b.URL] = true
	}

	created := 0
	for _, c := range candidates {
		if have[c.URL] {
			continue
		}
		if _, err := sr.bookmarks.CreateBookmark(ctx, user.ID, c); err != nil {
			return fmt.Errorf("failed to import %q: %w", c.Name, err)
		}
		created++
	}

	if created > 0 && sr.sessions != nil {
		// Force the next read to refetch the grown collection.
		sr.sessions.Evict(user.ID)
	}

	sr.logger.Info("seed import complete",
		logger.Int("entries", len(candidates)),
		logger.Int("created", created),
		logger.Int("already_present", len(candidates)-created))
	return nil
}
