package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Store implements the persistence contracts on top of Redis. Rows are
// JSON blobs under namespaced keys; per-user collections are sets of row
// ids.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}
