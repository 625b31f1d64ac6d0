// Package cache persists summary snapshots in an origin-local key-value store.
package cache

import (
	"context"
	"time"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/catalog"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/summary"
)

// keyPrefix versions the cache namespace; bump it when the entry layout changes.
const keyPrefix = "pgscatalog:v1:"

// Key returns the versioned cache key for a resource kind.
func Key(kind catalog.Kind) string { return keyPrefix + string(kind) }

// Entry is one persisted snapshot. The raw records ride along with the
// summary so a cache hit can serve both without refetching. An entry is
// used wholesale or ignored wholesale; partial merges never occur.
type Entry struct {
	SavedAt time.Time       `json:"saved_at"`
	Summary summary.Summary `json:"summary"`
	Records []record.Record `json:"records,omitempty"`
}

// Store provides read/write access to persisted snapshots. Save overwrites
// any prior entry at key. Load reports absence through the bool, not an
// error; a returned error means the store itself misbehaved, which callers
// treat as a miss rather than a failure.
type Store interface {
	Save(ctx context.Context, key string, e Entry) error
	Load(ctx context.Context, key string) (Entry, bool, error)
}
