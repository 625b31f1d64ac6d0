// Package app wires the fetch, summarize and cache stages into one
// orchestrated load path.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/cache"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/catalog"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/freshness"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/record"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/domain/summary"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/logger"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/metrics"
)

// Default orchestration constants.
const defaultPageSize = 100

// Fetcher retrieves every record of one resource kind.
type Fetcher interface {
	FetchAll(ctx context.Context, kind catalog.Kind, pageSize int) ([]record.Record, error)
}

// Result is the terminal outcome of one Load call. A nil Summary together
// with a non-nil error means neither a fetch nor a cached snapshot was
// available; callers display that state instead of retrying. Stale marks a
// degraded result served from an expired cache entry after a fetch failure.
type Result struct {
	Summary *summary.Summary
	Records []record.Record
	Stale   bool
}

// Service orchestrates cache freshness, fetching, aggregation and
// persistence for both resource kinds.
type Service struct {
	fetcher      Fetcher
	store        cache.Store
	pageSize     int
	maxAgeMonths int
	now          func() time.Time
	logger       logger.Logger
}

// New constructs a Service with default configuration. A fetcher and a
// store must be supplied via options before Load is called.
func New(opts ...Option) *Service {
	s := &Service{
		pageSize:     defaultPageSize,
		maxAgeMonths: freshness.DefaultMaxAgeMonths,
		now:          time.Now,
		logger:       logger.Noop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load resolves one resource kind to a summary and its records. Exactly one
// of three terminal outcomes happens per call: a fresh cache entry is
// returned as-is, a fetch+summarize run is persisted and returned, or a
// fetch failure falls back to whatever cache entry exists. Nothing is
// retried within a call.
func (s *Service) Load(ctx context.Context, kind catalog.Kind) (Result, error) {
	start := s.now()
	runID := uuid.NewString()
	key := cache.Key(kind)

	entry, cached, err := s.store.Load(ctx, key)
	if err != nil {
		// Store trouble is soft: degrade to a miss and carry on.
		s.logger.Warn(ctx, "cache read failed, treating as miss",
			logger.String("run_id", runID),
			logger.String("key", key),
			logger.Error(err),
		)
		cached = false
	}

	if cached && freshness.IsFresh(entry.SavedAt, s.now(), s.maxAgeMonths) {
		metrics.RecordCacheHit(string(kind))
		metrics.ObserveLoadDuration(string(kind), "cache_hit", s.now().Sub(start))
		s.logger.Info(ctx, "serving cached summary",
			logger.String("run_id", runID),
			logger.String("kind", string(kind)),
			logger.Time("saved_at", entry.SavedAt),
		)
		return Result{Summary: &entry.Summary, Records: entry.Records}, nil
	}
	metrics.RecordCacheMiss(string(kind))

	records, fetchErr := s.fetcher.FetchAll(ctx, kind, s.pageSize)
	if fetchErr != nil {
		metrics.RecordFetchFailure(string(kind))
		if cached {
			// Any entry, fresh or not, beats an empty answer.
			metrics.RecordCacheFallback(string(kind))
			metrics.ObserveLoadDuration(string(kind), "cache_fallback", s.now().Sub(start))
			s.logger.Warn(ctx, "fetch failed, serving stale cache entry",
				logger.String("run_id", runID),
				logger.String("kind", string(kind)),
				logger.Time("saved_at", entry.SavedAt),
				logger.Error(fetchErr),
			)
			return Result{Summary: &entry.Summary, Records: entry.Records, Stale: true}, nil
		}
		metrics.ObserveLoadDuration(string(kind), "failure", s.now().Sub(start))
		s.logger.Error(ctx, "fetch failed with no cached fallback",
			logger.String("run_id", runID),
			logger.String("kind", string(kind)),
			logger.Error(fetchErr),
		)
		return Result{}, fmt.Errorf("load %s: %w", kind, fetchErr)
	}

	sum := summarize(kind, records)
	saved := cache.Entry{SavedAt: s.now(), Summary: sum, Records: records}
	if err := s.store.Save(ctx, key, saved); err != nil {
		// A failed save costs the next call a refetch, nothing more.
		s.logger.Warn(ctx, "cache write failed",
			logger.String("run_id", runID),
			logger.String("key", key),
			logger.Error(err),
		)
	}

	metrics.ObserveLoadDuration(string(kind), "fetch_success", s.now().Sub(start))
	s.logger.Info(ctx, "fetched and summarized",
		logger.String("run_id", runID),
		logger.String("kind", string(kind)),
		logger.Int("records", len(records)),
		logger.Duration("took", s.now().Sub(start)),
	)
	return Result{Summary: &sum, Records: records}, nil
}

func summarize(kind catalog.Kind, records []record.Record) summary.Summary {
	if kind == catalog.KindTrait {
		return summary.Traits(records)
	}
	return summary.Scores(records)
}
