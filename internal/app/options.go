package app

import (
	"time"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/cache"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the paginated record fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithStore sets the snapshot store handle.
func WithStore(store cache.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithPageSize sets the page-size query parameter used when fetching.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithMaxAgeMonths sets the cache validity window in calendar months.
func WithMaxAgeMonths(months int) Option {
	return func(s *Service) {
		if months > 0 {
			s.maxAgeMonths = months
		}
	}
}

// WithClock sets the time source, so tests can pin the freshness boundary.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
