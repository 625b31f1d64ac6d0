// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file and environment.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
	"os"
	"path/filepath"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL is the catalog REST root, without a trailing slash.
	BaseURL string `koanf:"base_url"`

	// PageSize is the limit query parameter used while paginating.
	PageSize int `koanf:"page_size"`

	// CachePath locates the snapshot database file.
	CachePath string `koanf:"cache_path"`

	// CacheMaxAgeMonths is the snapshot validity window in calendar months.
	CacheMaxAgeMonths int `koanf:"cache_max_age_months"`

	// TopN bounds how many frequency-table rows the report renders.
	TopN int `koanf:"top_n"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		BaseURL:           "https://www.pgscatalog.org/rest",
		PageSize:          100,
		CachePath:         defaultCachePath(),
		CacheMaxAgeMonths: 3,
		TopN:              10,
	}
}

// defaultCachePath prefers the user cache directory, falling back to the
// working directory when none is resolvable.
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "pgscatalog-summaries.db"
	}
	return filepath.Join(dir, "pgscatalog", "summaries.db")
}
