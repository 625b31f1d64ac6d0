package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if PGS_CONFIG is set
//  3. env (prefix PGS_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("PGS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PGS_BASE_URL, PGS_PAGE_SIZE, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PGS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pgs_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("%w: page_size must be positive", ErrInvalidConfig)
	}
	if cfg.CacheMaxAgeMonths <= 0 {
		return nil, fmt.Errorf("%w: cache_max_age_months must be positive", ErrInvalidConfig)
	}
	if cfg.TopN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
