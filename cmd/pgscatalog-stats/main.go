package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/cache"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/adapters/catalog"
	app "github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/app"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/config"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/internal/report"
	"github.com/lorenasandoval88/get-pgscatalog-polygenic-scores/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level, falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, cleanup := newService(ctx, cfg, log)
	defer cleanup()

	code := 0
	for _, target := range []struct {
		kind  catalog.Kind
		title string
	}{
		{catalog.KindScore, "Polygenic scores"},
		{catalog.KindTrait, "Traits"},
	} {
		res, err := svc.Load(ctx, target.kind)
		if err != nil || res.Summary == nil {
			log.Error(ctx, "no data available", logger.String("kind", string(target.kind)), logger.Error(err))
			code = 1
			continue
		}
		if err := report.Write(os.Stdout, target.title, *res.Summary, res.Stale, cfg.TopN); err != nil {
			log.Error(ctx, "report rendering failed", logger.Error(err))
			code = 1
		}
	}
	return code
}

// newService wires the store, client and orchestrator from configuration.
// A cache store that fails to open degrades to an in-memory one; the run
// then simply has no persistence.
func newService(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.Service, func()) {
	if dir := filepath.Dir(cfg.CachePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn(ctx, "cannot create cache directory", logger.String("dir", dir), logger.Error(err))
		}
	}

	var store cache.Store
	cleanup := func() {}
	bolt, err := cache.NewBoltStore(cfg.CachePath)
	if err != nil {
		log.Warn(ctx, "cache store unavailable, continuing without persistence",
			logger.String("path", cfg.CachePath), logger.Error(err))
		store = cache.NewMemoryStore()
	} else {
		store = bolt
		cleanup = func() { _ = bolt.Close() }
	}

	client := catalog.New(
		catalog.WithBaseURL(cfg.BaseURL),
		catalog.WithLogger(log.Named("catalog")),
	)
	svc := app.New(
		app.WithFetcher(client),
		app.WithStore(store),
		app.WithPageSize(cfg.PageSize),
		app.WithMaxAgeMonths(cfg.CacheMaxAgeMonths),
		app.WithLogger(log.Named("app")),
	)
	return svc, cleanup
}
