//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/resilient"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// service is the quote API wired as in cmd/service, served by httptest over a
// throwaway SQLite file.
type service struct {
	server  *httptest.Server
	store   *sqlstore.Store
	repo    *resilient.Repository
	catalog *app.CatalogService
	dir     string
}

func testResilience() (config.RetryConfig, config.CircuitBreakerConfig) {
	return config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
		}, config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		}
}

// startService opens a fresh database and serves the full router. seed picks
// the selection generator so weighted draws are reproducible.
func startService(seed uint64) (*service, error) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "quote-service-it-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:       sqlstore.DriverSQLite,
		DSN:          filepath.Join(dir, "quotes.db"),
		QueryTimeout: 2 * time.Second,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	retry, breaker := testResilience()

	repo, err := resilient.New(store, resilient.Config{
		Retry:          retry,
		CircuitBreaker: breaker,
		Metrics:        m,
		Logger:         logger,
	})
	if err != nil {
		_ = store.Close()
		_ = os.RemoveAll(dir)

		return nil, err
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		_ = store.Close()
		_ = os.RemoveAll(dir)

		return nil, err
	}

	catalog := app.NewCatalogService(app.CatalogServiceConfig{Repository: repo, Logger: logger})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:         logger,
		AppConfig:      &config.AppConfig{Name: "quote-service", Version: "it", Environment: "test"},
		RequestTimeout: 5 * time.Second,
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("it", "none", "now"), reg),
		QuoteHandler: handlers.NewQuoteHandler(
			app.NewSelectionEngine(app.SelectionEngineConfig{
				Repository: repo,
				Random:     app.NewLockedRand(seed),
				Metrics:    m,
				Logger:     logger,
			}),
			app.NewReactionProcessor(app.ReactionProcessorConfig{Repository: repo, Metrics: m, Logger: logger}),
			catalog,
		),
		StatsHandler: handlers.NewStatsHandler(app.NewStatsAggregator(app.StatsAggregatorConfig{
			Repository: repo,
			Metrics:    m,
			Logger:     logger,
		})),
	})

	return &service{
		server:  httptest.NewServer(engine),
		store:   store,
		repo:    repo,
		catalog: catalog,
		dir:     dir,
	}, nil
}

// URL is the base address of the running API.
func (s *service) URL() string {
	return s.server.URL
}

// Close stops the server and removes the database.
func (s *service) Close() {
	s.server.Close()
	_ = s.store.Close()
	_ = os.RemoveAll(s.dir)
}
