// Package main runs the quote service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/resilient"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/seed"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaultProfile := os.Getenv("APP_ENVIRONMENT")
	if defaultProfile == "" {
		defaultProfile = "local"
	}

	profile := flag.String("profile", defaultProfile, "configuration profile loaded from configs/<profile>.yaml")
	configDir := flag.String("config-dir", "configs", "directory holding base.yaml and profile files")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadFrom(*configDir, *profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting quote service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("profile", *profile),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	telProvider, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if shutdownErr := telProvider.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", shutdownErr))
		}
	}()

	m := metrics.New(prometheus.DefaultRegisterer)

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:          sqlstore.Driver(cfg.Storage.Driver),
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
		QueryTimeout:    cfg.Storage.QueryTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening quote store: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing quote store failed", slog.Any("error", closeErr))
		}
	}()

	repo, err := resilient.New(store, resilient.Config{
		Retry:          cfg.Resilience.Retry,
		CircuitBreaker: cfg.Resilience.CircuitBreaker,
		Metrics:        m,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("wrapping quote store: %w", err)
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	selection := app.NewSelectionEngine(app.SelectionEngineConfig{
		Repository: repo,
		Random:     app.NewLockedRand(cfg.Selection.Seed),
		Metrics:    m,
		Logger:     logger,
	})
	reactions := app.NewReactionProcessor(app.ReactionProcessorConfig{
		Repository: repo,
		Metrics:    m,
		Logger:     logger,
	})
	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	stats := app.NewStatsAggregator(app.StatsAggregatorConfig{
		Repository: repo,
		TopSources: cfg.Stats.TopSources,
		Recent:     cfg.Stats.Recent,
		Metrics:    m,
		Logger:     logger,
	})

	if _, err := seed.FromFile(ctx, repo, catalog, cfg.Storage.SeedPath, logger); err != nil {
		return fmt.Errorf("seeding quotes: %w", err)
	}

	server := httpadapter.NewServer(cfg.Server, logger)

	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		RequestTimeout: cfg.Server.RequestTimeout,
		HealthHandler: handlers.NewHealthHandler(
			healthRegistry,
			handlers.NewBuildInfo(Version, Commit, BuildTime),
			prometheus.DefaultGatherer,
		),
		QuoteHandler: handlers.NewQuoteHandler(selection, reactions, catalog),
		StatsHandler: handlers.NewStatsHandler(stats),
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal arrives or the server fails, then
// drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpadapter.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return err
		}

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
