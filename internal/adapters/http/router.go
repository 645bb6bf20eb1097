package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// RouterConfig lists what the router mounts.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	// RequestTimeout bounds every /api/v1 request. Zero disables it.
	RequestTimeout time.Duration

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler
	StatsHandler  *handlers.StatsHandler
}

// SetupRouter installs the middleware chain and routes on engine, in order:
//  1. Recovery
//  2. Context logger, request id, correlation id
//  3. OpenTelemetry tracing and HTTP metrics
//  4. Request logging (skips /-/)
//  5. Timeout, on /api/v1 only
//
// Ops endpoints live under /-/ and business endpoints under /api/v1.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api/v1")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.StatsHandler != nil {
		cfg.StatsHandler.RegisterStatsRoutes(api)
	}
}
