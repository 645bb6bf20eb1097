package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// SelectionEngine picks a random quote biased by weight and counts the view.
type SelectionEngine struct {
	repo    ports.QuoteRepository
	rand    Random
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// SelectionEngineConfig contains the engine dependencies.
type SelectionEngineConfig struct {
	Repository ports.QuoteRepository
	Random     Random
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewSelectionEngine creates a selection engine. It panics without a repository.
// A missing Random defaults to a time-seeded generator.
func NewSelectionEngine(cfg SelectionEngineConfig) *SelectionEngine {
	if cfg.Repository == nil {
		panic("app: selection engine requires a quote repository")
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = NewLockedRand(0)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SelectionEngine{
		repo:    cfg.Repository,
		rand:    rnd,
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "app.SelectionEngine")),
	}
}

// Pick draws one quote and increments its watch count. The boolean is false
// when the corpus is empty; that is not an error. Only WatchCount on the
// returned quote reflects the increment.
func (e *SelectionEngine) Pick(ctx context.Context) (*domain.Quote, bool, error) {
	logger := logging.FromContextOr(ctx, e.logger)

	quotes, err := e.repo.ListAll(ctx)
	if err != nil {
		e.metrics.ObservePick(metrics.ResultError)
		return nil, false, fmt.Errorf("listing quotes: %w", err)
	}

	if len(quotes) == 0 {
		e.metrics.ObservePick(metrics.ResultEmpty)
		logger.DebugContext(ctx, "pick on empty corpus")

		return nil, false, nil
	}

	chosen := quotes[e.choose(ctx, logger, quotes)]

	watches, err := e.repo.IncrementCounter(ctx, chosen.ID, domain.CounterWatches, 1)
	if err != nil {
		e.metrics.ObservePick(metrics.ResultError)
		return nil, false, fmt.Errorf("counting view of quote %d: %w", chosen.ID, err)
	}

	chosen.WatchCount = watches

	e.metrics.ObservePick(metrics.ResultOK)
	logger.DebugContext(ctx, "picked quote",
		slog.Int64("quote_id", chosen.ID),
		slog.Int("weight", chosen.Weight),
		slog.Int64("watches", watches),
	)

	return &chosen, true, nil
}

// choose returns the index of the drawn quote. It falls back to a uniform
// draw when every sampling weight is zero.
func (e *SelectionEngine) choose(ctx context.Context, logger *slog.Logger, quotes []domain.Quote) int {
	weights := make([]int, len(quotes))
	total := 0

	for i := range quotes {
		w, ok := quotes[i].SamplingWeight()
		if !ok {
			violation := domain.NewInvariantViolationError(quotes[i].ID, "weight",
				int64(quotes[i].Weight), int64(domain.ClampWeight(quotes[i].Weight)))
			logger.WarnContext(ctx, "quote weight out of range", slog.Any("error", violation))
		}

		weights[i] = w
		total += w
	}

	if total <= 0 {
		return e.rand.IntN(len(quotes))
	}

	target := e.rand.IntN(total)
	for i, w := range weights {
		if target < w {
			return i
		}

		target -= w
	}

	return len(quotes) - 1
}
