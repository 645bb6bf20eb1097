package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Default section sizes of the summary.
const (
	DefaultTopSources = 5
	DefaultRecent     = 5
)

// StatsAggregator builds the dashboard summary of the corpus.
type StatsAggregator struct {
	repo       ports.QuoteReader
	topSources int
	recent     int
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// StatsAggregatorConfig contains the aggregator dependencies.
type StatsAggregatorConfig struct {
	Repository ports.QuoteReader
	TopSources int
	Recent     int
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewStatsAggregator creates a stats aggregator. It panics without a repository.
func NewStatsAggregator(cfg StatsAggregatorConfig) *StatsAggregator {
	if cfg.Repository == nil {
		panic("app: stats aggregator requires a quote repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsAggregator{
		repo:       cfg.Repository,
		topSources: cmp.Or(cfg.TopSources, DefaultTopSources),
		recent:     cmp.Or(cfg.Recent, DefaultRecent),
		metrics:    cfg.Metrics,
		logger:     logger.With(slog.String("component", "app.StatsAggregator")),
	}
}

type summarySection struct {
	name string
	load func(context.Context) (func(*domain.Summary), error)
}

// Summary loads totals, the source type breakdown, top sources and recent
// quotes concurrently. A failing section is logged and left empty with
// Degraded set; only when every section fails is an error returned.
func (a *StatsAggregator) Summary(ctx context.Context) (*domain.Summary, error) {
	start := time.Now()
	defer a.metrics.ObserveSummary(start)

	logger := logging.FromContextOr(ctx, a.logger)
	sections := a.sections()

	loaders := make([]func(context.Context) (func(*domain.Summary), error), len(sections))
	for i, s := range sections {
		loaders[i] = s.load
	}

	summary := &domain.Summary{
		BySourceType: []domain.SourceTypeStats{},
		TopSources:   []domain.SourceStats{},
		Recent:       []domain.Quote{},
	}

	var errs []error

	for i, r := range ParallelPartial(ctx, loaders...) {
		if r.Err != nil {
			logger.WarnContext(ctx, "summary section unavailable",
				slog.String("section", sections[i].name),
				slog.Any("error", r.Err),
			)

			summary.Degraded = true
			errs = append(errs, r.Err)

			continue
		}

		r.Value(summary)
	}

	if len(errs) == len(sections) {
		err := errors.Join(errs...)
		if !domain.IsUnavailable(err) {
			err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}

		return nil, err
	}

	return summary, nil
}

func (a *StatsAggregator) sections() []summarySection {
	return []summarySection{
		{name: "totals", load: func(ctx context.Context) (func(*domain.Summary), error) {
			totals, err := a.repo.Totals(ctx)
			if err != nil {
				return nil, err
			}

			if totals.Quotes == 0 {
				totals = domain.Totals{}
			}

			return func(s *domain.Summary) { s.Totals = totals }, nil
		}},
		{name: "by_source_type", load: func(ctx context.Context) (func(*domain.Summary), error) {
			groups, err := a.repo.SourceTypeBreakdown(ctx)
			if err != nil {
				return nil, err
			}

			return func(s *domain.Summary) { s.BySourceType = labelSourceTypes(groups) }, nil
		}},
		{name: "top_sources", load: func(ctx context.Context) (func(*domain.Summary), error) {
			top, err := a.repo.TopSources(ctx, a.topSources)
			if err != nil {
				return nil, err
			}

			return func(s *domain.Summary) { s.TopSources = append(s.TopSources, top...) }, nil
		}},
		{name: "recent", load: func(ctx context.Context) (func(*domain.Summary), error) {
			recent, err := a.repo.Recent(ctx, a.recent)
			if err != nil {
				return nil, err
			}

			return func(s *domain.Summary) { s.Recent = append(s.Recent, recent...) }, nil
		}},
	}
}

// labelSourceTypes attaches display labels and orders groups by count
// descending, then by source type code.
func labelSourceTypes(groups []domain.SourceTypeStats) []domain.SourceTypeStats {
	out := make([]domain.SourceTypeStats, len(groups))
	for i, g := range groups {
		g.Label = g.SourceType.Label()
		out[i] = g
	}

	slices.SortStableFunc(out, func(a, b domain.SourceTypeStats) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.SourceType, b.SourceType)
	})

	return out
}
