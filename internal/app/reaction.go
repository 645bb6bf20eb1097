package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// ReactionProcessor applies likes and dislikes to quotes.
type ReactionProcessor struct {
	repo    ports.QuoteWriter
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// ReactionProcessorConfig contains the processor dependencies.
type ReactionProcessorConfig struct {
	Repository ports.QuoteWriter
	Metrics    *metrics.Metrics
	Logger     *slog.Logger

	// Now overrides the clock used for updatedAt. Defaults to time.Now in UTC.
	Now func() time.Time
}

// NewReactionProcessor creates a reaction processor. It panics without a repository.
func NewReactionProcessor(cfg ReactionProcessorConfig) *ReactionProcessor {
	if cfg.Repository == nil {
		panic("app: reaction processor requires a quote repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return &ReactionProcessor{
		repo:    cfg.Repository,
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "app.ReactionProcessor")),
		now:     now,
	}
}

// Like records a like and raises the weight by one, capped at domain.MaxWeight.
func (p *ReactionProcessor) Like(ctx context.Context, id int64) (*domain.Quote, error) {
	return p.Apply(ctx, id, domain.ReactionLike)
}

// Dislike records a dislike and lowers the weight by one, floored at domain.MinWeight.
func (p *ReactionProcessor) Dislike(ctx context.Context, id int64) (*domain.Quote, error) {
	return p.Apply(ctx, id, domain.ReactionDislike)
}

// Apply performs one atomic reaction update. It is attempted exactly once.
// Unknown ids yield domain.ErrNotFound with nothing written.
func (p *ReactionProcessor) Apply(ctx context.Context, id int64, reaction domain.Reaction) (*domain.Quote, error) {
	logger := logging.FromContextOr(ctx, p.logger).With(
		slog.Int64("quote_id", id),
		slog.String("kind", string(reaction)),
	)

	if reaction != domain.ReactionLike && reaction != domain.ReactionDislike {
		return nil, domain.NewValidationErrorWithValue("kind", "must be one of: like, dislike", string(reaction))
	}

	quote, err := p.repo.ApplyReaction(ctx, id, reaction, p.now())
	if err != nil {
		result := metrics.ResultError
		if domain.IsNotFound(err) {
			result = metrics.ResultNotFound
		}

		p.metrics.ObserveReaction(string(reaction), result)
		logger.WarnContext(ctx, "reaction not applied", slog.Any("error", err))

		return nil, fmt.Errorf("applying %s: %w", reaction, err)
	}

	p.metrics.ObserveReaction(string(reaction), metrics.ResultOK)
	logger.InfoContext(ctx, "reaction applied",
		slog.Int("weight", quote.Weight),
		slog.Int64("likes", quote.LikeCount),
		slog.Int64("dislikes", quote.DislikeCount),
	)

	return quote, nil
}
