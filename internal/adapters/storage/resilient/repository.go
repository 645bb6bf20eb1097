// Package resilient decorates a quote repository with a circuit breaker,
// retries for reads, tracing and latency metrics.
//
// Mutations are attempted exactly once: a retried reaction or view could be
// applied twice.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const (
	instrumentationName = "github.com/jsamuelsen/quote-service/internal/adapters/storage/resilient"

	defaultName = "quote-repository"

	// jitterRangeMultiplier converts rand [0,1) to [-1,1) for symmetric jitter.
	jitterRangeMultiplier = 2
)

// ErrCircuitOpen is wrapped into the Unavailable error returned while the
// breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Config configures the decorator.
type Config struct {
	// Name labels spans, metrics and errors. Defaults to "quote-repository".
	Name string

	Retry          config.RetryConfig
	CircuitBreaker config.CircuitBreakerConfig

	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Repository is a ports.QuoteRepository guarded by a Breaker.
type Repository struct {
	next    ports.QuoteRepository
	name    string
	retry   config.RetryConfig
	breaker *Breaker
	metrics *metrics.Metrics
	logger  *slog.Logger

	tracer trace.Tracer
	calls  metric.Int64Counter

	// sleep waits between read attempts. Overridable for testing.
	sleep func(context.Context, time.Duration) error
}

var _ ports.QuoteRepository = (*Repository)(nil)

// New wraps next.
func New(next ports.QuoteRepository, cfg Config) (*Repository, error) {
	if next == nil {
		return nil, errors.New("resilient: repository is required")
	}

	name := cfg.Name
	if name == "" {
		name = defaultName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	retry := cfg.Retry
	retry.MaxAttempts = max(retry.MaxAttempts, 1)

	calls, err := otel.Meter(instrumentationName).Int64Counter(
		"quote.repository.calls",
		metric.WithDescription("Quote repository calls by operation and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating call counter: %w", err)
	}

	r := &Repository{
		next:  next,
		name:  name,
		retry: retry,
		breaker: NewBreaker(BreakerConfig{
			MaxFailures: cfg.CircuitBreaker.MaxFailures,
			Cooldown:    cfg.CircuitBreaker.Timeout,
			Probes:      cfg.CircuitBreaker.HalfOpenLimit,
		}),
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "resilient.Repository"), slog.String("repository", name)),
		tracer:  otel.Tracer(instrumentationName),
		calls:   calls,
		sleep:   sleepContext,
	}

	r.metrics.SetBreakerState(name, int(StateClosed))
	r.breaker.OnStateChange(func(from, to State) {
		r.metrics.SetBreakerState(name, int(to))
		r.logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	return r, nil
}

// State reports the breaker state.
func (r *Repository) State() State {
	return r.breaker.State()
}

// ListAll implements ports.QuoteReader.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Quote, error) {
	return read(ctx, r, "list_all", r.next.ListAll)
}

// GetByID implements ports.QuoteReader.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	return read(ctx, r, "get_by_id", func(ctx context.Context) (*domain.Quote, error) {
		return r.next.GetByID(ctx, id)
	})
}

// ListPage implements ports.QuoteReader.
func (r *Repository) ListPage(ctx context.Context, afterID int64, limit int) ([]domain.Quote, error) {
	return read(ctx, r, "list_page", func(ctx context.Context) ([]domain.Quote, error) {
		return r.next.ListPage(ctx, afterID, limit)
	})
}

// TopByLikes implements ports.QuoteReader.
func (r *Repository) TopByLikes(ctx context.Context, limit int) ([]domain.Quote, error) {
	return read(ctx, r, "top_by_likes", func(ctx context.Context) ([]domain.Quote, error) {
		return r.next.TopByLikes(ctx, limit)
	})
}

// Recent implements ports.QuoteReader.
func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.Quote, error) {
	return read(ctx, r, "recent", func(ctx context.Context) ([]domain.Quote, error) {
		return r.next.Recent(ctx, limit)
	})
}

// Totals implements ports.QuoteReader.
func (r *Repository) Totals(ctx context.Context) (domain.Totals, error) {
	return read(ctx, r, "totals", r.next.Totals)
}

// SourceTypeBreakdown implements ports.QuoteReader.
func (r *Repository) SourceTypeBreakdown(ctx context.Context) ([]domain.SourceTypeStats, error) {
	return read(ctx, r, "source_type_breakdown", r.next.SourceTypeBreakdown)
}

// TopSources implements ports.QuoteReader.
func (r *Repository) TopSources(ctx context.Context, limit int) ([]domain.SourceStats, error) {
	return read(ctx, r, "top_sources", func(ctx context.Context) ([]domain.SourceStats, error) {
		return r.next.TopSources(ctx, limit)
	})
}

// CountBySource implements ports.QuoteReader.
func (r *Repository) CountBySource(ctx context.Context, source string) (int64, error) {
	return read(ctx, r, "count_by_source", func(ctx context.Context) (int64, error) {
		return r.next.CountBySource(ctx, source)
	})
}

// ExistsText implements ports.QuoteReader.
func (r *Repository) ExistsText(ctx context.Context, text, source string) (bool, error) {
	return read(ctx, r, "exists_text", func(ctx context.Context) (bool, error) {
		return r.next.ExistsText(ctx, text, source)
	})
}

// IncrementCounter implements ports.QuoteWriter.
func (r *Repository) IncrementCounter(ctx context.Context, id int64, counter domain.Counter, delta int64) (int64, error) {
	return write(ctx, r, "increment_counter", func(ctx context.Context) (int64, error) {
		return r.next.IncrementCounter(ctx, id, counter, delta)
	})
}

// ApplyReaction implements ports.QuoteWriter.
func (r *Repository) ApplyReaction(ctx context.Context, id int64, reaction domain.Reaction, at time.Time) (*domain.Quote, error) {
	return write(ctx, r, "apply_reaction", func(ctx context.Context) (*domain.Quote, error) {
		return r.next.ApplyReaction(ctx, id, reaction, at)
	})
}

// Create implements ports.QuoteWriter.
func (r *Repository) Create(ctx context.Context, q domain.Quote) (*domain.Quote, error) {
	return write(ctx, r, "create", func(ctx context.Context) (*domain.Quote, error) {
		return r.next.Create(ctx, q)
	})
}

func read[T any](ctx context.Context, r *Repository, op string, fn func(context.Context) (T, error)) (T, error) {
	return call(ctx, r, op, r.retry.MaxAttempts, fn)
}

func write[T any](ctx context.Context, r *Repository, op string, fn func(context.Context) (T, error)) (T, error) {
	return call(ctx, r, op, 1, fn)
}

func call[T any](ctx context.Context, r *Repository, op string, attempts int, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	logger := logging.FromContextOr(ctx, r.logger).With(slog.String("operation", op))

	ctx, span := r.tracer.Start(ctx, "repository."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.operation", op),
			attribute.String("peer.service", r.name),
		),
	)
	defer span.End()

	var (
		value T
		err   error
	)

	for attempt := range attempts {
		if attempt > 0 {
			backoff := r.backoff(attempt)
			logger.DebugContext(ctx, "retrying repository read",
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)

			if waitErr := r.sleep(ctx, backoff); waitErr != nil {
				err = waitErr
				break
			}
		}

		if !r.breaker.Allow() {
			err = fmt.Errorf("%w: %w", domain.NewUnavailableError(r.name, "circuit open"), ErrCircuitOpen)
			break
		}

		value, err = fn(ctx)
		if countsAsFailure(ctx, err) {
			r.breaker.Failure()
		} else {
			r.breaker.Success()
		}

		if !retryable(ctx, err) {
			break
		}
	}

	span.SetAttributes(attribute.String("circuit.state", r.breaker.State().String()))
	r.record(ctx, op, start, err)

	if err != nil {
		if countsAsFailure(ctx, err) {
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
			logger.WarnContext(ctx, "repository call failed",
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err),
			)
		}

		var zero T

		return zero, err
	}

	return value, nil
}

func (r *Repository) record(ctx context.Context, op string, start time.Time, err error) {
	result := metrics.ResultOK

	switch {
	case err == nil:
	case domain.IsNotFound(err):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}

	var recordErr error
	if result == metrics.ResultError {
		recordErr = err
	}

	r.metrics.ObserveRepository(op, start, recordErr)
	r.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("result", result),
	))
}

// backoff returns initial * multiplier^(attempt-1), capped and jittered.
func (r *Repository) backoff(attempt int) time.Duration {
	d := float64(r.retry.InitialInterval) * math.Pow(r.retry.Multiplier, float64(attempt-1))

	if r.retry.MaxInterval > 0 && d > float64(r.retry.MaxInterval) {
		d = float64(r.retry.MaxInterval)
	}

	jitter := rand.Float64()*jitterRangeMultiplier - 1 //nolint:gosec // backoff jitter needs no crypto randomness
	d += d * r.retry.JitterFactor * jitter

	return time.Duration(max(d, 0))
}

// countsAsFailure reports whether err says the database is unhealthy. Domain
// outcomes and the caller giving up do not.
func countsAsFailure(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}

	return domain.IsUnavailable(err)
}

func retryable(ctx context.Context, err error) bool {
	return countsAsFailure(ctx, err) && !errors.Is(err, ErrCircuitOpen)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
