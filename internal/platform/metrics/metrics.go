// Package metrics exposes the quote engine's business metrics to Prometheus.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quote"

// Result labels.
const (
	ResultOK       = "ok"
	ResultEmpty    = "empty"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the collectors registered for one service instance.
type Metrics struct {
	picks           *prometheus.CounterVec
	reactions       *prometheus.CounterVec
	summaryDuration prometheus.Histogram
	repoDuration    *prometheus.HistogramVec
	breakerState    *prometheus.GaugeVec
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer
// makes them visible on the /-/metrics endpoint.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		picks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_total",
			Help:      "Random picks by outcome.",
		}, []string{"result"}),
		reactions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reactions_total",
			Help:      "Likes and dislikes by outcome.",
		}, []string{"kind", "result"}),
		summaryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stats_summary_seconds",
			Help:      "Time spent building the statistics summary.",
			Buckets:   prometheus.DefBuckets,
		}),
		repoDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "repository_operation_seconds",
			Help:      "Quote repository call latency.",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		breakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repository_circuit_state",
			Help:      "Circuit breaker state: 0 closed, 1 open, 2 half-open.",
		}, []string{"name"}),
	}
}

// ObservePick counts one pick with the given result.
func (m *Metrics) ObservePick(result string) {
	if m == nil {
		return
	}

	m.picks.WithLabelValues(result).Inc()
}

// ObserveReaction counts one reaction attempt.
func (m *Metrics) ObserveReaction(kind, result string) {
	if m == nil {
		return
	}

	m.reactions.WithLabelValues(kind, result).Inc()
}

// ObserveSummary records how long a summary took since start.
func (m *Metrics) ObserveSummary(start time.Time) {
	if m == nil {
		return
	}

	m.summaryDuration.Observe(time.Since(start).Seconds())
}

// ObserveRepository records a repository call since start.
func (m *Metrics) ObserveRepository(operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	status := ResultOK
	if err != nil {
		status = ResultError
	}

	m.repoDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

// SetBreakerState publishes the numeric circuit breaker state.
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}

	m.breakerState.WithLabelValues(name).Set(float64(state))
}
