package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/quote-service/internal/platform/telemetry"

// HeaderTraceID carries the trace id back to the caller.
const HeaderTraceID = "X-Trace-ID"

type httpMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPMetrics() (*httpMetrics, error) {
	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("HTTP requests by route and status"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("HTTP requests in flight"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, requests: requests, active: active}, nil
}

// Middleware returns the otelgin tracing handler followed by a handler that
// tags the request logger with the trace id, echoes it in X-Trace-ID and
// records request metrics.
func Middleware(serviceName string) []gin.HandlerFunc {
	m, err := newHTTPMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		func(c *gin.Context) {
			ctx := c.Request.Context()

			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				traceID := sc.TraceID().String()
				c.Header(HeaderTraceID, traceID)
				c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
			}

			if m == nil {
				c.Next()
				return
			}

			start := time.Now()
			route := attribute.String("http.route", c.FullPath())
			method := attribute.String("http.method", c.Request.Method)

			m.active.Add(ctx, 1, metric.WithAttributes(method, route))
			defer m.active.Add(ctx, -1, metric.WithAttributes(method, route))

			c.Next()

			attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
			m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
			m.requests.Add(ctx, 1, attrs)
		},
	}
}
