package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader carries the server span's trace ID back to the caller.
const TraceIDHeader = "X-Trace-ID"

// HTTPMetrics holds HTTP server instruments.
type HTTPMetrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewHTTPMetrics creates HTTP server instruments on meter, or on the global
// meter provider when meter is nil.
func NewHTTPMetrics(meter metric.Meter) (*HTTPMetrics, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Tracing returns the otelgin server-span middleware for serviceName.
func Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// Middleware records request metrics and echoes the trace ID in the
// X-Trace-ID header. Place it after Tracing so the span is in the context.
// A nil m only sets the header.
func Middleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		m.activeRequests.Add(ctx, 1, metric.WithAttributes(method, route))
		defer m.activeRequests.Add(ctx, -1, metric.WithAttributes(method, route))

		c.Next()

		attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestTotal.Add(ctx, 1, attrs)
	}
}
