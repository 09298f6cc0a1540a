package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newReader(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return reader, provider
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func sumFor(t *testing.T, m metricdata.Metrics, attrs ...attribute.KeyValue) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	want := attribute.NewSet(attrs...)

	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			return dp.Value
		}
	}

	return 0
}

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestRecorder_RecordConversion(t *testing.T) {
	reader, provider := newReader(t)

	rec, err := NewRecorder(provider.Meter("test"))
	require.NoError(t, err)

	rec.RecordConversion(domain.CategoryLength, domain.SystemMetric, domain.StatusConverted)
	rec.RecordConversion(domain.CategoryLength, domain.SystemMetric, domain.StatusConverted)
	rec.RecordConversion("", domain.SystemImperial, domain.StatusUnrecognizedUnit)

	metrics := collect(t, reader)
	conversions := metrics["pipe_sizing.conversions"]

	assert.Equal(t, int64(2), sumFor(t, conversions,
		attribute.String("category", "length"),
		attribute.String("status", "converted"),
		attribute.String("target", "metric"),
	))
	assert.Equal(t, int64(1), sumFor(t, conversions,
		attribute.String("category", "unrecognized"),
		attribute.String("status", "unrecognized_unit"),
		attribute.String("target", "imperial"),
	))
}

func TestRecorder_RecordSizing(t *testing.T) {
	reader, provider := newReader(t)

	rec, err := NewRecorder(provider.Meter("test"))
	require.NoError(t, err)

	rec.RecordSizing(domain.RegimeTurbulent, 3*time.Millisecond, nil)
	rec.RecordSizing("", 0, errors.New("boom"))

	metrics := collect(t, reader)

	assert.Equal(t, int64(1), sumFor(t, metrics["pipe_sizing.sizings"],
		attribute.String("outcome", "ok"),
		attribute.String("regime", "turbulent"),
	))
	assert.Equal(t, int64(1), sumFor(t, metrics["pipe_sizing.sizings"],
		attribute.String("outcome", "error"),
		attribute.String("regime", "none"),
	))

	hist, ok := metrics["pipe_sizing.sizing.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.003, hist.DataPoints[0].Sum, 1e-9)
}

func TestMiddleware(t *testing.T) {
	reader, provider := newReader(t)

	m, err := NewHTTPMetrics(provider.Meter("test"))
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(otelgin.Middleware("pipe-sizing", otelgin.WithTracerProvider(tp)), Middleware(m))
	router.GET("/api/v1/units", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/units", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(TraceIDHeader), 32)

	metrics := collect(t, reader)
	assert.Equal(t, int64(1), sumFor(t, metrics["http.server.request.total"],
		attribute.String("http.method", http.MethodGet),
		attribute.String("http.route", "/api/v1/units"),
		attribute.Int("http.status_code", http.StatusOK),
	))
}

func TestMiddleware_NilMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Middleware(nil))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get(TraceIDHeader))
}
