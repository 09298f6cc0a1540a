package benchmark

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/pipe-sizing/internal/adapters/http"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/handlers"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/middleware"
	"github.com/jsamuelsen/pipe-sizing/internal/app"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r

	return c
}

func setupHealthHandler(checkers ...ports.HealthChecker) *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		_ = registry.Register(c)
	}

	return handlers.NewHealthHandler(registry, handlers.NewBuildInfo("pipe-sizing", "1.0.0", "abc123", "2024-01-01T00:00:00Z"))
}

// setupRouter wires the full middleware chain and API routes with real services.
func setupRouter() *gin.Engine {
	converter := app.NewConversionService(app.ConversionServiceConfig{Logger: quietLogger})
	sizer := app.NewSizingService(app.SizingServiceConfig{Logger: quietLogger})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        quietLogger,
		ServiceName:   "bench",
		HealthHandler: setupHealthHandler(),
		UnitsHandler:  handlers.NewUnitsHandler(converter),
		ConversionHandler: handlers.NewConversionHandler(handlers.ConversionHandlerConfig{
			Converter:    converter,
			MaxBatchSize: 1000,
		}),
		SizingHandler: handlers.NewSizingHandler(sizer, domain.SystemMetric),
	})

	return engine
}

// BenchmarkLivenessHandler measures the liveness endpoint, the probe hit most often.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Liveness(createGinContext(w, req))
	}
}

// BenchmarkReadinessHandler_TableCheck measures readiness including the
// conversion table round-trip check.
func BenchmarkReadinessHandler_TableCheck(b *testing.B) {
	handler := setupHealthHandler(app.TableChecker(1e-9))
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Readiness(createGinContext(w, req))
	}
}

// BenchmarkMiddlewareChain measures the overhead of the middleware the API runs behind.
func BenchmarkMiddlewareChain(b *testing.B) {
	router := gin.New()
	router.Use(
		middleware.Recovery(quietLogger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(quietLogger),
	)
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

func benchmarkPost(b *testing.B, path string, body []byte) {
	b.Helper()

	router := setupRouter()

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
}

// BenchmarkConvertEndpoint measures a single conversion through the full router.
func BenchmarkConvertEndpoint(b *testing.B) {
	benchmarkPost(b, "/api/v1/conversions", []byte(`{"name":"length","value":12,"unit":"in"}`))
}

// BenchmarkConvertBatchEndpoint measures a mixed batch through the full router.
func BenchmarkConvertBatchEndpoint(b *testing.B) {
	benchmarkPost(b, "/api/v1/conversions/batch", []byte(`{"items":[
		{"value":1,"unit":"ft"},{"value":2,"unit":"L","target_system":"metric"},
		{"value":3,"unit":"cfm"},{"value":4,"category":"flow","system":"metric","target_system":"standard"},
		{"value":5,"unit":"furlong"},{"value":6,"unit":"ft/s"},{"value":7,"unit":"mm"},{"value":8,"unit":"in³"}
	]}`))
}

// BenchmarkSizingEndpoint measures a sizing request through the full router.
func BenchmarkSizingEndpoint(b *testing.B) {
	benchmarkPost(b, "/api/v1/sizing", []byte(`{
		"flow_rate":{"value":0.01},"velocity":{"value":2},
		"roughness":{"value":0.045,"unit":"mm"},"length":{"value":100},
		"viscosity":0.001,"density":1000,"display_system":"imperial"}`))
}
