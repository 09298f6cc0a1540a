package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/handlers"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/middleware"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves the /-/ endpoints.
	HealthHandler *handlers.HealthHandler

	UnitsHandler      *handlers.UnitsHandler
	ConversionHandler *handlers.ConversionHandler
	SizingHandler     *handlers.SizingHandler

	// HTTPMetrics records request metrics. Nil disables them.
	HTTPMetrics *telemetry.HTTPMetrics

	// Timeout is the deadline of /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - propagate the client's session ID
//  4. OpenTelemetry - server span, then request metrics
//  5. Logging - request logging (skips /-/ endpoints)
//  6. Timeout - /api/v1 only
//
// Route groups:
//   - /-/ (operational): liveness, readiness, build info, metrics
//   - /api/v1/ (public API): units, conversions, sizing
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(cfg.HTTPMetrics),
		middleware.Logging(cfg.Logger),
	)

	// Probes get no timeout.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.UnitsHandler != nil {
		cfg.UnitsHandler.RegisterUnitRoutes(rg)
	}

	if cfg.ConversionHandler != nil {
		cfg.ConversionHandler.RegisterConversionRoutes(rg)
	}

	if cfg.SizingHandler != nil {
		cfg.SizingHandler.RegisterSizingRoutes(rg)
	}
}
