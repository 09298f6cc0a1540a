//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "github.com/jsamuelsen/pipe-sizing/internal/adapters/http"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/handlers"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/metrics"
	"github.com/jsamuelsen/pipe-sizing/internal/app"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/config"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// newStack serves the fully wired service from an httptest server, configured
// the way cmd/service wires it from the "test" profile.
func newStack(tb testing.TB) *httptest.Server {
	tb.Helper()

	cfg, err := config.LoadFrom("../../configs", "test")
	if err != nil {
		tb.Fatalf("loading config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		tb.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	prom, err := metrics.NewPrometheus(reg)
	if err != nil {
		tb.Fatalf("registering metrics: %v", err)
	}

	converter := app.NewConversionService(app.ConversionServiceConfig{
		Metrics:          prom,
		Logger:           logger,
		BatchConcurrency: cfg.Conversion.BatchConcurrency,
	})

	sizer := app.NewSizingService(app.SizingServiceConfig{
		Metrics: prom,
		Logger:  logger,
		Limits:  domain.RegimeLimits{Laminar: cfg.Sizing.LaminarLimit, Turbulent: cfg.Sizing.TurbulentLimit},
	})

	registry := ports.NewHealthRegistry(ports.WithCheckTimeout(time.Second))
	if err := registry.Register(app.TableChecker(cfg.Conversion.VerifyTolerance)); err != nil {
		tb.Fatalf("registering check: %v", err)
	}

	display := domain.System(cfg.Conversion.DisplaySystem)

	srv := httpadapter.New(&cfg.Server, logger)
	httpadapter.SetupRouter(srv.Engine(), httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo(cfg.App.Name, "it", "none", "now"), handlers.WithGatherer(reg)),
		UnitsHandler:  handlers.NewUnitsHandler(converter),
		ConversionHandler: handlers.NewConversionHandler(handlers.ConversionHandlerConfig{
			Converter:     converter,
			DefaultTarget: display,
			MaxBatchSize:  cfg.Conversion.MaxBatchSize,
		}),
		SizingHandler: handlers.NewSizingHandler(sizer, display),
		Timeout:       cfg.Server.RequestTimeout,
	})

	ts := httptest.NewServer(srv.Engine())
	tb.Cleanup(ts.Close)

	return ts
}
