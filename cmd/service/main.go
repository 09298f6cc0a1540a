// Package main is the entry point for the pipe sizing service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/handlers"
	"github.com/jsamuelsen/pipe-sizing/internal/adapters/metrics"
	"github.com/jsamuelsen/pipe-sizing/internal/app"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/config"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/telemetry"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("display_system", cfg.Conversion.DisplaySystem),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Metrics: Prometheus for /-/metrics, OTel for the collector
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promMetrics, err := metrics.NewPrometheus(reg)
	if err != nil {
		return fmt.Errorf("registering prometheus metrics: %w", err)
	}

	otelMetrics, err := telemetry.NewRecorder(nil)
	if err != nil {
		return fmt.Errorf("creating otel recorder: %w", err)
	}

	httpMetrics, err := telemetry.NewHTTPMetrics(nil)
	if err != nil {
		return fmt.Errorf("creating http metrics: %w", err)
	}

	recorder := metrics.Multi{promMetrics, otelMetrics}

	// 6. Application services
	converter := app.NewConversionService(app.ConversionServiceConfig{
		Metrics:          recorder,
		Logger:           logger,
		BatchConcurrency: cfg.Conversion.BatchConcurrency,
	})

	sizer := app.NewSizingService(app.SizingServiceConfig{
		Metrics: recorder,
		Logger:  logger,
		Limits: domain.RegimeLimits{
			Laminar:   cfg.Sizing.LaminarLimit,
			Turbulent: cfg.Sizing.TurbulentLimit,
		},
	})

	// 7. Health registry; a broken conversion table fails readiness
	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(time.Second))
	if err := healthRegistry.Register(app.TableChecker(cfg.Conversion.VerifyTolerance)); err != nil {
		return fmt.Errorf("registering conversion table check: %w", err)
	}

	// 8. Handlers
	display := domain.System(cfg.Conversion.DisplaySystem)
	buildInfo := handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)

	// 9. Create HTTP server and router
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, buildInfo, handlers.WithGatherer(reg)),
		UnitsHandler:  handlers.NewUnitsHandler(converter),
		ConversionHandler: handlers.NewConversionHandler(handlers.ConversionHandlerConfig{
			Converter:     converter,
			DefaultTarget: display,
			MaxBatchSize:  cfg.Conversion.MaxBatchSize,
		}),
		SizingHandler: handlers.NewSizingHandler(sizer, display),
		HTTPMetrics:   httpMetrics,
		Timeout:       cfg.Server.RequestTimeout,
	})

	// 10. Start server (non-blocking)
	serverErr := server.Start()

	// 11. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or the server fails,
// then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
