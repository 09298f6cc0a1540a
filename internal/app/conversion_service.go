// Package app contains the use cases that sit between the HTTP adapter and the
// domain: reading raw form fields into quantities, converting them, sizing pipes
// and recording what happened.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

const defaultBatchConcurrency = 8

// ConversionService implements ports.UnitConverter on the default conversion table.
type ConversionService struct {
	table       *domain.Table
	metrics     ports.MetricsRecorder
	logger      *slog.Logger
	concurrency int
}

// ConversionServiceConfig contains configuration for the conversion service.
type ConversionServiceConfig struct {
	Metrics          ports.MetricsRecorder
	Logger           *slog.Logger
	BatchConcurrency int
}

// NewConversionService creates a conversion service. Missing dependencies fall back
// to no-op metrics and the default logger.
func NewConversionService(cfg ConversionServiceConfig) *ConversionService {
	s := &ConversionService{
		table:       domain.DefaultTable(),
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		concurrency: cfg.BatchConcurrency,
	}

	if s.metrics == nil {
		s.metrics = ports.NopMetrics{}
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.concurrency <= 0 {
		s.concurrency = defaultBatchConcurrency
	}

	s.logger = s.logger.With(slog.String("component", "app.ConversionService"))

	return s
}

// Convert reads the request into a quantity and converts it to the target system.
// Unknown unit tags are not errors: they are reported through the status.
func (s *ConversionService) Convert(ctx context.Context, req ports.ConversionRequest) (ports.ConversionResult, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	target, err := domain.ParseSystem(string(req.Target))
	if err != nil {
		return ports.ConversionResult{}, fmt.Errorf("target system: %w", err)
	}

	q, err := readQuantity(req)
	if err != nil {
		return ports.ConversionResult{}, fmt.Errorf("reading %q: %w", req.Name, err)
	}

	converted, status := s.table.Convert(q, target)
	s.metrics.RecordConversion(q.Category(), target, status)

	logger.DebugContext(ctx, "converted quantity",
		slog.String("from", q.Describe()),
		slog.String("to", converted.Describe()),
		slog.String("status", status.String()),
	)

	return ports.ConversionResult{Quantity: converted, Status: status}, nil
}

// ConvertBatch converts every request with bounded concurrency. Per-item failures
// are returned in the item's Err; only cancellation fails the whole batch.
func (s *ConversionService) ConvertBatch(ctx context.Context, reqs []ports.ConversionRequest) ([]ports.ConversionResult, error) {
	fns := make([]func(context.Context) (ports.ConversionResult, error), len(reqs))
	for i, req := range reqs {
		fns[i] = func(ctx context.Context) (ports.ConversionResult, error) {
			return s.Convert(ctx, req)
		}
	}

	partial := ParallelPartialLimit(ctx, s.concurrency, fns...)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("converting batch: %w", err)
	}

	out := make([]ports.ConversionResult, len(partial))
	for i, r := range partial {
		out[i] = r.Value
		if r.Err != nil {
			out[i] = ports.ConversionResult{Err: r.Err}
		}
	}

	return out, nil
}

// Catalogue lists every unit grouped by category.
func (s *ConversionService) Catalogue(context.Context) []domain.CatalogueEntry {
	return s.table.Catalogue()
}

// Units lists the units of one category.
func (s *ConversionService) Units(_ context.Context, category string) (domain.CatalogueEntry, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return domain.CatalogueEntry{}, err
	}

	return domain.CatalogueEntry{Category: c, Units: s.table.Units(c)}, nil
}

func readQuantity(req ports.ConversionRequest) (domain.Quantity, error) {
	if req.Unit != "" {
		return domain.NewRawQuantity(req.Name, req.Value, req.Unit)
	}

	category, err := domain.ParseCategory(string(req.Category))
	if err != nil {
		return domain.Quantity{}, domain.NewValidationErrorWithValue("category", "unsupported category", req.Category)
	}

	system, err := domain.ParseSystem(string(req.System))
	if err != nil {
		return domain.Quantity{}, err
	}

	return domain.NewQuantityInSystem(req.Name, req.Value, category, system)
}

// TableChecker reports the conversion table as unhealthy when it breaks round-trip
// or transitivity beyond tolerance.
func TableChecker(tolerance float64) ports.HealthChecker {
	return ports.CheckerFunc("conversion-table", func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		return domain.DefaultTable().Verify(tolerance)
	})
}
