package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// Form field labels.
const (
	FieldFlowRate  = "Flow Rate"
	FieldVelocity  = "Velocity"
	FieldRoughness = "Roughness"
	FieldLength    = "Length"
)

// SizingService implements ports.PipeSizer.
type SizingService struct {
	executor *Executor
	table    *domain.Table
	metrics  ports.MetricsRecorder
	limits   domain.RegimeLimits
	logger   *slog.Logger
}

// SizingServiceConfig contains configuration for the sizing service.
type SizingServiceConfig struct {
	Metrics ports.MetricsRecorder
	Logger  *slog.Logger
	Limits  domain.RegimeLimits
}

// NewSizingService creates a sizing service.
func NewSizingService(cfg SizingServiceConfig) *SizingService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	limits := cfg.Limits
	if limits == (domain.RegimeLimits{}) {
		limits = domain.DefaultRegimeLimits
	}

	logger = logger.With(slog.String("component", "app.SizingService"))

	return &SizingService{
		executor: NewExecutor(logger),
		table:    domain.DefaultTable(),
		metrics:  metrics,
		limits:   limits,
		logger:   logger,
	}
}

type sized struct {
	inputs []domain.Quantity
	result domain.SizingResult
	took   time.Duration
}

// Size normalises the raw form fields to metric, sizes the pipe and expresses the
// diameter in the requested display system. When the display system has no length
// unit the diameter stays metric and DiameterState says why.
func (s *SizingService) Size(ctx context.Context, req ports.SizingRequest) (ports.SizingResponse, error) {
	var display domain.System

	op := Operation[ports.SizingRequest, sized, sized, ports.SizingResponse]{
		Name: "size_pipe",
		Validate: func(_ context.Context, in ports.SizingRequest) error {
			if in.DisplaySystem == "" {
				display = domain.SystemMetric
				return nil
			}

			var err error

			display, err = domain.ParseSystem(string(in.DisplaySystem))

			return err
		},
		Perform: func(ctx context.Context, in ports.SizingRequest) (sized, error) {
			start := time.Now()

			input, inputs, err := s.normalise(in)
			if err != nil {
				return sized{}, err
			}

			result, err := domain.Size(input)
			if err != nil {
				return sized{}, err
			}

			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Float64("sizing.diameter_m", result.Diameter.Value()),
				attribute.Float64("sizing.reynolds", result.Reynolds),
				attribute.String("sizing.regime", string(result.Regime)),
			)

			return sized{inputs: inputs, result: result, took: time.Since(start)}, nil
		},
		Verify: func(_ context.Context, _ ports.SizingRequest, p sized) (sized, error) {
			for name, v := range map[string]float64{
				"diameter":        p.result.Diameter.Value(),
				"reynolds":        p.result.Reynolds,
				"friction_factor": p.result.FrictionFactor,
				"pressure_drop":   p.result.PressureDrop,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					return sized{}, domain.NewInvalidValueError(name, v)
				}
			}

			if p.result.Diameter.Value() == 0 {
				return sized{}, domain.NewValidationError("diameter", "computed diameter is zero")
			}

			return p, nil
		},
		Record: func(_ context.Context, _ ports.SizingRequest, v sized) error {
			s.metrics.RecordSizing(v.result.Regime, v.took, nil)
			return nil
		},
		Respond: func(_ context.Context, _ ports.SizingRequest, v sized) (ports.SizingResponse, error) {
			diameter, status := s.table.Convert(v.result.Diameter, display)

			return ports.SizingResponse{
				Result:        v.result,
				Diameter:      diameter,
				DiameterState: status,
				Inputs:        v.inputs,
			}, nil
		},
	}

	resp, err := Execute(ctx, s.executor, op, req)
	if err != nil {
		if step, ok := GetExecutionStep(err); ok && step != StepRecord {
			s.metrics.RecordSizing("", 0, err)
		}

		return ports.SizingResponse{}, fmt.Errorf("sizing pipe: %w", err)
	}

	return resp, nil
}

func (s *SizingService) normalise(in ports.SizingRequest) (domain.SizingInput, []domain.Quantity, error) {
	fields := []struct {
		name     string
		field    ports.FieldInput
		category domain.Category
	}{
		{FieldFlowRate, in.FlowRate, domain.CategoryFlow},
		{FieldVelocity, in.Velocity, domain.CategoryVelocity},
		{FieldRoughness, in.Roughness, domain.CategoryLength},
		{FieldLength, in.Length, domain.CategoryLength},
	}

	metric := make([]domain.Quantity, len(fields))

	for i, f := range fields {
		q, err := s.readField(f.name, f.field, f.category)
		if err != nil {
			return domain.SizingInput{}, nil, err
		}

		converted, status := s.table.Convert(q, domain.SystemMetric)
		s.metrics.RecordConversion(f.category, domain.SystemMetric, status)

		if !status.Applied() {
			return domain.SizingInput{}, nil, status.Err(q, domain.SystemMetric)
		}

		metric[i] = converted
	}

	return domain.SizingInput{
		FlowRate:  metric[0],
		Velocity:  metric[1],
		Roughness: metric[2],
		Length:    metric[3],
		Viscosity: in.Viscosity,
		Density:   in.Density,
		Limits:    s.limits,
	}, metric, nil
}

func (s *SizingService) readField(name string, f ports.FieldInput, category domain.Category) (domain.Quantity, error) {
	if f.Unit == "" {
		system := f.System
		if system == "" {
			system = domain.SystemMetric
		}

		parsed, err := domain.ParseSystem(string(system))
		if err != nil {
			return domain.Quantity{}, err
		}

		return domain.NewQuantityInSystem(name, f.Value, category, parsed)
	}

	q, err := domain.NewQuantity(name, f.Value, f.Unit)
	if err != nil {
		return domain.Quantity{}, err
	}

	if q.Category() != category {
		return domain.Quantity{}, domain.NewValidationErrorWithValue(name,
			fmt.Sprintf("unit %q is a %s unit, expected %s", f.Unit, q.Category(), category), f.Unit)
	}

	return q, nil
}
