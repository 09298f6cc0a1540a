package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// Recorder exports calculation metrics through an OpenTelemetry meter.
// It complements the Prometheus recorder when an OTLP collector is configured.
type Recorder struct {
	conversions metric.Int64Counter
	sizings     metric.Int64Counter
	duration    metric.Float64Histogram
}

var _ ports.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates the instruments on meter. A nil meter uses the global
// meter provider.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	conversions, err := meter.Int64Counter(
		"pipe_sizing.conversions",
		metric.WithDescription("Quantity conversions by category, target system and status"),
	)
	if err != nil {
		return nil, err
	}

	sizings, err := meter.Int64Counter(
		"pipe_sizing.sizings",
		metric.WithDescription("Pipe sizing calculations by flow regime and outcome"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"pipe_sizing.sizing.duration",
		metric.WithDescription("Time spent in the sizing formulas"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Recorder{conversions: conversions, sizings: sizings, duration: duration}, nil
}

// RecordConversion implements ports.MetricsRecorder.
func (r *Recorder) RecordConversion(category domain.Category, target domain.System, status domain.Status) {
	cat := string(category)
	if cat == "" {
		cat = "unrecognized"
	}

	r.conversions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("category", cat),
		attribute.String("target", string(target)),
		attribute.String("status", status.String()),
	))
}

// RecordSizing implements ports.MetricsRecorder.
func (r *Recorder) RecordSizing(regime domain.FlowRegime, duration time.Duration, err error) {
	ctx := context.Background()

	if err != nil {
		r.sizings.Add(ctx, 1, metric.WithAttributes(
			attribute.String("regime", "none"),
			attribute.String("outcome", "error"),
		))

		return
	}

	r.sizings.Add(ctx, 1, metric.WithAttributes(
		attribute.String("regime", string(regime)),
		attribute.String("outcome", "ok"),
	))
	r.duration.Record(ctx, duration.Seconds())
}

