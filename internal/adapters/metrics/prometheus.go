// Package metrics provides ports.MetricsRecorder implementations.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

const namespace = "pipe_sizing"

// Prometheus records calculation metrics as Prometheus collectors.
type Prometheus struct {
	conversions *prometheus.CounterVec
	sizings     *prometheus.CounterVec
	duration    prometheus.Histogram
}

var _ ports.MetricsRecorder = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer, which is what /-/metrics serves.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Quantity conversions by category, target system and status.",
		}, []string{"category", "target", "status"}),
		sizings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sizings_total",
			Help:      "Pipe sizing calculations by flow regime and outcome.",
		}, []string{"regime", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sizing_duration_seconds",
			Help:      "Time spent in the sizing formulas.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	var err error

	if p.conversions, err = register(reg, p.conversions); err != nil {
		return nil, err
	}

	if p.sizings, err = register(reg, p.sizings); err != nil {
		return nil, err
	}

	if p.duration, err = register(reg, p.duration); err != nil {
		return nil, err
	}

	return p, nil
}

// register returns the collector already registered under the same descriptor,
// so building a second recorder against one registry shares its series.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

// RecordConversion implements ports.MetricsRecorder.
func (p *Prometheus) RecordConversion(category domain.Category, target domain.System, status domain.Status) {
	c := string(category)
	if c == "" {
		c = "unrecognized"
	}

	p.conversions.WithLabelValues(c, string(target), status.String()).Inc()
}

// RecordSizing implements ports.MetricsRecorder.
func (p *Prometheus) RecordSizing(regime domain.FlowRegime, duration time.Duration, err error) {
	if err != nil {
		p.sizings.WithLabelValues("none", "error").Inc()
		return
	}

	p.sizings.WithLabelValues(string(regime), "ok").Inc()
	p.duration.Observe(duration.Seconds())
}

// Multi fans out to several recorders.
type Multi []ports.MetricsRecorder

// RecordConversion implements ports.MetricsRecorder.
func (m Multi) RecordConversion(category domain.Category, target domain.System, status domain.Status) {
	for _, r := range m {
		r.RecordConversion(category, target, status)
	}
}

// RecordSizing implements ports.MetricsRecorder.
func (m Multi) RecordSizing(regime domain.FlowRegime, duration time.Duration, err error) {
	for _, r := range m {
		r.RecordSizing(regime, duration, err)
	}
}
