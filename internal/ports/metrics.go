package ports

import (
	"time"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
)

// MetricsRecorder records calculation outcomes.
// Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	// RecordConversion counts one conversion by category, target system and status.
	RecordConversion(category domain.Category, target domain.System, status domain.Status)

	// RecordSizing observes one sizing calculation.
	RecordSizing(regime domain.FlowRegime, duration time.Duration, err error)
}

// NopMetrics discards everything.
type NopMetrics struct{}

// RecordConversion implements MetricsRecorder.
func (NopMetrics) RecordConversion(domain.Category, domain.System, domain.Status) {}

// RecordSizing implements MetricsRecorder.
func (NopMetrics) RecordSizing(domain.FlowRegime, time.Duration, error) {}
