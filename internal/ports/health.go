package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report readiness.
//
// The conversion table registers one of these so that a broken unit catalogue
// takes the instance out of rotation:
//
//	registry.Register(ports.CheckerFunc("conversion-table", func(ctx context.Context) error {
//	    return domain.DefaultTable().Verify(tolerance)
//	}))
type HealthChecker interface {
	// Name identifies the check in readiness responses.
	Name() string

	// Check returns nil when healthy. It should respect ctx.
	Check(ctx context.Context) error
}

type checkerFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkerFunc) Name() string                    { return c.name }
func (c checkerFunc) Check(ctx context.Context) error { return c.fn(ctx) }

// CheckerFunc adapts a function into a HealthChecker.
func CheckerFunc(name string, fn func(ctx context.Context) error) HealthChecker {
	return checkerFunc{name: name, fn: fn}
}

// HealthRegistry aggregates health checks.
type HealthRegistry interface {
	// Register adds a checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll runs every registered check concurrently.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	// HealthStatusHealthy indicates all checks passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy indicates at least one check failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is a thread-safe HealthRegistry.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	timeout  time.Duration
}

// RegistryOption configures a DefaultHealthRegistry.
type RegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each individual check. Zero means only the caller's
// context applies.
func WithCheckTimeout(d time.Duration) RegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.timeout = d
	}
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry(opts ...RegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{
		checkers: make([]HealthChecker, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a health checker to the registry.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs all registered health checks concurrently. A failing check never
// cancels the others.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group

	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, checker := range checkers {
		out.Checks[checker.Name()] = results[i]
		if results[i].Status == HealthStatusUnhealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}

func (r *DefaultHealthRegistry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)

	res := &CheckResult{
		Status:   HealthStatusHealthy,
		Duration: time.Since(start),
	}

	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
