package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
)

// Calculation pipeline: Validate → Perform → Verify → Record → Respond
//
//  1. VALIDATE - check raw inputs before any unit is resolved
//  2. PERFORM  - normalise quantities and run the formulas
//  3. VERIFY   - reject results that are not physically meaningful
//  4. RECORD   - emit metrics for the verified result
//  5. RESPOND  - shape the result for the caller
//
// Each step is optional. A failure stops the pipeline and is reported as an
// ExecutionError naming the step.

const tracerName = "github.com/jsamuelsen/pipe-sizing/internal/app"

// ExecutionStep names a pipeline step.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRecord   ExecutionStep = "record"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// Executor runs operations through the calculation pipeline with logging and tracing.
type Executor struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewExecutor creates an executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Operation defines the functions for each step of the pipeline.
type Operation[I, P, V, O any] struct {
	// Name identifies the operation in logs and spans.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Record   func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

type run struct {
	logger *slog.Logger
	span   trace.Span
}

func (r *run) step(ctx context.Context, step ExecutionStep, fn func() error) error {
	if fn == nil {
		return nil
	}

	r.span.AddEvent(string(step))

	if err := fn(); err != nil {
		level := slog.LevelError
		if step == StepValidate || step == StepRespond {
			level = slog.LevelWarn
		}

		r.logger.Log(ctx, level, string(step)+" failed", slog.Any("error", err))

		return err
	}

	r.logger.DebugContext(ctx, string(step)+" done")

	return nil
}

// Execute runs op over input.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var (
		zero      O
		performed P
		verified  V
		result    O
	)

	ctx, span := exec.tracer.Start(ctx, op.Name)
	defer span.End()

	logger := logging.FromContextOr(ctx, exec.logger)

	r := &run{
		logger: logger.With(slog.String("operation", op.Name)),
		span:   span,
	}

	start := time.Now()

	fail := func(err error) (O, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return zero, err
	}

	var validate, perform, verify, record, respond func() error

	if op.Validate != nil {
		validate = func() error {
			if err := op.Validate(ctx, input); err != nil {
				return stepError(StepValidate, "input validation failed", err)
			}

			return nil
		}
	}

	if op.Perform != nil {
		perform = func() error {
			var err error
			if performed, err = op.Perform(ctx, input); err != nil {
				return stepError(StepPerform, "calculation failed", err)
			}

			return nil
		}
	}

	if op.Verify != nil {
		verify = func() error {
			var err error
			if verified, err = op.Verify(ctx, input, performed); err != nil {
				return stepError(StepVerify, "result rejected", err)
			}

			return nil
		}
	}

	if op.Record != nil {
		record = func() error {
			if err := op.Record(ctx, input, verified); err != nil {
				return stepError(StepRecord, "recording failed", err)
			}

			return nil
		}
	}

	if op.Respond != nil {
		respond = func() error {
			var err error
			if result, err = op.Respond(ctx, input, verified); err != nil {
				return stepError(StepRespond, "response failed", err)
			}

			return nil
		}
	}

	for _, s := range []struct {
		step ExecutionStep
		fn   func() error
	}{
		{StepValidate, validate},
		{StepPerform, perform},
		{StepVerify, verify},
		{StepRecord, record},
		{StepRespond, respond},
	} {
		if err := r.step(ctx, s.step, s.fn); err != nil {
			return fail(err)
		}
	}

	duration := time.Since(start)
	span.SetAttributes(attribute.Int64("operation.duration_us", duration.Microseconds()))
	r.logger.InfoContext(ctx, "operation completed", slog.Duration("duration", duration))

	return result, nil
}

// IsExecutionError checks if an error occurred during execution.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
