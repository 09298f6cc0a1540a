package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.Default())
}

// FromContext returns the request logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return defaultLogger.Load()
}

// FromContextOr returns the request logger stored in ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return fallback
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithAttrs returns a context whose logger carries attrs.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

// WithRequestID adds a request ID to the logger in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithAttrs(ctx, slog.String("request_id", requestID))
}

// WithTraceID adds a trace ID to the logger in context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return WithAttrs(ctx, slog.String("trace_id", traceID))
}

// WithCorrelationID adds a correlation ID to the logger in context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return WithAttrs(ctx, slog.String("correlation_id", correlationID))
}

// Trace logs at LevelTrace.
func Trace(ctx context.Context, msg string, attrs ...any) {
	FromContext(ctx).Log(ctx, LevelTrace, msg, attrs...)
}

// SetDefault sets the logger used when no logger is in context, and slog's default.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
	slog.SetDefault(logger)
}
