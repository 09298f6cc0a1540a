// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "UNKNOWN_UNIT", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUnknownUnit indicates a unit tag or system name that is not catalogued.
	ErrorCodeUnknownUnit = "UNKNOWN_UNIT"

	// ErrorCodeUnsupportedConversion indicates a category has no unit in the requested system.
	ErrorCodeUnsupportedConversion = "UNSUPPORTED_CONVERSION"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"

	// ErrorCodeTooLarge indicates the request body or batch exceeded its limit.
	ErrorCodeTooLarge = "REQUEST_TOO_LARGE"
)

// ContextKeyTraceID is the gin.Context key a trace ID may be stored under.
const ContextKeyTraceID = "trace_id"

const internalMessage = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnknownUnit, ErrorCodeUnsupportedConversion:
		return http.StatusUnprocessableEntity
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors become 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	code := ErrorCodeInternal
	message := internalMessage

	switch {
	case domain.IsValidation(err):
		// Covers InvalidValueError too.
		code, message = ErrorCodeValidation, err.Error()

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			return HTTPStatusFromCode(code), NewErrorResponseWithDetails(code, message,
				map[string]string{validationErr.Field: validationErr.Message})
		}

		var invalidErr *domain.InvalidValueError
		if errors.As(err, &invalidErr) && invalidErr.Field != "" {
			return HTTPStatusFromCode(code), NewErrorResponseWithDetails(code, message,
				map[string]string{invalidErr.Field: "must be a finite number"})
		}

	case domain.IsUnknownUnit(err):
		code, message = ErrorCodeUnknownUnit, err.Error()

	case domain.IsUnrecognizedConversionPair(err):
		code, message = ErrorCodeUnsupportedConversion, err.Error()

	case domain.IsNotFound(err):
		code, message = ErrorCodeNotFound, err.Error()

	case errors.Is(err, context.DeadlineExceeded):
		code, message = ErrorCodeTimeout, "request timeout exceeded"
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, message)
}

// GetTraceID returns the trace ID for the request: the active span's trace ID,
// then a trace_id stored on the gin.Context, then the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if v, ok := c.Get(ContextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError maps err and writes the error envelope. Internal errors are
// logged with their cause; the client only sees the generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.WithTraceID(GetTraceID(c))

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondWithErrorCode writes an adapter-level error with a specific code.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response with field-level validation errors.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}

// AbortWithErrorCode aborts the request chain with a specific error code.
// Nothing is written if the response has already started.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
