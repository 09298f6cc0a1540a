package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header name for correlation ID. It ties together
	// the calculations a client issues for one sizing session.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin.Context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates the correlation ID the same
// way RequestID handles request IDs.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextEnricher: logging.WithCorrelationID,
	})
}

// GetCorrelationID extracts the correlation ID from the gin.Context.
// Returns empty string if not set.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
