// Package middleware provides the gin middleware of the pipe sizing API.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin.Context key holding the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that extracts or generates a request ID.
// The request ID is:
//   - Taken from the X-Request-ID header when it is well formed
//   - Generated as a new UUID v4 otherwise
//   - Stored in the gin.Context and echoed in the response headers
//   - Added to the context logger
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// GetRequestID extracts the request ID from the gin.Context.
// Returns empty string if not set.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}
