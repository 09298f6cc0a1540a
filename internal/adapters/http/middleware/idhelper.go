package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength bounds inbound ID headers.
const maxIDLength = 128

// idMiddlewareConfig configures the ID middleware behavior.
type idMiddlewareConfig struct {
	headerName      string
	contextKey      string
	contextEnricher func(ctx context.Context, id string) context.Context
}

// createIDMiddleware creates middleware that accepts a well-formed inbound ID or
// generates a UUID v4. Shared by the request ID and correlation ID middleware.
func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate new UUID if missing or malformed
		id := c.GetHeader(cfg.headerName)
		if !validID(id) {
			id = uuid.NewString()
		}

		// Store in gin context for retrieval by handlers
		c.Set(cfg.contextKey, id)

		// Add to response headers
		c.Header(cfg.headerName, id)

		// Enrich context if enricher provided
		if cfg.contextEnricher != nil {
			c.Request = c.Request.WithContext(cfg.contextEnricher(c.Request.Context(), id))
		}

		c.Next()
	}
}

// validID accepts 1 to maxIDLength characters from [A-Za-z0-9._:-], so IDs
// copied into logs and response headers cannot carry control characters.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		ch := id[i]

		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.', ch == ':':
		default:
			return false
		}
	}

	return true
}

func getIDFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
