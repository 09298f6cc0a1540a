package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/platform/logging"
)

// Timeout returns middleware that puts a deadline on the request context.
// Handlers run on the request goroutine and are expected to honour ctx; if the
// deadline passed and nothing was written, the client gets 504 TIMEOUT.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		// Replace request context with timeout context
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// Handler finished in time
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request timeout",
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.Duration("timeout", timeout),
		)

		dto.AbortWithErrorCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
	}
}

// BodyLimit caps the request body at limit bytes. Reading past it fails and the
// handlers answer 413 REQUEST_TOO_LARGE; a declared Content-Length over the
// limit is refused up front.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			dto.AbortWithErrorCode(c, dto.ErrorCodeTooLarge, "request body too large")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
