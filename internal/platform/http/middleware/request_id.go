// Package middleware provides platform-level Gin middleware.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-Id"

// ContextRequestID is the gin context key under which the request ID is stored.
const ContextRequestID = "requestID"

// RequestID assigns a UUID to every request, echoes it in the response
// header, and emits one structured access-log record per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		slog.Info("request handled",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}
