package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDHeader is the header carrying the per-request id.
const RequestIDHeader = "X-Request-ID"

// contextRequestIDKey holds the request id in gin context.
const contextRequestIDKey = "requestID"

// RequestIDMiddleware assigns a UUID v7 to each request unless the client
// already provided one. The id is echoed on the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set(contextRequestIDKey, id)
		c.Next()
	}
}

// RequestID returns the request id assigned by RequestIDMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}

// RequestLogMiddleware logs every request with method, path, status, duration
// and request id. Server errors log at error level, client errors at warn.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": RequestID(c),
			"client_ip":  c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request")
		case c.Writer.Status() >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
