// Package httpx holds the gin middleware shared by the account service.
package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-account/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const ridKey = "rid"

// RequestID reuses the caller's request id or mints a uuid, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, empty when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ridKey)
}

// Logger writes one line per request. Server errors log at Error, client
// errors such as a rejected cancel at Warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("rid", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("dur", time.Since(start)),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http", fields...)
		default:
			logger.Info("http", fields...)
		}
	}
}
