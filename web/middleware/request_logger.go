package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// LoggerKey is the gin context key under which the request-scoped logger is
// stored.
const LoggerKey = "logger"

// RequestLogger generates or propagates a request ID, injects a child logger
// carrying it into the gin context, sets the X-Request-ID response header,
// and logs the completed request with status and latency.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := logger.With(
			zap.String("request_id", reqID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Header(HeaderRequestID, reqID)
		c.Set(LoggerKey, child)

		c.Next()

		child.Info("Request completed",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// RequestLoggerFrom returns the request-scoped logger set by RequestLogger,
// or the fallback when the middleware did not run.
func RequestLoggerFrom(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return fallback
}
