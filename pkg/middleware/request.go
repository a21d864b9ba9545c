package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/productshowcase/catalog-service/pkg/logger"
	"github.com/productshowcase/catalog-service/pkg/metrics"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// RequestID propagates the caller's X-Request-Id or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" when absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AccessLog writes one structured line per request and counts it by route and status.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		lvl := logger.LevelInfo
		if status >= 500 {
			lvl = logger.LevelError
		}
		logger.With(lvl, "http_request", logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"bytes":      c.Writer.Size(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":  c.ClientIP(),
			"request_id": GetRequestID(c),
		})
	}
}
