// Package middleware provides the HTTP middleware chain for auth-service.
package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Paths excluded from request logging on success (noise reduction).
// Errors on these paths are still logged.
var defaultSkipPaths = []string{
	"/health",
	"/health/live",
	"/health/ready",
	"/metrics",
}

// RequestIDKey is the gin context key for the request ID.
const RequestIDKey = "request_id"

// Logger returns a middleware that logs each request with a generated
// request ID. Log level follows the status class: 5xx error, 4xx warn,
// otherwise info.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		path := c.Request.URL.Path
		isHealthPath := isSkippedPath(path)

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		if isHealthPath && statusCode < 400 {
			return
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}

		if authUser, ok := GetAuthUser(c); ok {
			fields = append(fields, zap.Int64("enduser.id", authUser.User.ID))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		switch {
		case statusCode >= 500:
			logger.Error("Server error", fields...)
		case statusCode >= 400:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}

func isSkippedPath(path string) bool {
	for _, skipPath := range defaultSkipPaths {
		if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
			return true
		}
	}
	return false
}

// GetRequestID returns the request ID from the context, generating one
// if the logging middleware has not run.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
