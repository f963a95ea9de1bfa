package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// RequestIDHeader carries the request id in and out of the API
const RequestIDHeader = "X-Request-ID"

// Logger returns a gin middleware for structured logging using zap.
// It tags the request context with a request id so downstream logs can be correlated.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		ctx := logger.WithRequest(c.Request.Context(), logger.RequestInfo{
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      path,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.InfoCtx(ctx, "API request",
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
			}
		}()
		c.Next()
	}
}
