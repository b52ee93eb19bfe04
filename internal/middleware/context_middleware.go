package middleware

import (
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a logger tagged with the request id in the request
// context. Services pick it up through contextutil.GetLogger. It expects
// RequestID to run first.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("route", c.FullPath()),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}
