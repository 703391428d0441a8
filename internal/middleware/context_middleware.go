package middleware

import (
	"go-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger propagates request_id, teacher_id and a scoped logger from
// gin into the request context so services stay unaware of gin. It runs
// after AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)
		c.Set("request_id", rid)

		tid := c.GetString("teacher_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("teacher_id", tid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithTeacherID(ctx, tid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
