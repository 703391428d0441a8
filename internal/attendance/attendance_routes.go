package attendance

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	guard middleware.Guard,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	attendances := r.Group("/attendance")
	attendances.Use(guard.Authenticate())
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RateLimitByTeacher(5, 20),
			guard.Authorize("attendance", "read"),
			h.GetDaily,
		)
		attendances.POST("/bulk",
			middleware.RateLimitByTeacher(1, 5),
			guard.Authorize("attendance", "create"),
			middleware.Idempotency(rdb),
			h.BulkMark,
		)
	}
}
