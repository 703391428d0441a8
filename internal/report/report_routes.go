package report

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	guard middleware.Guard,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(guard.Authenticate())
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RateLimitByTeacher(5, 20))
	{
		reports.GET("/student/:id",
			guard.Authorize("reports", "read"),
			handler.StudentSummary,
		)
		reports.GET("/overall",
			guard.Authorize("reports", "read"),
			handler.OverallSummary,
		)
	}
}
