package certificate

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
	certificates := r.Group("/certificates")
	certificates.Use(guard.Authenticate())
	certificates.Use(middleware.ContextLogger(logger))
	{
		certificates.POST("",
			middleware.RateLimitByTeacher(0.5, 5),
			guard.Authorize("certificates", "create"),
			handler.Issue,
		)
		certificates.GET("",
			middleware.RateLimitByTeacher(5, 20),
			guard.Authorize("certificates", "read"),
			handler.List,
		)
		certificates.GET("/:id",
			middleware.RateLimitByTeacher(5, 20),
			guard.Authorize("certificates", "read"),
			handler.GetByID,
		)
	}
}
