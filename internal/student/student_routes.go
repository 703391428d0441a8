package student

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
	students := r.Group("/students")
	students.Use(guard.Authenticate())
	students.Use(middleware.ContextLogger(logger))
	{
		students.GET("",
			middleware.RateLimitByTeacher(5, 20),
			guard.Authorize("students", "read"),
			handler.GetAll,
		)
		students.GET("/:id",
			middleware.RateLimitByTeacher(5, 20),
			guard.Authorize("students", "read"),
			handler.GetByID,
		)
		students.POST("",
			middleware.RateLimitByTeacher(1, 10),
			guard.Authorize("students", "create"),
			handler.Create,
		)
		students.PUT("/:id",
			middleware.RateLimitByTeacher(1, 10),
			guard.Authorize("students", "update"),
			handler.Update,
		)
		students.DELETE("/:id",
			middleware.RateLimitByTeacher(0.5, 5),
			guard.Authorize("students", "delete"),
			handler.Delete,
		)
	}
}
