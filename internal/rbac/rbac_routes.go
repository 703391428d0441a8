package rbac

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	group := r.Group("/rbac")
	group.Use(guard.Authenticate())
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.Permissions)
	}
}
