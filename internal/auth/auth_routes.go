package auth

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.Guard) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimitByIP(0.1, 3), handler.Signup)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", guard.Authenticate(), middleware.RateLimitByTeacher(2, 5), handler.Me)
	}
}
