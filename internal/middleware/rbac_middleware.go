package middleware

import (
	"go-attendance/internal/domain"
	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		teacherID := c.GetString("teacher_id")
		if teacherID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			TeacherID: teacherID,
			Role:      c.GetString("role"),
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abortWith(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			abortWith(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
