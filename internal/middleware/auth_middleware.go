package middleware

import (
	"errors"
	"strings"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/auth/token"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Guard bundles what the route groups need to authenticate and authorize a
// teacher.
type Guard struct {
	JWTSecret string
	RBAC      RBACService
}

func (g Guard) Authenticate() gin.HandlerFunc {
	return AuthMiddleware(g.JWTSecret)
}

func (g Guard) Authorize(resource, action string) gin.HandlerFunc {
	return RBACAuthorize(g.RBAC, resource, action)
}

// AuthMiddleware accepts a bearer token or the access_token cookie and puts
// teacher_id and role on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		tokenString = strings.TrimSpace(tokenString)

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := token.Parse(secret, tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set("teacher_id", claims.TeacherID)
		c.Set("role", strings.ToUpper(claims.Role))

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
