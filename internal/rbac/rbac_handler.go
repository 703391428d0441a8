package rbac

import (
	"net/http"
	"strings"

	"go-attendance/internal/domain"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Enforce answers for the authenticated teacher only; the role always comes
// from the token, never from the body.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	req.TeacherID = c.GetString("teacher_id")
	req.Role = c.GetString("role")
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString("role"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}
