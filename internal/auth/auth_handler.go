package auth

import (
	"net/http"
	"strings"

	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service Service
	secure  bool
	logger  *zap.Logger
}

// NewHandler builds the auth handler. secure marks issued cookies Secure,
// which should be on outside local development.
func NewHandler(s Service, secure bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secure: secure, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	teacherID := c.GetString("teacher_id")
	if teacherID == "" {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), teacherID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

// Browser clients get the token as an HttpOnly cookie as well as in the body.
func (h *Handler) setTokenCookie(c *gin.Context, raw string) {
	if !strings.EqualFold(c.GetHeader("X-Client-Type"), "web") {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    raw,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
