package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/auth"
	autherrors "go-attendance/internal/auth/errors"
	authMock "go-attendance/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/signup", handler.Signup)

	t.Run("created", func(t *testing.T) {
		req := auth.SignupRequest{Name: "Ms. Rao", Password: "secret123", SecretID: "s"}
		mockService.EXPECT().
			Signup(gomock.Any(), req).
			Return(auth.AuthResponse{Teacher: auth.TeacherResponse{ID: "t-1", Name: "Ms. Rao"}, Token: "tok"}, nil)

		w := postJSON(router, "/signup", req, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		w := postJSON(router, "/signup", map[string]string{"name": "Ms. Rao", "secretId": "s"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("bad secret is forbidden", func(t *testing.T) {
		mockService.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrInvalidSecretID)

		w := postJSON(router, "/signup", auth.SignupRequest{Name: "Ms. Rao", Password: "secret123", SecretID: "x"}, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		mockService.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrTeacherExists)

		w := postJSON(router, "/signup", auth.SignupRequest{Name: "Ms. Rao", Password: "secret123", SecretID: "x"}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("web client receives cookie", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "Ms. Rao", "secret123").
			Return(auth.AuthResponse{Token: "tok"}, nil)

		w := postJSON(router, "/login", auth.LoginRequest{Name: "Ms. Rao", Password: "secret123"}, map[string]string{"X-Client-Type": "WEB"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
	})

	t.Run("api client gets no cookie", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "Ms. Rao", "secret123").
			Return(auth.AuthResponse{Token: "tok"}, nil)

		w := postJSON(router, "/login", auth.LoginRequest{Name: "Ms. Rao", Password: "secret123"}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), "Ms. Rao", "bad").Return(auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		w := postJSON(router, "/login", auth.LoginRequest{Name: "Ms. Rao", Password: "bad"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)

	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("teacher_id", "t-1")
		c.Next()
	}, handler.Me)
	router.GET("/anonymous", handler.Me)

	mockService.EXPECT().GetMe(gomock.Any(), "t-1").Return(auth.TeacherResponse{ID: "t-1", Name: "Ms. Rao", Role: "TEACHER"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ms. Rao"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
