package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-attendance/internal/auth/token"
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withTeacher(teacherID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("teacher_id", teacherID)
		c.Set("role", role)
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := setupRouter()
	router.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"teacher_id": c.GetString("teacher_id"), "role": c.GetString("role")})
	})

	valid, err := token.Issue(secret, "teacher-1", "teacher", time.Hour)
	require.NoError(t, err)
	expired, err := token.Issue(secret, "teacher-1", "TEACHER", -time.Hour)
	require.NoError(t, err)

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"teacher_id":"teacher-1","role":"TEACHER"}`, w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: valid})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized")
	})
}

func TestRBACAuthorize(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		router := setupRouter()
		router.GET("/x", withTeacher("t-1", "TEACHER"), middleware.RBACAuthorize(rbac, "students", "read"), ok)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{TeacherID: "t-1", Role: "TEACHER", Resource: "students", Action: "read"}, rbac.got)
	})

	t.Run("denied", func(t *testing.T) {
		router := setupRouter()
		router.GET("/x", withTeacher("t-1", "GUEST"), middleware.RBACAuthorize(&fakeRBAC{}, "students", "read"), ok)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		router := setupRouter()
		router.GET("/x", withTeacher("t-1", "TEACHER"), middleware.RBACAuthorize(&fakeRBAC{err: errors.New("boom")}, "students", "read"), ok)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no teacher in context", func(t *testing.T) {
		router := setupRouter()
		router.GET("/x", middleware.RBACAuthorize(&fakeRBAC{allowed: true}, "students", "read"), ok)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByTeacher(t *testing.T) {
	router := setupRouter()
	router.GET("/x", withTeacher("t-1", "TEACHER"), middleware.RateLimitByTeacher(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestContextLogger(t *testing.T) {
	router := setupRouter()
	router.GET("/x", withTeacher("t-1", "TEACHER"), middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		meta := contextutil.ExtractMetadata(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"rid": meta.RequestID, "tid": meta.TeacherID})
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "REQ-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.JSONEq(t, `{"rid":"REQ-1","tid":"t-1"}`, w.Body.String())
	assert.Equal(t, "REQ-1", w.Header().Get("X-Request-ID"))
}

func TestIdempotency(t *testing.T) {
	const (
		cacheKey = "idemp:/attendance/bulk:t-1:key-1"
		lockKey  = cacheKey + ":lock"
	)
	body := `{"ok":true}`
	stored := `{"status":200,"body":"{\"ok\":true}"}`

	newRouter := func(calls *int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		router := setupRouter()
		router.POST("/attendance/bulk", withTeacher("t-1", "TEACHER"), middleware.Idempotency(rdb), func(c *gin.Context) {
			*calls++
			c.Data(http.StatusOK, "application/json", []byte(body))
		})
		return router, mock
	}

	send := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewBufferString(`{}`))
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("first request runs and stores reply", func(t *testing.T) {
		calls := 0
		router, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, stored, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := send(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat request is replayed", func(t *testing.T) {
		calls := 0
		router, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).SetVal(stored)

		w := send(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, body, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate conflicts", func(t *testing.T) {
		calls := 0
		router, mock := newRouter(&calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := send(router)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})
}
