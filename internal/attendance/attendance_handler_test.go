package attendance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	attendanceMock "go-attendance/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const teacherID = "9b7e1f0a-8c55-4b32-9f0e-7c1d2a3b4c5d"

func setupRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("teacher_id", teacherID)
		c.Next()
	})
	h := attendance.NewHandler(svc)
	r.POST("/attendance/bulk", h.BulkMark)
	r.GET("/attendance", h.GetDaily)
	return r
}

func TestHandler_BulkMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	r := setupRouter(svc)

	t.Run("written count in envelope", func(t *testing.T) {
		req := attendance.BulkMarkRequest{
			Date:    "2024-03-01",
			Records: []attendance.BulkRecordRequest{{StudentID: "s1", Status: "P"}, {StudentID: "s2", Status: "A"}},
		}
		svc.EXPECT().BulkMark(gomock.Any(), teacherID, req).
			Return(attendance.BulkMarkResponse{Message: "Attendance saved successfully", Date: "2024-03-01", Written: 2}, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool                        `json:"ok"`
			Data attendance.BulkMarkResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, 2, env.Data.Written)
	})

	t.Run("wrong-typed records are skipped not fatal", func(t *testing.T) {
		valid := "0f8fad5b-d9cb-469f-a165-70867728950e"
		want := attendance.BulkMarkRequest{
			Date: "2024-03-01",
			Records: []attendance.BulkRecordRequest{
				{Status: "P"},
				{},
				{StudentID: valid},
				{StudentID: valid, Status: "P"},
			},
		}
		svc.EXPECT().BulkMark(gomock.Any(), teacherID, want).
			Return(attendance.BulkMarkResponse{Message: "Attendance saved successfully", Date: "2024-03-01", Written: 1}, nil)

		body := `{"date":"2024-03-01","records":[{"studentId":42,"status":"P"},"junk",{"studentId":"` + valid + `","status":["P"]},{"studentId":"` + valid + `","status":"P"}]}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data attendance.BulkMarkResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, 1, env.Data.Written)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service rejects batch", func(t *testing.T) {
		svc.EXPECT().BulkMark(gomock.Any(), teacherID, gomock.Any()).
			Return(attendance.BulkMarkResponse{}, attendanceerrors.ErrNoValidRecords)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewBufferString(`{"date":"2024-03-01","records":[{"status":"X"}]}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("unknown student", func(t *testing.T) {
		svc.EXPECT().BulkMark(gomock.Any(), teacherID, gomock.Any()).
			Return(attendance.BulkMarkResponse{}, attendanceerrors.ErrStudentNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendance/bulk", bytes.NewBufferString(`{"date":"2024-03-01","records":[{"studentId":"x","status":"P"}]}`)))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_GetDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().GetDaily(gomock.Any(), attendance.DailySheetQuery{Date: "2024-03-01", ClassName: "5", Section: "B"}).
		Return([]attendance.DailyMarkResponse{{StudentID: "s1", Date: "2024-03-01", Status: "P"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance?date=2024-03-01&className=5&section=B", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"P"`)
}
