package student_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-attendance/internal/classroom"
	"go-attendance/internal/student"
	studenterrors "go-attendance/internal/student/errors"
	studentMock "go-attendance/internal/student/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *studentMock.MockRepository
	cache   *studentMock.MockCacheInvalidator
	service student.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := studentMock.NewMockRepository(ctrl)
	cache := studentMock.NewMockCacheInvalidator(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		cache:   cache,
		service: student.NewService(db, repo, cache),
	}
}

func TestStudentService_Create(t *testing.T) {
	ctx := context.Background()
	req := student.CreateStudentRequest{Name: " Asha ", Roll: "10A", ClassName: "5", Section: "B"}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *student.Student) error {
				assert.Equal(t, "Asha", s.Name)
				assert.NotEqual(t, uuid.Nil, s.ID)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "10A", resp.Roll)
	})

	t.Run("duplicate roll", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_students_roll"})

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, studenterrors.ErrRollAlreadyExists)
	})
}

func TestStudentService_GetAll(t *testing.T) {
	ctx := context.Background()
	filter := classroom.Filter{ClassName: "5"}

	t.Run("sorted by roll", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx, filter).Return([]student.Student{
			{ID: uuid.New(), Roll: "10"},
			{ID: uuid.New(), Roll: "2"},
			{ID: uuid.New(), Roll: "10A"},
		}, nil)

		resp, err := deps.service.GetAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, resp, 3)
		assert.Equal(t, []string{"2", "10", "10A"}, []string{resp[0].Roll, resp[1].Roll, resp[2].Roll})
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx, filter).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, filter)
		assert.Error(t, err)
	})
}

func TestStudentService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, studenterrors.ErrStudentNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, "42")
		assert.ErrorIs(t, err, studenterrors.ErrInvalidStudentID)
	})
}

func TestStudentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	newSection := "C"

	t.Run("partial update commits and invalidates", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&student.Student{ID: id, Name: "Asha", Roll: "7", Section: "B"}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *student.Student) error {
				assert.Equal(t, "Asha", s.Name)
				assert.Equal(t, "C", s.Section)
				return nil
			})
		deps.cache.EXPECT().InvalidateStudents(ctx, []string{id.String()}).Return(errors.New("redis down"))

		resp, err := deps.service.Update(ctx, id.String(), student.UpdateStudentRequest{Section: &newSection})
		require.NoError(t, err)
		assert.Equal(t, "C", resp.Section)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("roll taken rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&student.Student{ID: id, Roll: "7"}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Update(ctx, id.String(), student.UpdateStudentRequest{Section: &newSection})
		assert.ErrorIs(t, err, studenterrors.ErrRollAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestStudentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.cache.EXPECT().InvalidateStudents(ctx, []string{id}).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id))
	})

	t.Run("missing student", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, id), studenterrors.ErrStudentNotFound)
	})
}
