package attendance_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-attendance/internal/attendance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var upsertSQL = regexp.QuoteMeta(`INSERT INTO "attendances"`) + `.*` +
	regexp.QuoteMeta(`ON CONFLICT ("student_id","attendance_date") DO UPDATE SET "status"="excluded"."status","marked_by"="excluded"."marked_by","updated_at"="excluded"."updated_at"`)

func setupRepoDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func attendanceRows(status attendance.Status, ids ...uuid.UUID) []attendance.Attendance {
	teacher := uuid.New()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]attendance.Attendance, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, attendance.Attendance{
			StudentID:      id,
			AttendanceDate: day,
			Status:         status,
			MarkedBy:       &teacher,
		})
	}
	return rows
}

func TestRepository_BulkUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("single statement inside caller tx", func(t *testing.T) {
		gdb, mock := setupRepoDB(t)
		sqlDB, err := gdb.DB()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(upsertSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()).AddRow(uuid.NewString()))
		mock.ExpectCommit()

		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		repo := attendance.NewRepository(gdb).WithTx(tx)
		require.NoError(t, repo.BulkUpsert(ctx, attendanceRows(attendance.StatusPresent, uuid.New(), uuid.New())))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resubmitting a key issues the same upsert", func(t *testing.T) {
		gdb, mock := setupRepoDB(t)
		sqlDB, err := gdb.DB()
		require.NoError(t, err)
		student := uuid.New()

		for i := 0; i < 2; i++ {
			mock.ExpectBegin()
			mock.ExpectQuery(upsertSQL).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
			mock.ExpectCommit()
		}

		for _, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusAbsent} {
			tx, err := sqlDB.BeginTx(ctx, nil)
			require.NoError(t, err)
			require.NoError(t, attendance.NewRepository(gdb).WithTx(tx).BulkUpsert(ctx, attendanceRows(status, student)))
			require.NoError(t, tx.Commit())
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows sends nothing", func(t *testing.T) {
		gdb, mock := setupRepoDB(t)

		require.NoError(t, attendance.NewRepository(gdb).BulkUpsert(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
