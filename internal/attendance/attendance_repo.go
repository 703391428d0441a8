package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/classroom"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	BulkUpsert(ctx context.Context, rows []Attendance) error
	FindByStudent(ctx context.Context, studentID string) ([]Attendance, error)
	FindByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) ([]Attendance, error)
	FindByDate(ctx context.Context, date time.Time, filter classroom.Filter) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn routes the statement through the caller's transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// BulkUpsert writes every row in one INSERT ... ON CONFLICT statement keyed by
// (student_id, attendance_date). Rows must not repeat a key.
func (r *repository) BulkUpsert(ctx context.Context, rows []Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *repository) FindByStudent(ctx context.Context, studentID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("student_id = ?", studentID).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) ([]Attendance, error) {
	if len(studentIDs) == 0 {
		return []Attendance{}, nil
	}
	var rows []Attendance
	err := r.conn(ctx).
		Where("student_id IN ?", studentIDs).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time, filter classroom.Filter) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Preload("Student").
		Joins("JOIN students ON students.id = attendances.student_id").
		Where("attendances.attendance_date = ?", date.Format(DateLayout)).
		Scopes(classroom.Scope(filter)).
		Order("students.roll ASC").
		Find(&rows).Error
	return rows, err
}
