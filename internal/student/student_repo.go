package student

import (
	"context"
	"database/sql"

	"go-attendance/internal/classroom"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=student_repo.go -destination=mock/student_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Student) error
	FindAll(ctx context.Context, filter classroom.Filter) ([]Student, error)
	FindIDs(ctx context.Context, filter classroom.Filter) ([]uuid.UUID, error)
	FindByID(ctx context.Context, id string) (*Student, error)
	Update(ctx context.Context, s *Student) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, s *Student) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context, filter classroom.Filter) ([]Student, error) {
	var students []Student
	err := r.conn(ctx).
		Scopes(classroom.Scope(filter)).
		Find(&students).Error
	return students, err
}

func (r *repository) FindIDs(ctx context.Context, filter classroom.Filter) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.conn(ctx).
		Model(&Student{}).
		Scopes(classroom.Scope(filter)).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Student, error) {
	var s Student
	if err := r.conn(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Student) error {
	return r.conn(ctx).Save(s).Error
}

// Delete reports gorm.ErrRecordNotFound when no row matched.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
