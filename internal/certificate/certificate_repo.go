package certificate

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=certificate_repo.go -destination=mock/certificate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Certificate) error
	FindByID(ctx context.Context, id string) (*Certificate, error)
	FindByStudent(ctx context.Context, studentID string) ([]Certificate, error)
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

func (r *repository) Create(ctx context.Context, c *Certificate) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Certificate, error) {
	var c Certificate
	if err := r.conn(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByStudent(ctx context.Context, studentID string) ([]Certificate, error) {
	var rows []Certificate
	err := r.conn(ctx).
		Where("student_id = ?", studentID).
		Order("issued_at DESC").
		Find(&rows).Error
	return rows, err
}
