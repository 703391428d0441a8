package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, teacher *Teacher) error
	GetByName(ctx context.Context, name string) (*Teacher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Teacher, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, teacher *Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *repository) GetByName(ctx context.Context, name string) (*Teacher, error) {
	var teacher Teacher
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Teacher, error) {
	var teacher Teacher
	err := r.db.WithContext(ctx).First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}
