package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

type Teacher struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex:uq_teachers_name;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(50);not null;default:'TEACHER'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Teacher) TableName() string {
	return "teachers"
}
