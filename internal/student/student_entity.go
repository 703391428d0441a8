package student

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Roll      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_students_roll"`
	ClassName string    `gorm:"column:class_name;type:varchar(100);not null;index:idx_students_class_section,priority:1"`
	Section   string    `gorm:"type:varchar(50);not null;index:idx_students_class_section,priority:2"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Student) TableName() string {
	return "students"
}
