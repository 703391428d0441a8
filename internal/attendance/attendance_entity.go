package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Status is the closed set of marks a teacher can give for one day.
type Status string

const (
	StatusPresent Status = "P"
	StatusAbsent  Status = "A"
	StatusLate    Status = "L"
	StatusOnLeave Status = "LV"
)

// ParseStatus accepts only the compact codes, case sensitive.
func ParseStatus(v string) (Status, bool) {
	switch s := Status(v); s {
	case StatusPresent, StatusAbsent, StatusLate, StatusOnLeave:
		return s, true
	default:
		return "", false
	}
}

func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	case StatusOnLeave:
		return "On Leave"
	default:
		return "Unknown"
	}
}

// Attendance is one mark for one student on one calendar day. The pair
// (student_id, attendance_date) is unique.
type Attendance struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID      uuid.UUID   `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date,priority:1"`
	AttendanceDate time.Time   `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date,priority:2;index"`
	Status         Status      `gorm:"column:status;type:varchar(2);not null"`
	MarkedBy       *uuid.UUID  `gorm:"column:marked_by;type:uuid"`
	CreatedAt      time.Time   `gorm:"column:created_at"`
	UpdatedAt      time.Time   `gorm:"column:updated_at"`
	Student        *StudentRef `gorm:"foreignKey:StudentID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type StudentRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:name"`
	Roll      string    `gorm:"column:roll"`
	ClassName string    `gorm:"column:class_name"`
	Section   string    `gorm:"column:section"`
}

func (StudentRef) TableName() string {
	return "students"
}
