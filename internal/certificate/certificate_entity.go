package certificate

import (
	"time"

	"go-attendance/internal/report"

	"github.com/google/uuid"
)

// Certificate freezes a student's attendance figures at issue time. Later
// marks do not change an issued certificate.
type Certificate struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CertificateNumber string         `gorm:"column:certificate_number;type:varchar(32);not null;uniqueIndex:uq_certificates_number"`
	StudentID         uuid.UUID      `gorm:"column:student_id;type:uuid;not null;index"`
	RecipientName     string         `gorm:"column:recipient_name;type:varchar(255);not null"`
	Roll              string         `gorm:"column:roll;type:varchar(50);not null"`
	CourseName        string         `gorm:"column:course_name;type:varchar(255);not null"`
	IncludeSeal       bool           `gorm:"column:include_seal;not null;default:true"`
	TotalDays         int            `gorm:"column:total_days;not null"`
	PresentPercentage report.Percent `gorm:"column:present_percentage;type:varchar(8);not null"`
	AbsentPercentage  report.Percent `gorm:"column:absent_percentage;type:varchar(8);not null"`
	LateCount         int            `gorm:"column:late_count;not null"`
	IssuedBy          *uuid.UUID     `gorm:"column:issued_by;type:uuid"`
	IssuedAt          time.Time      `gorm:"column:issued_at;not null"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}
