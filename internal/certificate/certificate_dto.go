package certificate

import "go-attendance/internal/report"

type IssueCertificateRequest struct {
	StudentID   string `json:"studentId" binding:"required,uuid"`
	CourseName  string `json:"courseName" binding:"required,max=255"`
	IncludeSeal *bool  `json:"includeSeal"`
}

type ListQuery struct {
	StudentID string `form:"student_id" binding:"required,uuid"`
}

type CertificateResponse struct {
	ID                string         `json:"id"`
	CertificateNumber string         `json:"certificateNumber"`
	StudentID         string         `json:"studentId"`
	RecipientName     string         `json:"recipientName"`
	Roll              string         `json:"roll"`
	CourseName        string         `json:"courseName"`
	IncludeSeal       bool           `json:"includeSeal"`
	TotalDays         int            `json:"totalDays"`
	PresentPercentage report.Percent `json:"presentPercentage"`
	AbsentPercentage  report.Percent `json:"absentPercentage"`
	LateCount         int            `json:"lateCount"`
	IssuedBy          string         `json:"issuedBy,omitempty"`
	IssuedAt          string         `json:"issuedAt"`
}
