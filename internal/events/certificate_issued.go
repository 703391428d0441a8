package events

import "time"

const CertificateIssuedTopic = "school.certificate.issued.v1"

type CertificateIssuedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	CertificateID     string    `json:"certificate_id"`
	CertificateNumber string    `json:"certificate_number"`
	StudentID         string    `json:"student_id"`
	IssuedBy          string    `json:"issued_by,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}
