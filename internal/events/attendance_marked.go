package events

import "time"

const AttendanceMarkedTopic = "school.attendance.marked.v1"

type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TeacherID  string    `json:"teacher_id,omitempty"`
	Date       string    `json:"date"`
	StudentIDs []string  `json:"student_ids"`
	Written    int       `json:"written"`
	OccurredAt time.Time `json:"occurred_at"`
}
