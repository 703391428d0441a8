package attendance

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDate reads a submitted date and normalizes it. Layouts without an
// offset are read as UTC.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return NormalizeDate(t), true
		}
	}
	return time.Time{}, false
}

// NormalizeDate truncates t to midnight UTC of the calendar day t falls on in
// UTC. Two instants of the same UTC day always produce the same key.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey is the date portion used to count distinct days.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
