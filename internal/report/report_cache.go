package report

import (
	"strings"

	"go-attendance/internal/classroom"
)

const (
	studentKeyPrefix = "reports:student:"
	overallKeyPrefix = "reports:overall:"
	// OverallGenerationKey is bumped on every write so cached population
	// summaries for all filters expire at once.
	OverallGenerationKey = "reports:overall:gen"
)

// StudentGenerationKey is bumped whenever the student's attendance changes.
// A summary computed from reads that raced the write lands under the old
// generation and is never served again.
func StudentGenerationKey(studentID string) string {
	return studentKeyPrefix + studentID + ":gen"
}

func StudentCacheKey(generation, studentID string) string {
	return studentKeyPrefix + studentID + ":" + generation
}

func OverallCacheKey(generation string, f classroom.Filter) string {
	f = f.Normalize()
	return overallKeyPrefix + generation + ":" + strings.ToLower(f.ClassName) + ":" + strings.ToLower(f.Section)
}
