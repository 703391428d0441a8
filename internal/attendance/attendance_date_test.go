package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-01-31",
		" 2024-01-31 ",
		"2024-01-31T00:00:00Z",
		"2024-01-31T23:59:59.123Z",
		"2024-02-01T04:00:00+05:30",
		"2024-01-30T22:00:00-03:00",
		"2024-01-31T12:00:00",
		"2024-01-31 12:00:00",
	} {
		got, ok := ParseDate(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "31/01/2024", "2024-13-01", "soon"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestParseStatus(t *testing.T) {
	for _, code := range []string{"P", "A", "L", "LV"} {
		s, ok := ParseStatus(code)
		assert.True(t, ok)
		assert.Equal(t, code, string(s))
	}
	for _, code := range []string{"", "p", "Present", "X", " P"} {
		_, ok := ParseStatus(code)
		assert.False(t, ok, code)
	}
	assert.Equal(t, "On Leave", StatusOnLeave.Label())
}

func TestDayKey(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "2024-01-30", DayKey(time.Date(2024, 1, 31, 2, 0, 0, 0, loc)))
}
