package report

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"go-attendance/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func rec(date string, status attendance.Status) attendance.Attendance {
	d, _ := time.Parse(time.RFC3339, date)
	return attendance.Attendance{AttendanceDate: d, Status: status}
}

func TestSummarize(t *testing.T) {
	t.Run("two days three marks", func(t *testing.T) {
		got := Summarize([]attendance.Attendance{
			rec("2024-01-01T00:00:00Z", attendance.StatusPresent),
			rec("2024-01-01T00:00:00Z", attendance.StatusAbsent),
			rec("2024-01-02T00:00:00Z", attendance.StatusPresent),
		})

		assert.Equal(t, Summary{
			TotalDays:         2,
			Present:           2,
			Absent:            1,
			Late:              0,
			Leave:             0,
			TotalMarked:       3,
			PresentPercentage: "66.7",
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
		assert.Equal(t, Summary{}, Summarize([]attendance.Attendance{}))
	})

	t.Run("all statuses counted", func(t *testing.T) {
		got := Summarize([]attendance.Attendance{
			rec("2024-01-01T00:00:00Z", attendance.StatusPresent),
			rec("2024-01-02T00:00:00Z", attendance.StatusLate),
			rec("2024-01-03T00:00:00Z", attendance.StatusOnLeave),
			rec("2024-01-04T00:00:00Z", attendance.StatusAbsent),
		})

		assert.Equal(t, 4, got.TotalDays)
		assert.Equal(t, 1, got.Late)
		assert.Equal(t, 1, got.Leave)
		assert.Equal(t, 4, got.TotalMarked)
		assert.Equal(t, Percent("25.0"), got.PresentPercentage)
	})

	t.Run("same instant in another zone is the same day", func(t *testing.T) {
		got := Summarize([]attendance.Attendance{
			rec("2024-01-01T00:00:00Z", attendance.StatusPresent),
			rec("2024-01-01T05:30:00+05:30", attendance.StatusPresent),
		})
		assert.Equal(t, 1, got.TotalDays)
		assert.Equal(t, Percent("100.0"), got.PresentPercentage)
	})

	t.Run("order does not matter", func(t *testing.T) {
		records := []attendance.Attendance{
			rec("2024-01-01T00:00:00Z", attendance.StatusPresent),
			rec("2024-01-02T00:00:00Z", attendance.StatusAbsent),
			rec("2024-01-02T00:00:00Z", attendance.StatusLate),
			rec("2024-01-05T00:00:00Z", attendance.StatusOnLeave),
			rec("2024-01-05T00:00:00Z", attendance.StatusPresent),
		}
		want := Summarize(records)

		shuffled := append([]attendance.Attendance(nil), records...)
		rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, Summarize(shuffled))
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int
		want        Percent
	}{
		{0, 0, ""},
		{0, 5, "0.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{1, 8, "12.5"},
		{1, 16, "6.3"},
		{1, 2000, "0.1"},
		{3, 3, "100.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.part, tt.total), "%d/%d", tt.part, tt.total)
	}
}

func TestSummary_JSON(t *testing.T) {
	t.Run("nothing marked encodes the number zero", func(t *testing.T) {
		raw, err := json.Marshal(Summarize(nil))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"totalDays":0,"present":0,"absent":0,"late":0,"leave":0,"totalMarked":0,"presentPercentage":0}`, string(raw))
	})

	t.Run("all absent keeps the one decimal string", func(t *testing.T) {
		raw, err := json.Marshal(Summarize([]attendance.Attendance{
			rec("2024-01-01T00:00:00Z", attendance.StatusAbsent),
			rec("2024-01-02T00:00:00Z", attendance.StatusAbsent),
		}))
		assert.NoError(t, err)
		assert.Contains(t, string(raw), `"presentPercentage":"0.0"`)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, in := range []Summary{{}, {TotalMarked: 3, Present: 2, PresentPercentage: "66.7"}} {
			raw, err := json.Marshal(in)
			assert.NoError(t, err)

			var out Summary
			assert.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, in, out)
		}
	})
}
