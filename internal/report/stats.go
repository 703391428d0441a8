package report

import (
	"encoding/json"

	"go-attendance/internal/attendance"

	"github.com/shopspring/decimal"
)

// Summary is derived from a slice of attendance records and never stored.
type Summary struct {
	TotalDays         int    `json:"totalDays"`
	Present           int    `json:"present"`
	Absent            int    `json:"absent"`
	Late              int    `json:"late"`
	Leave             int    `json:"leave"`
	TotalMarked       int    `json:"totalMarked"`
	PresentPercentage Percent `json:"presentPercentage"`
}

// Summarize counts statuses and distinct calendar days (UTC) in one pass.
// totalDays counts days with any record in the slice, so for a population it
// means days with any activity, not days per student.
func Summarize(records []attendance.Attendance) Summary {
	var s Summary
	days := make(map[string]struct{}, len(records))

	for _, r := range records {
		days[attendance.DayKey(r.AttendanceDate)] = struct{}{}

		switch r.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		case attendance.StatusLate:
			s.Late++
		case attendance.StatusOnLeave:
			s.Leave++
		}
	}

	s.TotalDays = len(days)
	s.TotalMarked = s.Present + s.Absent + s.Late + s.Leave
	s.PresentPercentage = Percentage(s.Present, s.TotalMarked)
	return s
}

var hundred = decimal.NewFromInt(100)

// Percent is a one-decimal percentage such as "66.7". The zero value means
// nothing was marked and is encoded as the JSON number 0.
type Percent string

func (p Percent) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("0"), nil
	}
	return json.Marshal(string(p))
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0", "null":
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = Percent(s)
	return nil
}

// Percentage renders part/total*100 with one fractional digit, rounding half
// away from zero. A zero total yields the zero Percent.
func Percentage(part, total int) Percent {
	if total <= 0 {
		return ""
	}
	return Percent(decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(total)), 1).
		StringFixed(1))
}
