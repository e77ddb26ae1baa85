package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	Today   Period = "today"
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
)

var ErrUnknownPeriod = errors.New("unknown period")

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Today, Week, Month, Quarter, Year:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// DateRange returns day-aligned bounds ending today: start at 00:00:00.000
// of now minus one period, end at 23:59:59.999 of now.
func DateRange(p Period, now time.Time) (time.Time, time.Time, error) {
	var from time.Time
	switch p {
	case Today:
		from = now
	case Week:
		from = now.AddDate(0, 0, -7)
	case Month:
		from = now.AddDate(0, -1, 0)
	case Quarter:
		from = now.AddDate(0, -3, 0)
	case Year:
		from = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
	return startOfDay(from), endOfDay(now), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
