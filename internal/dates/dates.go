// Package dates normalizes the date strings found in activity logs into a
// calendar date whose canonical form is the zero-padded "YYYY/MM/DD".
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day without a time or zone. The zero value means
// "no date" and sorts before every real date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime takes the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool { return d == Date{} }

// String is the canonical YYYY/MM/DD form, "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or 1. It agrees with comparing String() values.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Time is midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Format is the canonical re-serialization used for equality checks.
func Format(d Date) string { return d.String() }

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var separators = strings.NewReplacer("-", "/", ".", "/")

// fallbackLayouts are tried on the raw input when the Y/M/D split fails.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006/1/2 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
}

// Parse accepts YYYY/MM/DD and YY/MM/DD (YY means 2000+YY) with "-" or "."
// as alternate separators. ok is false when no valid calendar date results.
func Parse(raw string) (Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, false
	}
	parts := strings.Split(separators.Replace(s), "/")
	if len(parts) == 3 {
		if d, ok := fromParts(parts); ok {
			return d, true
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), true
		}
	}
	return Date{}, false
}

// MustParse panics on invalid input. Tests and constants only.
func MustParse(raw string) Date {
	d, ok := Parse(raw)
	if !ok {
		panic(fmt.Sprintf("dates: invalid date %q", raw))
	}
	return d
}

func fromParts(parts []string) (Date, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Date{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Date{}, false
	}
	// the day part may carry a time suffix ("01 10:30", "01T10:30:00Z")
	d, ok := leadingInt(strings.TrimSpace(parts[2]))
	if !ok {
		return Date{}, false
	}
	if y < 0 {
		return Date{}, false
	}
	if y < 100 {
		y += 2000
	}
	if m < 1 || m > 12 || d < 1 || d > DaysIn(y, time.Month(m)) {
		return Date{}, false
	}
	return Date{Year: y, Month: time.Month(m), Day: d}, true
}

func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
