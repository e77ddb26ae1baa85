// Package calendar lays a month out as a fixed 6x7 grid and attaches the
// visits logged on each day.
package calendar

import (
	"time"

	"activity-insights-go/internal/actions"
	"activity-insights-go/internal/dates"
	"activity-insights-go/internal/types"
)

const (
	Weeks = 6
	Cells = Weeks * 7

	// UnknownName is used for visits with no site name. All such visits
	// count as one customer in UniqueCustomers.
	UnknownName = "unknown"
)

// Generate builds the grid for year/month (month is 1-based). Padding cells
// from the neighbouring months never carry visits.
func Generate(year int, month time.Month, records []types.ActivityRecord) types.CalendarMonth {
	first := dates.New(year, month, 1)
	// normalize out-of-range months (0, 13) the way time.Date does
	first = dates.FromTime(first.Time(time.UTC))
	year, month = first.Year, first.Month

	daysInMonth := dates.DaysIn(year, month)
	prev := dates.FromTime(first.Time(time.UTC).AddDate(0, 0, -1))
	daysInPrev := prev.Day
	firstWeekday := int(first.Weekday())

	byDay := indexVisits(records, year, month)

	cells := make([]types.CalendarDay, 0, Cells)
	for i := firstWeekday - 1; i >= 0; i-- {
		cells = append(cells, padding(dates.New(prev.Year, prev.Month, daysInPrev-i)))
	}

	unique := map[string]struct{}{}
	total := 0
	for d := 1; d <= daysInMonth; d++ {
		day := dates.New(year, month, d)
		visits := byDay[day]
		if visits == nil {
			visits = []types.CalendarVisit{}
		}
		for _, v := range visits {
			unique[v.Name] = struct{}{}
		}
		total += len(visits)
		cells = append(cells, types.CalendarDay{
			Date:    day.String(),
			Day:     d,
			Weekday: int(day.Weekday()),
			InMonth: true,
			Visits:  visits,
		})
	}

	next := first.Time(time.UTC).AddDate(0, 1, 0)
	for d := 1; len(cells) < Cells; d++ {
		cells = append(cells, padding(dates.New(next.Year(), next.Month(), d)))
	}

	return types.CalendarMonth{
		Year:            year,
		Month:           int(month),
		FirstWeekday:    firstWeekday,
		DaysInMonth:     daysInMonth,
		Days:            cells,
		TotalVisits:     total,
		UniqueCustomers: len(unique),
	}
}

func padding(d dates.Date) types.CalendarDay {
	return types.CalendarDay{
		Date:    d.String(),
		Day:     d.Day,
		Weekday: int(d.Weekday()),
		Visits:  []types.CalendarVisit{},
	}
}

// indexVisits groups the month's calendar visits by day in input order.
func indexVisits(records []types.ActivityRecord, year int, month time.Month) map[dates.Date][]types.CalendarVisit {
	out := map[dates.Date][]types.CalendarVisit{}
	for _, raw := range records {
		rec := raw.Normalized()
		day, ok := dates.Parse(rec.Date)
		if !ok || day.Year != year || day.Month != month {
			continue
		}
		cat := actions.Classify(rec.ActionType)
		if !cat.IsCalendarVisit() {
			continue
		}
		out[day] = append(out[day], project(rec, cat))
	}
	return out
}

func project(rec types.ActivityRecord, cat actions.Category) types.CalendarVisit {
	name := rec.VisitedSiteName
	if cat.IsInternal() {
		name = rec.ActionType
	}
	if name == "" {
		name = UnknownName
	}
	return types.CalendarVisit{
		Name:              name,
		Action:            rec.ActionType,
		ID:                rec.ManagementNumber,
		HasDesignProposal: rec.HasDesignProposal(),
		Interviewer:       rec.InterviewerName,
		StayDuration:      rec.StayDuration,
		DiscussionNotes:   rec.DiscussionNotes,
		DesignType:        rec.DesignType,
		DesignName:        rec.DesignName,
	}
}
