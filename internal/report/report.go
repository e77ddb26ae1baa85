// Package report runs the three views over one record snapshot.
package report

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"activity-insights-go/internal/actionable"
	"activity-insights-go/internal/aggregator"
	"activity-insights-go/internal/analytics"
	"activity-insights-go/internal/calendar"
	"activity-insights-go/internal/logger"
	"activity-insights-go/internal/types"
)

type View string

const (
	ViewCustomers View = "customers"
	ViewAnalytics View = "analytics"
	ViewCalendar  View = "calendar"
	ViewAll       View = "all"
)

var ErrUnknownView = errors.New("unknown view")

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case "":
		return ViewAll, nil
	case ViewCustomers, ViewAnalytics, ViewCalendar, ViewAll:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

type Options struct {
	View View
	// Period, when set, replaces Start/End with DateRange(Period, Now).
	Period analytics.Period
	Start  time.Time
	End    time.Time
	// Year/Month pick the calendar; zero means Now's month.
	Year  int
	Month time.Month
	Now   time.Time
	// Targets is the optional customer target lookup.
	Targets map[string]string
	Log     *logger.Logger
}

// Report is returned by Build; views that were not requested are omitted.
type Report struct {
	View       View                    `json:"view"`
	Customers  []types.CustomerSummary `json:"customers,omitempty"`
	Analytics  *types.AnalyticsResult  `json:"analytics,omitempty"`
	Highlight  *actionable.ActionCard  `json:"highlight,omitempty"`
	Calendar   *types.CalendarMonth    `json:"calendar,omitempty"`
	DurationMs int64                   `json:"duration_ms"`
}

// Build aggregates records into the requested views. With ViewAll the views
// run in parallel; none of them writes shared state.
func Build(records []types.ActivityRecord, opts Options) (Report, error) {
	start := time.Now()
	view := opts.View
	if view == "" {
		view = ViewAll
	}
	if _, err := ParseView(string(view)); err != nil {
		return Report{}, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	from, to := opts.Start, opts.End
	if opts.Period != "" {
		var err error
		if from, to, err = analytics.DateRange(opts.Period, now); err != nil {
			return Report{}, err
		}
	}
	year, month := opts.Year, opts.Month
	if year == 0 || month == 0 {
		year, month = now.Year(), now.Month()
	}

	log := opts.Log
	if log == nil {
		log = logger.New()
	}
	log = log.Component("report")

	res := Report{View: view}
	var wg sync.WaitGroup
	run := func(want View, fn func()) {
		if view != ViewAll && view != want {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	run(ViewCustomers, func() {
		res.Customers = aggregator.Aggregate(records, opts.Targets)
	})
	run(ViewAnalytics, func() {
		a := analytics.Aggregate(records, from, to)
		card := actionable.Generate(a)
		res.Analytics, res.Highlight = &a, &card
	})
	run(ViewCalendar, func() {
		cal := calendar.Generate(year, month, records)
		res.Calendar = &cal
	})
	wg.Wait()

	res.DurationMs = time.Since(start).Milliseconds()
	log.WithFields(map[string]interface{}{
		"view":        view,
		"records":     len(records),
		"customers":   len(res.Customers),
		"duration_ms": res.DurationMs,
	}).Debug("report built")
	return res, nil
}
