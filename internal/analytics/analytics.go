// Package analytics computes KPI totals, the design funnel, a per-date trend
// series and group-by breakdowns over a date window of activity records.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"activity-insights-go/internal/actions"
	"activity-insights-go/internal/dates"
	"activity-insights-go/internal/types"
)

const (
	StatusShipped          = "shipped"
	StatusRejectedLost     = "rejected (lost to competitor)"
	StatusRejectedScrapped = "rejected (plan scrapped)"
	statusRejected         = "rejected"

	// Unspecified labels empty group-by values.
	Unspecified = "unspecified"
)

var terminalStatuses = []string{StatusShipped, StatusRejectedLost, StatusRejectedScrapped}

// AcceptanceRate is round(completed/proposals*100) clamped to [0, 100];
// 0 when there are no proposals.
func AcceptanceRate(completed, proposals int) int {
	if proposals <= 0 || completed <= 0 {
		return 0
	}
	rate := int(math.Round(float64(completed) / float64(proposals) * 100))
	if rate > 100 {
		return 100
	}
	return rate
}

// outcome is what a single record contributes to the counters.
type outcome struct {
	proposal  bool
	active    bool
	completed bool
	rejected  bool
	phone     bool
	email     bool
}

func evaluate(rec types.ActivityRecord) outcome {
	status := rec.DesignProgress
	cat := actions.Classify(rec.ActionType)
	return outcome{
		proposal:  rec.HasDesignProposal(),
		active:    status != "" && !isTerminal(status),
		completed: strings.Contains(status, StatusShipped),
		rejected:  strings.Contains(status, statusRejected),
		phone:     cat == actions.Phone,
		email:     cat == actions.Email,
	}
}

func isTerminal(status string) bool {
	for _, s := range terminalStatuses {
		if strings.Contains(status, s) {
			return true
		}
	}
	return false
}

func (o outcome) addTo(p *types.TrendPoint) {
	p.Visits++
	p.Proposals += b2i(o.proposal)
	p.ActiveProjects += b2i(o.active)
	p.Completed += b2i(o.completed)
	p.Rejected += b2i(o.rejected)
	p.PhoneContacts += b2i(o.phone)
	p.EmailContacts += b2i(o.email)
}

// Aggregate filters records to [start, end] and computes the result.
// A zero bound is open; with both bounds zero every record is kept.
// Records with no parseable date are dropped whenever a bound is set.
func Aggregate(records []types.ActivityRecord, start, end time.Time) types.AnalyticsResult {
	w := newWindow(start, end)

	var totals types.TrendPoint
	trend := map[string]*types.TrendPoint{}
	byArea := newGroups()
	byRank := newGroups()
	byAction := newGroups()
	byInterviewer := newGroups()
	progress := newGroups()

	for _, raw := range records {
		rec := raw.Normalized()
		day, dated := dates.Parse(rec.Date)
		if !w.contains(day, dated) {
			continue
		}
		o := evaluate(rec)
		o.addTo(&totals)

		if dated {
			key := day.String()
			p, ok := trend[key]
			if !ok {
				p = &types.TrendPoint{Date: key}
				trend[key] = p
			}
			o.addTo(p)
		}

		byArea.add(rec.Area, o)
		byRank.add(rec.Rank, o)
		byAction.add(rec.ActionType, o)
		byInterviewer.add(rec.InterviewerName, o)
		if rec.DesignProgress != "" || o.proposal {
			progress.add(rec.DesignProgress, o)
		}
	}

	rate := AcceptanceRate(totals.Completed, totals.Proposals)
	return types.AnalyticsResult{
		WindowStart: w.label(w.start),
		WindowEnd:   w.label(w.end),
		KPIs: types.KPIs{
			TotalVisits:      totals.Visits,
			TotalProposals:   totals.Proposals,
			ActiveProjects:   totals.ActiveProjects,
			CompletedDesigns: totals.Completed,
			RejectedDesigns:  totals.Rejected,
			AcceptanceRate:   rate,
			PhoneContacts:    totals.PhoneContacts,
			EmailContacts:    totals.EmailContacts,
		},
		Funnel: types.DesignFunnel{
			Proposals:      totals.Proposals,
			Active:         totals.ActiveProjects,
			Completed:      totals.Completed,
			Rejected:       totals.Rejected,
			AcceptanceRate: rate,
		},
		Trend:          sortedTrend(trend),
		ByArea:         byArea.breakdown(true),
		ByRank:         byRank.breakdown(false),
		ByAction:       byAction.breakdown(false),
		ByInterviewer:  byInterviewer.interviewers(),
		DesignProgress: progress.breakdown(false),
	}
}

type window struct {
	start, end time.Time
	bounded    bool
	loc        *time.Location
}

func newWindow(start, end time.Time) window {
	w := window{start: start, end: end, loc: time.Local}
	switch {
	case !start.IsZero():
		w.loc = start.Location()
	case !end.IsZero():
		w.loc = end.Location()
	}
	w.bounded = !start.IsZero() || !end.IsZero()
	return w
}

func (w window) contains(d dates.Date, dated bool) bool {
	if !w.bounded {
		return true
	}
	if !dated {
		return false
	}
	t := d.Time(w.loc)
	if !w.start.IsZero() && t.Before(w.start) {
		return false
	}
	if !w.end.IsZero() && t.After(w.end) {
		return false
	}
	return true
}

func (w window) label(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return dates.FromTime(t.In(w.loc)).String()
}

func sortedTrend(m map[string]*types.TrendPoint) []types.TrendPoint {
	out := make([]types.TrendPoint, 0, len(m))
	for _, p := range m {
		out = append(out, *p)
	}
	// canonical YYYY/MM/DD strings sort chronologically
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
