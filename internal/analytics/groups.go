package analytics

import (
	"sort"

	"activity-insights-go/internal/types"
)

type group struct {
	label     string
	count     int
	proposals int
	completed int
}

// groups is a function-local label -> counter table.
type groups map[string]*group

func newGroups() groups { return groups{} }

func (g groups) add(label string, o outcome) {
	if label == "" {
		label = Unspecified
	}
	e, ok := g[label]
	if !ok {
		e = &group{label: label}
		g[label] = e
	}
	e.count++
	e.proposals += b2i(o.proposal)
	e.completed += b2i(o.completed)
}

// sorted orders by count descending, then label for a stable result.
func (g groups) sorted() []*group {
	out := make([]*group, 0, len(g))
	for _, e := range g {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].label < out[j].label
	})
	return out
}

func (g groups) breakdown(withProposals bool) []types.Breakdown {
	out := make([]types.Breakdown, 0, len(g))
	for _, e := range g.sorted() {
		b := types.Breakdown{Label: e.label, Count: e.count}
		if withProposals {
			b.Proposals = e.proposals
		}
		out = append(out, b)
	}
	return out
}

func (g groups) interviewers() []types.InterviewerBreakdown {
	out := make([]types.InterviewerBreakdown, 0, len(g))
	for _, e := range g.sorted() {
		out = append(out, types.InterviewerBreakdown{
			Label:          e.label,
			Count:          e.count,
			Proposals:      e.proposals,
			Completed:      e.completed,
			AcceptanceRate: AcceptanceRate(e.completed, e.proposals),
		})
	}
	return out
}
