package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-insights-go/internal/types"
)

func sampleRecords() []types.ActivityRecord {
	return []types.ActivityRecord{
		{Date: "2024/04/01", ActionType: "visit with appointment", Area: "North", Rank: "A", InterviewerName: "Sato",
			DesignProposalFlag: "present", DesignProgress: "in production"},
		{Date: "24/4/1", ActionType: "phone negotiation", Area: "North", Rank: "B", InterviewerName: "Sato"},
		{Date: "2024-04-02", ActionType: "email", Area: "South", InterviewerName: "Kato",
			DesignProposalFlag: "present", DesignProgress: "shipped"},
		{Date: "2024/04/03", ActionType: "visit", Area: "", Rank: "-", InterviewerName: "Kato",
			DesignProposalFlag: "present", DesignProgress: "rejected (lost to competitor)"},
		{Date: "2024/04/03", ActionType: "visit", Area: "South", InterviewerName: "Kato",
			DesignProposalFlag: "present", DesignProgress: "rejected (plan scrapped)"},
		{Date: "2024/05/20", ActionType: "internal (full day)", InterviewerName: "Sato"},
		{Date: "", ActionType: "phone", Area: "North"},
	}
}

func TestAggregate_NoWindowKPIs(t *testing.T) {
	res := Aggregate(sampleRecords(), time.Time{}, time.Time{})

	assert.Equal(t, types.KPIs{
		TotalVisits:      7,
		TotalProposals:   4,
		ActiveProjects:   1,
		CompletedDesigns: 1,
		RejectedDesigns:  2,
		AcceptanceRate:   25,
		PhoneContacts:    2,
		EmailContacts:    1,
	}, res.KPIs)
	assert.Equal(t, types.DesignFunnel{Proposals: 4, Active: 1, Completed: 1, Rejected: 2, AcceptanceRate: 25}, res.Funnel)
	assert.Empty(t, res.WindowStart)
	assert.Empty(t, res.WindowEnd)
}

func TestAggregate_TrendOnePointPerDate(t *testing.T) {
	res := Aggregate(sampleRecords(), time.Time{}, time.Time{})

	require.Len(t, res.Trend, 4) // undated row has no trend point
	var days []string
	for _, p := range res.Trend {
		days = append(days, p.Date)
	}
	assert.Equal(t, []string{"2024/04/01", "2024/04/02", "2024/04/03", "2024/05/20"}, days)

	first := res.Trend[0]
	assert.Equal(t, 2, first.Visits)
	assert.Equal(t, 1, first.Proposals)
	assert.Equal(t, 1, first.ActiveProjects)
	assert.Equal(t, 1, first.PhoneContacts)

	assert.Equal(t, 2, res.Trend[2].Rejected)
}

func TestAggregate_WindowFilters(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 4, 2, 0, 0, 0, 0, loc)
	end := time.Date(2024, 4, 3, 23, 59, 59, int(999*time.Millisecond), loc)

	res := Aggregate(sampleRecords(), start, end)
	assert.Equal(t, 3, res.KPIs.TotalVisits)
	assert.Equal(t, 3, res.KPIs.TotalProposals)
	assert.Equal(t, 1, res.KPIs.CompletedDesigns)
	assert.Equal(t, 33, res.KPIs.AcceptanceRate)
	assert.Equal(t, "2024/04/02", res.WindowStart)
	assert.Equal(t, "2024/04/03", res.WindowEnd)
	require.Len(t, res.Trend, 2)
}

func TestAggregate_OpenEndedWindow(t *testing.T) {
	start := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	res := Aggregate(sampleRecords(), start, time.Time{})
	// two rows on 04/03, one on 05/20; the undated row is dropped
	assert.Equal(t, 3, res.KPIs.TotalVisits)
}

func TestAggregate_TodayWithNoRecordsIsZeroValued(t *testing.T) {
	now := time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)
	start, end, err := DateRange(Today, now)
	require.NoError(t, err)

	res := Aggregate(sampleRecords(), start, end)
	assert.Equal(t, 0, res.KPIs.TotalVisits)
	assert.Equal(t, 0, res.KPIs.AcceptanceRate)
	assert.NotNil(t, res.Trend)
	assert.Empty(t, res.Trend)
	assert.NotNil(t, res.ByArea)
	assert.NotNil(t, res.ByInterviewer)
}

func TestAggregate_EmptyInput(t *testing.T) {
	res := Aggregate(nil, time.Time{}, time.Time{})
	assert.Equal(t, types.KPIs{}, res.KPIs)
	for _, s := range [][]types.Breakdown{res.ByArea, res.ByRank, res.ByAction, res.DesignProgress} {
		assert.NotNil(t, s)
		assert.Empty(t, s)
	}
	assert.NotNil(t, res.Trend)
}

func TestAggregate_Breakdowns(t *testing.T) {
	res := Aggregate(sampleRecords(), time.Time{}, time.Time{})

	assert.Equal(t, []types.Breakdown{
		{Label: "North", Count: 3, Proposals: 1},
		{Label: "South", Count: 2, Proposals: 2},
		{Label: Unspecified, Count: 2, Proposals: 1},
	}, res.ByArea)

	assert.Equal(t, []types.Breakdown{
		{Label: Unspecified, Count: 5},
		{Label: "A", Count: 1},
		{Label: "B", Count: 1},
	}, res.ByRank)

	assert.Equal(t, "visit", res.ByAction[0].Label)
	assert.Equal(t, 2, res.ByAction[0].Count)

	assert.Equal(t, []types.InterviewerBreakdown{
		{Label: "Kato", Count: 3, Proposals: 3, Completed: 1, AcceptanceRate: 33},
		{Label: "Sato", Count: 3, Proposals: 1, Completed: 0, AcceptanceRate: 0},
		{Label: Unspecified, Count: 1},
	}, res.ByInterviewer)

	assert.Equal(t, []types.Breakdown{
		{Label: "in production", Count: 1},
		{Label: "rejected (lost to competitor)", Count: 1},
		{Label: "rejected (plan scrapped)", Count: 1},
		{Label: "shipped", Count: 1},
	}, res.DesignProgress)
}

func TestAggregate_Idempotent(t *testing.T) {
	a, err := json.Marshal(Aggregate(sampleRecords(), time.Time{}, time.Time{}))
	require.NoError(t, err)
	b, err := json.Marshal(Aggregate(sampleRecords(), time.Time{}, time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAcceptanceRate(t *testing.T) {
	cases := []struct {
		completed, proposals, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
		{7, 5, 100},
	}
	for _, tc := range cases {
		got := AcceptanceRate(tc.completed, tc.proposals)
		assert.Equal(t, tc.want, got, "%d/%d", tc.completed, tc.proposals)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}
