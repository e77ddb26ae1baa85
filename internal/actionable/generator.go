package actionable

import (
	"fmt"

	"activity-insights-go/internal/types"
)

const (
	// minProposals keeps one unlucky proposal from flagging an interviewer.
	minProposals  = 3
	weakThreshold = 35
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate picks the interviewer with the weakest design acceptance rate.
func Generate(res types.AnalyticsResult) ActionCard {
	worst := ""
	lowest := 101
	for _, iv := range res.ByInterviewer {
		if iv.Proposals < minProposals {
			continue
		}
		if iv.AcceptanceRate < lowest {
			lowest = iv.AcceptanceRate
			worst = iv.Label
		}
	}
	if worst != "" && lowest < weakThreshold {
		return ActionCard{
			Insight: fmt.Sprintf("Low design acceptance for %s (%d%% vs %d%% overall)", worst, lowest, res.KPIs.AcceptanceRate),
			Action:  "Review open proposals with the rep; pair on the next design pitch",
			Impact:  "Lift proposal-to-shipment conversion",
		}
	}
	return ActionCard{
		Insight: "No strong acceptance gap detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
