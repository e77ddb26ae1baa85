package dataset

import "strings"

type column int

const (
	colManagementNumber column = iota
	colDate
	colActionType
	colCustomerCode
	colCustomerName
	colVisitedSite
	colDirectDeliveryCode
	colDirectDeliveryName
	colArea
	colRank
	colPriority
	colInterviewer
	colStayDuration
	colDiscussionNotes
	colDesignProposal
	colDesignType
	colDesignName
	colDesignProgress
	colDesignRequestID
	numColumns
)

// headerRule matches when every keyword of any one alternative is present.
type headerRule struct {
	col  column
	alts [][]string
}

// headerRules are checked in order; more specific headers come first so
// "direct delivery code" never lands in customer code.
var headerRules = []headerRule{
	{colDirectDeliveryCode, [][]string{{"direct delivery", "code"}, {"delivery", "code"}}},
	{colDirectDeliveryName, [][]string{{"direct delivery"}, {"delivery", "name"}}},
	{colDesignRequestID, [][]string{{"design", "request"}, {"request", "id"}}},
	{colDesignProposal, [][]string{{"proposal"}}},
	{colDesignType, [][]string{{"design", "type"}}},
	{colDesignName, [][]string{{"design", "name"}}},
	{colDesignProgress, [][]string{{"progress"}, {"design", "status"}}},
	{colCustomerCode, [][]string{{"customer", "code"}}},
	{colCustomerName, [][]string{{"customer", "name"}}},
	{colVisitedSite, [][]string{{"visited"}, {"site"}}},
	{colActionType, [][]string{{"action"}, {"activity", "type"}}},
	{colDate, [][]string{{"date"}}},
	{colArea, [][]string{{"area"}, {"region"}}},
	{colRank, [][]string{{"rank"}}},
	{colPriority, [][]string{{"priority"}}},
	{colInterviewer, [][]string{{"interviewer"}, {"sales rep"}}},
	{colStayDuration, [][]string{{"stay"}, {"duration"}}},
	{colDiscussionNotes, [][]string{{"discussion"}, {"notes"}}},
	{colManagementNumber, [][]string{{"management"}, {"record", "id"}, {"id"}}},
}

var headerCleaner = strings.NewReplacer("_", " ", "-", " ", "(", " ", ")", " ")

func normalizeHeader(h string) string {
	h = strings.ToLower(headerCleaner.Replace(h))
	return strings.Join(strings.Fields(h), " ")
}

// detectColumns returns a header index per column, -1 when absent. The
// first header matching a column wins.
func detectColumns(header []string) [numColumns]int {
	var idx [numColumns]int
	for i := range idx {
		idx[i] = -1
	}
	for i, h := range header {
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		if col, ok := matchHeader(n); ok && idx[col] == -1 {
			idx[col] = i
		}
	}
	return idx
}

func matchHeader(n string) (column, bool) {
	for _, r := range headerRules {
		for _, alt := range r.alts {
			if containsAll(n, alt) {
				return r.col, true
			}
		}
	}
	return 0, false
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
