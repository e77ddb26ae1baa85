// Package actions maps free-text action-type labels onto a closed set of
// categories. Every view classifies through Classify so they agree on what
// a visit or a call is.
package actions

import "strings"

type Category string

const (
	Visit           Category = "visit"
	Phone           Category = "phone"
	Email           Category = "email"
	InternalFullDay Category = "internal_full_day"
	InternalHalfDay Category = "internal_half_day"
	Survey          Category = "survey"
	Excursion       Category = "excursion"
	Other           Category = "other"
)

// Literal labels recognized by exact match.
const (
	LabelInternalFullDay = "internal (full day)"
	LabelInternalHalfDay = "internal (half day)"
	LabelSurvey          = "mass-retailer survey"
	LabelExcursion       = "excursion/outing-time"
)

type matchKind int

const (
	exact matchKind = iota
	contains
)

type rule struct {
	kind     matchKind
	text     string
	category Category
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{exact, LabelInternalFullDay, InternalFullDay},
	{exact, LabelInternalHalfDay, InternalHalfDay},
	{contains, "visit", Visit},
	{contains, "phone", Phone},
	{contains, "email", Email},
	{exact, LabelSurvey, Survey},
	{exact, LabelExcursion, Excursion},
}

// Classify returns Other for empty or unmatched labels.
func Classify(actionType string) Category {
	label := strings.TrimSpace(actionType)
	if label == "" {
		return Other
	}
	lower := strings.ToLower(label)
	for _, r := range rules {
		switch r.kind {
		case exact:
			if label == r.text {
				return r.category
			}
		case contains:
			if strings.Contains(lower, r.text) {
				return r.category
			}
		}
	}
	return Other
}

// IsInternal reports the two internal-day categories.
func (c Category) IsInternal() bool {
	return c == InternalFullDay || c == InternalHalfDay
}

// IsCalendarVisit is what the calendar draws: real visits and internal days.
func (c Category) IsCalendarVisit() bool {
	return c == Visit || c.IsInternal()
}
