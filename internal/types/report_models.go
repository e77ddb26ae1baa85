// internal/types/report_models.go
package types

// --------------------------------------------
// Customer hierarchy
// --------------------------------------------

// Counters is shared by a customer and its direct-delivery locations.
type Counters struct {
	TotalActivities int `json:"total_activities"`
	Visits          int `json:"visits"`
	Calls           int `json:"calls"`
	DesignRequests  int `json:"design_requests"` // unique request ids, not rows
}

type CustomerSummary struct {
	Code          string `json:"customer_code"`
	Name          string `json:"name"`
	Area          string `json:"area,omitempty"`
	Rank          string `json:"rank,omitempty"`
	IsPriority    bool   `json:"is_priority"`
	LastActivity  string `json:"last_activity,omitempty"` // YYYY/MM/DD
	CurrentTarget string `json:"current_target,omitempty"`
	Counters
	// Own counts only the rows attributed to the customer's main site.
	Own      Counters                `json:"own"`
	SubItems []DirectDeliverySummary `json:"sub_items"`
}

type DirectDeliverySummary struct {
	CustomerCode  string `json:"customer_code"`
	Code          string `json:"direct_delivery_code"`
	Name          string `json:"name"`
	Area          string `json:"area,omitempty"`
	Rank          string `json:"rank,omitempty"`
	IsPriority    bool   `json:"is_priority"`
	LastActivity  string `json:"last_activity,omitempty"`
	CurrentTarget string `json:"current_target,omitempty"`
	Counters
}

// --------------------------------------------
// Analytics
// --------------------------------------------

type KPIs struct {
	TotalVisits      int `json:"total_visits"`
	TotalProposals   int `json:"total_proposals"`
	ActiveProjects   int `json:"active_projects"`
	CompletedDesigns int `json:"completed_designs"`
	RejectedDesigns  int `json:"rejected_designs"`
	AcceptanceRate   int `json:"acceptance_rate"` // 0–100
	PhoneContacts    int `json:"phone_contacts"`
	EmailContacts    int `json:"email_contacts"`
}

type DesignFunnel struct {
	Proposals      int `json:"proposals"`
	Active         int `json:"active"`
	Completed      int `json:"completed"`
	Rejected       int `json:"rejected"`
	AcceptanceRate int `json:"acceptance_rate"`
}

// TrendPoint is one date's counters inside the analytics window.
type TrendPoint struct {
	Date           string `json:"date"`
	Visits         int    `json:"visits"`
	Proposals      int    `json:"proposals"`
	ActiveProjects int    `json:"active_projects"`
	Completed      int    `json:"completed"`
	Rejected       int    `json:"rejected"`
	PhoneContacts  int    `json:"phone_contacts"`
	EmailContacts  int    `json:"email_contacts"`
}

type Breakdown struct {
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Proposals int    `json:"proposals,omitempty"`
}

type InterviewerBreakdown struct {
	Label          string `json:"label"`
	Count          int    `json:"count"`
	Proposals      int    `json:"proposals"`
	Completed      int    `json:"completed"`
	AcceptanceRate int    `json:"acceptance_rate"`
}

type AnalyticsResult struct {
	WindowStart    string                 `json:"window_start,omitempty"`
	WindowEnd      string                 `json:"window_end,omitempty"`
	KPIs           KPIs                   `json:"kpis"`
	Funnel         DesignFunnel           `json:"design_funnel"`
	Trend          []TrendPoint           `json:"trend"`
	ByArea         []Breakdown            `json:"by_area"`
	ByRank         []Breakdown            `json:"by_rank"`
	ByAction       []Breakdown            `json:"by_action"`
	ByInterviewer  []InterviewerBreakdown `json:"by_interviewer"`
	DesignProgress []Breakdown            `json:"design_progress"`
}

// --------------------------------------------
// Calendar
// --------------------------------------------

type CalendarVisit struct {
	Name              string `json:"name"`
	Action            string `json:"action"`
	ID                string `json:"id"`
	HasDesignProposal bool   `json:"has_design_proposal"`
	Interviewer       string `json:"interviewer,omitempty"`
	StayDuration      string `json:"stay_duration,omitempty"`
	DiscussionNotes   string `json:"discussion_notes,omitempty"`
	DesignType        string `json:"design_type,omitempty"`
	DesignName        string `json:"design_name,omitempty"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Day     int             `json:"day"`
	Weekday int             `json:"weekday"` // 0=Sunday
	InMonth bool            `json:"in_month"`
	Visits  []CalendarVisit `json:"visits"`
}

type CalendarMonth struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"` // 1–12
	FirstWeekday    int           `json:"first_weekday"`
	DaysInMonth     int           `json:"days_in_month"`
	Days            []CalendarDay `json:"days"`
	TotalVisits     int           `json:"total_visits"`
	UniqueCustomers int           `json:"unique_customers"`
}
