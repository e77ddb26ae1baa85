package types

import "strings"

// Placeholder is the spreadsheet convention for "no value".
const Placeholder = "-"

// ProposalPresent marks a record that carried a design proposal.
const ProposalPresent = "present"

// ActivityRecord is one logged visit/call/proposal row. Every field is
// optional; Normalized maps the placeholder to "".
type ActivityRecord struct {
	ManagementNumber   string `json:"management_number"`
	Date               string `json:"date,omitempty"`
	ActionType         string `json:"action_type,omitempty"`
	CustomerCode       string `json:"customer_code,omitempty"`
	CustomerName       string `json:"customer_name,omitempty"`
	VisitedSiteName    string `json:"visited_site_name,omitempty"`
	DirectDeliveryCode string `json:"direct_delivery_code,omitempty"`
	DirectDeliveryName string `json:"direct_delivery_name,omitempty"`
	Area               string `json:"area,omitempty"`
	Rank               string `json:"rank,omitempty"`
	PriorityCustomer   string `json:"priority_customer,omitempty"`
	InterviewerName    string `json:"interviewer_name,omitempty"`
	StayDuration       string `json:"stay_duration,omitempty"`
	DiscussionNotes    string `json:"discussion_notes,omitempty"`
	DesignProposalFlag string `json:"design_proposal_flag,omitempty"`
	DesignType         string `json:"design_type,omitempty"`
	DesignName         string `json:"design_name,omitempty"`
	DesignProgress     string `json:"design_progress_status,omitempty"`
	DesignRequestID    string `json:"design_request_id,omitempty"`
}

// Priority is the tri-state priority-customer marker.
type Priority int

const (
	PriorityUnset Priority = iota
	PriorityNo
	PriorityYes
)

// ParsePriority reads the raw priority column. "" is unset, "-" is an
// explicit negative, anything else marks a priority customer.
func ParsePriority(raw string) Priority {
	switch strings.TrimSpace(raw) {
	case "":
		return PriorityUnset
	case Placeholder:
		return PriorityNo
	default:
		return PriorityYes
	}
}

// Priority resolves the record's priority marker. Call it before Normalized
// erases the explicit negative.
func (r ActivityRecord) Priority() Priority {
	return ParsePriority(r.PriorityCustomer)
}

// IsPriority reports whether the record flags its customer as priority.
func (r ActivityRecord) IsPriority() bool {
	return r.Priority() == PriorityYes
}

func (r ActivityRecord) HasDesignProposal() bool {
	return strings.TrimSpace(r.DesignProposalFlag) == ProposalPresent
}

// Normalized returns a copy with every field trimmed and the placeholder
// collapsed to "". Priority survives as a positive marker only.
func (r ActivityRecord) Normalized() ActivityRecord {
	out := r
	for _, f := range []*string{
		&out.ManagementNumber, &out.Date, &out.ActionType,
		&out.CustomerCode, &out.CustomerName, &out.VisitedSiteName,
		&out.DirectDeliveryCode, &out.DirectDeliveryName,
		&out.Area, &out.Rank, &out.PriorityCustomer,
		&out.InterviewerName, &out.StayDuration, &out.DiscussionNotes,
		&out.DesignProposalFlag, &out.DesignType, &out.DesignName,
		&out.DesignProgress, &out.DesignRequestID,
	} {
		*f = clean(*f)
	}
	return out
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	if s == Placeholder {
		return ""
	}
	return s
}
