package enum

import "strings"

// LeadStatus represents the workflow stage of a lead
type LeadStatus string

const (
	StatusNew           LeadStatus = "New"
	StatusCNR           LeadStatus = "CNR"
	StatusBusy          LeadStatus = "Busy"
	StatusFollowUp      LeadStatus = "Follow-up"
	StatusDealClose     LeadStatus = "Deal Close"
	StatusWorkAlloted   LeadStatus = "Work Alloted"
	StatusHotlead       LeadStatus = "Hotlead"
	StatusMandateSent   LeadStatus = "Mandate Sent"
	StatusDocumentation LeadStatus = "Documentation"
)

// AllLeadStatuses returns every valid lead status in display order
func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		StatusNew,
		StatusCNR,
		StatusBusy,
		StatusFollowUp,
		StatusDealClose,
		StatusWorkAlloted,
		StatusHotlead,
		StatusMandateSent,
		StatusDocumentation,
	}
}

func (s LeadStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the canonical statuses
func (s LeadStatus) IsValid() bool {
	for _, v := range AllLeadStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// legacy status labels from records persisted before the workflow rework
var legacyStatusMap = map[string]LeadStatus{
	"contacted":     StatusFollowUp,
	"in progress":   StatusWorkAlloted,
	"closed - won":  StatusDealClose,
	"closed-won":    StatusDealClose,
	"closed - lost": StatusCNR,
	"closed-lost":   StatusCNR,
}

// NormalizeLeadStatus maps a raw status label to a canonical LeadStatus.
// Legacy labels are migrated; unknown labels fall back to StatusNew.
func NormalizeLeadStatus(raw string) LeadStatus {
	trimmed := strings.TrimSpace(raw)
	if s := LeadStatus(trimmed); s.IsValid() {
		return s
	}
	lower := strings.ToLower(trimmed)
	for _, v := range AllLeadStatuses() {
		if strings.ToLower(v.String()) == lower {
			return v
		}
	}
	if s, ok := legacyStatusMap[lower]; ok {
		return s
	}
	return StatusNew
}
