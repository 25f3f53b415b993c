package entity

import (
	"time"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
)

// MobileNumber is one phone entry attached to a lead. At most one entry
// carries IsMain; when none does, the first entry acts as the main number.
type MobileNumber struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
	IsMain bool   `json:"isMain"`
}

// Activity is one entry in a lead's append-only audit trail
type Activity struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"leadId"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Lead represents a prospective client tracked through the sales and
// documentation workflow
type Lead struct {
	ID             string         `json:"id"`
	KVA            string         `json:"kva"`
	ConnectionDate string         `json:"connectionDate"`
	ConsumerNumber string         `json:"consumerNumber"`
	Company        string         `json:"company"`
	ClientName     string         `json:"clientName"`
	MobileNumbers  []MobileNumber `json:"mobileNumbers"`
	// MobileNumber is the legacy flat field kept in sync with the main
	// entry of MobileNumbers at every write
	MobileNumber     string              `json:"mobileNumber"`
	CompanyLocation  string              `json:"companyLocation,omitempty"`
	Discom           string              `json:"discom,omitempty"`
	UnitType         enum.UnitType       `json:"unitType"`
	Status           enum.LeadStatus     `json:"status"`
	MandateStatus    enum.MandateStatus  `json:"mandateStatus,omitempty"`
	DocumentStatus   enum.DocumentStatus `json:"documentStatus,omitempty"`
	LastActivityDate time.Time           `json:"lastActivityDate"`
	// FollowUpDate keeps the submitted text form; accepted shapes are
	// DD-MM-YYYY and YYYY-MM-DD
	FollowUpDate    string     `json:"followUpDate"`
	FinalConclusion string     `json:"finalConclusion,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	IsDone          bool       `json:"isDone"`
	IsDeleted       bool       `json:"isDeleted"`
	Activities      []Activity `json:"activities,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// MainNumber returns the designated main phone entry: the first entry
// flagged IsMain, otherwise the first entry, otherwise the legacy flat
// field wrapped in a synthetic entry.
func (l *Lead) MainNumber() MobileNumber {
	for _, m := range l.MobileNumbers {
		if m.IsMain {
			return m
		}
	}
	if len(l.MobileNumbers) > 0 {
		return l.MobileNumbers[0]
	}
	return MobileNumber{Number: l.MobileNumber, IsMain: true}
}

// AllNumbers returns every phone number on the lead, legacy flat field
// included, with empty values dropped.
func (l *Lead) AllNumbers() []string {
	numbers := make([]string, 0, len(l.MobileNumbers)+1)
	if l.MobileNumber != "" {
		numbers = append(numbers, l.MobileNumber)
	}
	for _, m := range l.MobileNumbers {
		if m.Number != "" {
			numbers = append(numbers, m.Number)
		}
	}
	return numbers
}

// SyncMainNumber enforces the single-main invariant: the first entry
// flagged IsMain keeps the flag, every later flag is cleared, and the
// legacy flat field is rewritten from the effective main entry.
func (l *Lead) SyncMainNumber() {
	seenMain := false
	for i := range l.MobileNumbers {
		if l.MobileNumbers[i].IsMain {
			if seenMain {
				l.MobileNumbers[i].IsMain = false
			}
			seenMain = true
		}
	}
	l.MobileNumber = l.MainNumber().Number
}

// Clone returns a deep copy of the lead
func (l *Lead) Clone() *Lead {
	c := *l
	if l.MobileNumbers != nil {
		c.MobileNumbers = make([]MobileNumber, len(l.MobileNumbers))
		copy(c.MobileNumbers, l.MobileNumbers)
	}
	if l.Activities != nil {
		c.Activities = make([]Activity, len(l.Activities))
		copy(c.Activities, l.Activities)
	}
	return &c
}
