package entity

import "github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"

// LeadFilter is the criteria set applied by the filter engine. Zero-value
// fields are ignored; populated fields combine with AND.
type LeadFilter struct {
	Statuses          []enum.LeadStatus `json:"statuses,omitempty"`
	FollowUpDateStart string            `json:"followUpDateStart,omitempty"`
	FollowUpDateEnd   string            `json:"followUpDateEnd,omitempty"`
	SearchTerm        string            `json:"searchTerm,omitempty"`
	IncludeDeleted    bool              `json:"includeDeleted,omitempty"`
}

// SavedView is a named, persisted filter preset
type SavedView struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Filters LeadFilter `json:"filters"`
}
