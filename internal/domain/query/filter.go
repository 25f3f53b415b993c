// Package query holds the pure read-side of the lead collection: the
// filter/search engine, typed sorting, and the date-bucketed view
// derivations. Every function operates on an immutable snapshot and
// never mutates its input.
package query

import (
	"strings"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/datefmt"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/utils"
)

// Apply filters leads by the given criteria. Populated criteria combine
// with AND. Soft-deleted leads are excluded unless the filter opts in.
func Apply(leads []entity.Lead, f entity.LeadFilter) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if matches(&lead, f) {
			out = append(out, lead)
		}
	}
	return out
}

func matches(lead *entity.Lead, f entity.LeadFilter) bool {
	if lead.IsDeleted && !f.IncludeDeleted {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, lead) {
		return false
	}
	if f.FollowUpDateStart != "" && compareDates(lead.FollowUpDate, f.FollowUpDateStart) < 0 {
		return false
	}
	if f.FollowUpDateEnd != "" && compareDates(lead.FollowUpDate, f.FollowUpDateEnd) > 0 {
		return false
	}
	if f.SearchTerm != "" && !matchesSearch(lead, f.SearchTerm) {
		return false
	}
	return true
}

func containsStatus(statuses []enum.LeadStatus, lead *entity.Lead) bool {
	for _, s := range statuses {
		if lead.Status == s {
			return true
		}
	}
	return false
}

// compareDates compares two stored date strings. When both parse, the
// calendar dates are compared; otherwise the raw strings are, which keeps
// normalized ISO values ordered and never throws on junk.
func compareDates(a, b string) int {
	ta, aok := datefmt.Parse(a)
	tb, bok := datefmt.Parse(b)
	if aok && bok {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// matchesSearch implements the free-text search. A digit-only term is
// first tried as a phone match with formatting punctuation stripped from
// the candidates; whatever the outcome, the term is also searched as a
// case-insensitive substring across the denormalized text fields.
func matchesSearch(lead *entity.Lead, term string) bool {
	if utils.IsDigits(term) {
		for _, number := range lead.AllNumbers() {
			if strings.Contains(utils.DigitsOnly(number), term) {
				return true
			}
		}
	}

	lower := strings.ToLower(term)
	for _, field := range searchableFields(lead) {
		if field != "" && strings.Contains(strings.ToLower(field), lower) {
			return true
		}
	}
	return false
}

func searchableFields(lead *entity.Lead) []string {
	fields := []string{
		lead.ClientName,
		lead.Company,
	}
	fields = append(fields, lead.AllNumbers()...)
	for _, m := range lead.MobileNumbers {
		if m.Name != "" {
			fields = append(fields, m.Name)
		}
	}
	return append(fields,
		lead.ConsumerNumber,
		lead.KVA,
		lead.Discom,
		lead.CompanyLocation,
		lead.Notes,
		lead.FinalConclusion,
		lead.Status.String(),
	)
}
