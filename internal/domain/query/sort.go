package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/datefmt"
)

// SortField enumerates the sortable lead fields. Each field maps to a
// typed comparator; there is no reflective field lookup.
type SortField string

const (
	SortByClientName     SortField = "clientName"
	SortByCompany        SortField = "company"
	SortByConsumerNumber SortField = "consumerNumber"
	SortByKVA            SortField = "kva"
	SortByStatus         SortField = "status"
	SortByFollowUpDate   SortField = "followUpDate"
	SortByLastActivity   SortField = "lastActivityDate"
)

// SortDirection is the sort order
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortState tracks the active sort field and direction
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// Toggle applies a field selection: re-selecting the active field flips
// the direction, selecting a new field resets to ascending.
func (s *SortState) Toggle(field SortField) {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Field = field
	s.Direction = Ascending
}

// string fields sort locale-aware, case-insensitive
var collator = collate.New(language.English, collate.IgnoreCase)

// Sort returns the leads ordered by the given state. The input slice is
// left untouched; ties keep their original relative order.
func Sort(leads []entity.Lead, state SortState) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	cmp := comparator(state.Field)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(&out[i], &out[j])
		if state.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparator(field SortField) func(a, b *entity.Lead) int {
	switch field {
	case SortByCompany:
		return stringCmp(func(l *entity.Lead) string { return l.Company })
	case SortByConsumerNumber:
		return stringCmp(func(l *entity.Lead) string { return l.ConsumerNumber })
	case SortByKVA:
		return stringCmp(func(l *entity.Lead) string { return l.KVA })
	case SortByStatus:
		return stringCmp(func(l *entity.Lead) string { return l.Status.String() })
	case SortByFollowUpDate:
		return dateCmp(func(l *entity.Lead) string { return l.FollowUpDate })
	case SortByLastActivity:
		return func(a, b *entity.Lead) int {
			switch {
			case a.LastActivityDate.Before(b.LastActivityDate):
				return -1
			case a.LastActivityDate.After(b.LastActivityDate):
				return 1
			default:
				return 0
			}
		}
	default:
		return stringCmp(func(l *entity.Lead) string { return l.ClientName })
	}
}

func stringCmp(get func(*entity.Lead) string) func(a, b *entity.Lead) int {
	return func(a, b *entity.Lead) int {
		return collator.CompareString(get(a), get(b))
	}
}

// dateCmp orders stored date strings by calendar date when they parse,
// falling back to a lexical comparison; unparseable values sort last.
func dateCmp(get func(*entity.Lead) string) func(a, b *entity.Lead) int {
	return func(a, b *entity.Lead) int {
		va, vb := get(a), get(b)
		ta, aok := datefmt.Parse(va)
		tb, bok := datefmt.Parse(vb)
		switch {
		case aok && bok:
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		case aok:
			return -1
		case bok:
			return 1
		default:
			return strings.Compare(va, vb)
		}
	}
}
