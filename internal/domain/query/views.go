package query

import (
	"sort"
	"time"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/datefmt"
)

// followUpOn reports whether the lead is open (not done, not deleted) and
// has a follow-up date that parses. Unparseable dates never match any
// date-bounded view.
func followUpOn(lead *entity.Lead) (time.Time, bool) {
	if lead.IsDone || lead.IsDeleted || lead.FollowUpDate == "" {
		return time.Time{}, false
	}
	t, ok := datefmt.Parse(lead.FollowUpDate)
	if !ok {
		return time.Time{}, false
	}
	return datefmt.Midnight(t), true
}

func selectByDate(leads []entity.Lead, keep func(due time.Time) bool) []entity.Lead {
	out := make([]entity.Lead, 0)
	for _, lead := range leads {
		if due, ok := followUpOn(&lead); ok && keep(due) {
			out = append(out, lead)
		}
	}
	return out
}

// DueToday returns open leads whose follow-up falls on ref's calendar day
func DueToday(leads []entity.Lead, ref time.Time) []entity.Lead {
	today := datefmt.Midnight(ref)
	return selectByDate(leads, func(due time.Time) bool {
		return due.Equal(today)
	})
}

// Overdue returns open leads whose follow-up is before ref's calendar day
func Overdue(leads []entity.Lead, ref time.Time) []entity.Lead {
	today := datefmt.Midnight(ref)
	return selectByDate(leads, func(due time.Time) bool {
		return due.Before(today)
	})
}

// Upcoming returns open leads due within the seven days after ref
func Upcoming(leads []entity.Lead, ref time.Time) []entity.Lead {
	today := datefmt.Midnight(ref)
	horizon := today.AddDate(0, 0, 7)
	return selectByDate(leads, func(due time.Time) bool {
		return due.After(today) && !due.After(horizon)
	})
}

// ThisWeek returns open leads due after ref but within the current
// calendar week. It deliberately overlaps Upcoming.
func ThisWeek(leads []entity.Lead, ref time.Time) []entity.Lead {
	today := datefmt.Midnight(ref)
	weekEnd := datefmt.EndOfWeek(ref)
	return selectByDate(leads, func(due time.Time) bool {
		return due.After(today) && !due.After(weekEnd)
	})
}

func selectByStatus(leads []entity.Lead, status enum.LeadStatus) []entity.Lead {
	out := make([]entity.Lead, 0)
	for _, lead := range leads {
		if lead.Status == status && !lead.IsDone && !lead.IsDeleted {
			out = append(out, lead)
		}
	}
	return out
}

// PendingDocumentation returns open leads sitting in the documentation stage
func PendingDocumentation(leads []entity.Lead) []entity.Lead {
	return selectByStatus(leads, enum.StatusDocumentation)
}

// MandateSent returns open leads whose mandate has gone out
func MandateSent(leads []entity.Lead) []entity.Lead {
	return selectByStatus(leads, enum.StatusMandateSent)
}

// ReminderQuery shapes the reminders list: an inclusive follow-up date
// range, an optional status filter, and follow-up date ordering.
type ReminderQuery struct {
	Start       string
	End         string
	Statuses    []enum.LeadStatus
	IncludeDone bool
	Descending  bool
}

// Reminders returns non-deleted leads with a parseable follow-up date,
// narrowed by the query and ordered by follow-up date.
func Reminders(leads []entity.Lead, q ReminderQuery) []entity.Lead {
	type item struct {
		lead entity.Lead
		due  time.Time
	}

	var start, end time.Time
	var hasStart, hasEnd bool
	if q.Start != "" {
		start, hasStart = datefmt.Parse(q.Start)
	}
	if q.End != "" {
		end, hasEnd = datefmt.Parse(q.End)
		if hasEnd {
			// inclusive upper bound
			end = datefmt.Midnight(end).AddDate(0, 0, 1)
		}
	}

	items := make([]item, 0)
	for _, lead := range leads {
		if lead.IsDeleted {
			continue
		}
		if lead.IsDone && !q.IncludeDone {
			continue
		}
		if len(q.Statuses) > 0 && !containsStatus(q.Statuses, &lead) {
			continue
		}
		due, ok := datefmt.Parse(lead.FollowUpDate)
		if !ok {
			continue
		}
		due = datefmt.Midnight(due)
		if hasStart && due.Before(datefmt.Midnight(start)) {
			continue
		}
		if hasEnd && !due.Before(end) {
			continue
		}
		items = append(items, item{lead: lead, due: due})
	}

	// sort ascending first, then flip: descending is the exact reverse
	// of the ascending order, ties included
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].due.Before(items[j].due)
	})
	if q.Descending {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	out := make([]entity.Lead, len(items))
	for i, it := range items {
		out[i] = it.lead
	}
	return out
}
