package service

import (
	"context"
	"time"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/query"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
)

// DashboardService derives the read-only working views from a snapshot
// of the lead collection. Nothing is cached; every call re-reads and
// re-derives.
type DashboardService struct {
	leadRepo repository.LeadRepository
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(leadRepo repository.LeadRepository) *DashboardService {
	return &DashboardService{leadRepo: leadRepo, now: time.Now}
}

// DueToday returns open leads whose follow-up is due today
func (s *DashboardService) DueToday(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.DueToday(leads, s.now()), nil
}

// Overdue returns open leads whose follow-up has passed
func (s *DashboardService) Overdue(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Overdue(leads, s.now()), nil
}

// Upcoming returns open leads due within the next seven days
func (s *DashboardService) Upcoming(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Upcoming(leads, s.now()), nil
}

// ThisWeek returns open leads due before the end of the calendar week
func (s *DashboardService) ThisWeek(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.ThisWeek(leads, s.now()), nil
}

// PendingDocumentation returns open leads in the documentation stage
func (s *DashboardService) PendingDocumentation(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.PendingDocumentation(leads), nil
}

// MandateSent returns open leads whose mandate has gone out
func (s *DashboardService) MandateSent(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.MandateSent(leads), nil
}

// Reminders returns the reminders list shaped by the given query
func (s *DashboardService) Reminders(ctx context.Context, q query.ReminderQuery) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Reminders(leads, q), nil
}

// Counts summarizes the collection for the dashboard cards
type Counts struct {
	Total  int
	Active int
}

// Count returns the dashboard summary numbers. Total covers every
// non-deleted lead; Active narrows to leads not yet completed.
func (s *DashboardService) Count(ctx context.Context) (*Counts, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := &Counts{}
	for _, lead := range leads {
		if lead.IsDeleted {
			continue
		}
		counts.Total++
		if !lead.IsDone {
			counts.Active++
		}
	}
	return counts, nil
}
