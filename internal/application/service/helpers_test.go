package service

import (
	"context"
	"time"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
)

// memLeadRepo is an in-memory lead store that keeps insertion order
type memLeadRepo struct {
	order []string
	byID  map[string]*entity.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{byID: make(map[string]*entity.Lead)}
}

func (r *memLeadRepo) Save(_ context.Context, lead *entity.Lead) error {
	if _, ok := r.byID[lead.ID]; !ok {
		r.order = append(r.order, lead.ID)
	}
	r.byID[lead.ID] = lead.Clone()
	return nil
}

func (r *memLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	lead, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return lead.Clone(), nil
}

func (r *memLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memLeadRepo) List(_ context.Context) ([]entity.Lead, error) {
	out := make([]entity.Lead, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id].Clone())
	}
	return out, nil
}

// memSettingsRepo stores the deletion password in memory
type memSettingsRepo struct {
	password string
}

func (r *memSettingsRepo) Password(_ context.Context) (string, error) {
	return r.password, nil
}

func (r *memSettingsRepo) SetPassword(_ context.Context, password string) error {
	r.password = password
	return nil
}

// memViewRepo stores saved views in memory
type memViewRepo struct {
	views map[string]entity.SavedView
}

func newMemViewRepo() *memViewRepo {
	return &memViewRepo{views: make(map[string]entity.SavedView)}
}

func (r *memViewRepo) Save(_ context.Context, view *entity.SavedView) error {
	r.views[view.ID] = *view
	return nil
}

func (r *memViewRepo) GetByID(_ context.Context, id string) (*entity.SavedView, error) {
	view, ok := r.views[id]
	if !ok {
		return nil, nil
	}
	return &view, nil
}

func (r *memViewRepo) Delete(_ context.Context, id string) error {
	delete(r.views, id)
	return nil
}

func (r *memViewRepo) List(_ context.Context) ([]entity.SavedView, error) {
	out := make([]entity.SavedView, 0, len(r.views))
	for _, view := range r.views {
		out = append(out, view)
	}
	return out, nil
}

// fixedNow is the clock injected into services under test
var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestLeadService(repo *memLeadRepo) *LeadService {
	s := NewLeadService(repo)
	s.now = func() time.Time { return fixedNow }
	return s
}

func leadIDs(leads []entity.Lead) []string {
	out := make([]string, len(leads))
	for i := range leads {
		out[i] = leads[i].ID
	}
	return out
}
