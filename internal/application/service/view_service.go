package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/query"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/utils"
)

// ViewService manages named, persisted filter presets
type ViewService struct {
	viewRepo repository.SavedViewRepository
	leadRepo repository.LeadRepository
}

// NewViewService creates a new saved-view service
func NewViewService(viewRepo repository.SavedViewRepository, leadRepo repository.LeadRepository) *ViewService {
	return &ViewService{viewRepo: viewRepo, leadRepo: leadRepo}
}

// AddView persists a new filter preset under the given name
func (s *ViewService) AddView(ctx context.Context, name string, filters entity.LeadFilter) (*entity.SavedView, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "Name", Message: "is required"},
		})
	}
	view := &entity.SavedView{
		ID:      utils.NewID(),
		Name:    strings.TrimSpace(name),
		Filters: filters,
	}
	if err := s.viewRepo.Save(ctx, view); err != nil {
		return nil, err
	}
	logger.Log.Info("saved view added", zap.String("id", view.ID), zap.String("name", view.Name))
	return view, nil
}

// DeleteView removes a filter preset
func (s *ViewService) DeleteView(ctx context.Context, id string) error {
	return s.viewRepo.Delete(ctx, id)
}

// ListViews returns every saved preset
func (s *ViewService) ListViews(ctx context.Context) ([]entity.SavedView, error) {
	return s.viewRepo.List(ctx)
}

// ResolveView runs a saved preset's filters against the current
// collection
func (s *ViewService) ResolveView(ctx context.Context, id string) ([]entity.Lead, error) {
	view, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, apperror.NewNotFoundError("Saved view")
	}
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(leads, view.Filters), nil
}
