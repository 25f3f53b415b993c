package repository

import (
	"context"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
)

// LeadRepository defines the interface for lead persistence
type LeadRepository interface {
	// Save inserts the lead or replaces the record sharing its id
	Save(ctx context.Context, lead *entity.Lead) error
	// GetByID returns nil when no lead carries the id
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	// Delete removes the record entirely; no error when absent
	Delete(ctx context.Context, id string) error
	// List returns the full collection, soft-deleted records included,
	// in insertion order
	List(ctx context.Context) ([]entity.Lead, error)
}

// SavedViewRepository defines the interface for saved filter presets
type SavedViewRepository interface {
	Save(ctx context.Context, view *entity.SavedView) error
	GetByID(ctx context.Context, id string) (*entity.SavedView, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.SavedView, error)
}

// SettingsRepository holds the key-value settings, currently just the
// deletion-gate password
type SettingsRepository interface {
	// Password returns the stored deletion password, or "" when unset
	Password(ctx context.Context) (string, error)
	SetPassword(ctx context.Context, password string) error
}
