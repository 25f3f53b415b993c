package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

// DeletionService governs the lead lifecycle transitions between active,
// soft-deleted and permanently removed. Delete-class transitions are
// gated by the stored password; restoring is not.
type DeletionService struct {
	leadRepo repository.LeadRepository
	settings *SettingsService
}

// NewDeletionService creates a new deletion service
func NewDeletionService(leadRepo repository.LeadRepository, settings *SettingsService) *DeletionService {
	return &DeletionService{leadRepo: leadRepo, settings: settings}
}

// SoftDelete flags a lead as deleted while keeping the record. The
// operation is idempotent.
func (s *DeletionService) SoftDelete(ctx context.Context, id, password string) error {
	if err := s.settings.VerifyDeletePassword(ctx, password); err != nil {
		return err
	}
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	if lead.IsDeleted {
		return nil
	}
	lead.IsDeleted = true
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return err
	}
	logger.Log.Info("lead soft-deleted", zap.String("id", id))
	return nil
}

// Restore clears the deletion flag. Idempotent; restoring an active lead
// is a no-op.
func (s *DeletionService) Restore(ctx context.Context, id string) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	if !lead.IsDeleted {
		return nil
	}
	lead.IsDeleted = false
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return err
	}
	logger.Log.Info("lead restored", zap.String("id", id))
	return nil
}

// PermanentlyDelete removes the record from the collection entirely.
// Irreversible.
func (s *DeletionService) PermanentlyDelete(ctx context.Context, id, password string) error {
	if err := s.settings.VerifyDeletePassword(ctx, password); err != nil {
		return err
	}
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("lead permanently deleted", zap.String("id", id))
	return nil
}

// BulkDeleteResult reports what a batch delete did
type BulkDeleteResult struct {
	SoftDeleted int
	Removed     int
	Missing     int
}

// BulkDelete applies the delete transition to a batch of leads under a
// single password check. Each lead resolves independently from its own
// state at execution time: active leads are soft-deleted, already
// soft-deleted leads are permanently removed. Unknown ids are counted
// and skipped.
func (s *DeletionService) BulkDelete(ctx context.Context, ids []string, password string) (*BulkDeleteResult, error) {
	if err := s.settings.VerifyDeletePassword(ctx, password); err != nil {
		return nil, err
	}

	result := &BulkDeleteResult{}
	for _, id := range ids {
		lead, err := s.leadRepo.GetByID(ctx, id)
		if err != nil {
			return result, err
		}
		if lead == nil {
			result.Missing++
			continue
		}
		if lead.IsDeleted {
			if err := s.leadRepo.Delete(ctx, id); err != nil {
				return result, err
			}
			result.Removed++
			continue
		}
		lead.IsDeleted = true
		if err := s.leadRepo.Save(ctx, lead); err != nil {
			return result, err
		}
		result.SoftDeleted++
	}

	logger.Log.Info("bulk delete finished",
		zap.Int("softDeleted", result.SoftDeleted),
		zap.Int("removed", result.Removed),
		zap.Int("missing", result.Missing))
	return result, nil
}
