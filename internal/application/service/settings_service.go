package service

import (
	"context"
	"strings"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

// SettingsService manages the deletion-gate password. The password is a
// plain-text confirmation gate for destructive actions; it is not a
// security boundary and there is no lockout or retry limit.
type SettingsService struct {
	settingsRepo    repository.SettingsRepository
	defaultPassword string
}

// NewSettingsService creates a new settings service. defaultPassword
// applies until a password has been stored.
func NewSettingsService(settingsRepo repository.SettingsRepository, defaultPassword string) *SettingsService {
	return &SettingsService{
		settingsRepo:    settingsRepo,
		defaultPassword: defaultPassword,
	}
}

// deletePassword returns the effective gate password
func (s *SettingsService) deletePassword(ctx context.Context) (string, error) {
	stored, err := s.settingsRepo.Password(ctx)
	if err != nil {
		return "", err
	}
	if stored == "" {
		return s.defaultPassword, nil
	}
	return stored, nil
}

// VerifyDeletePassword checks a supplied password against the stored one
func (s *SettingsService) VerifyDeletePassword(ctx context.Context, supplied string) error {
	current, err := s.deletePassword(ctx)
	if err != nil {
		return err
	}
	if supplied != current {
		return apperror.ErrPasswordMismatch
	}
	return nil
}

// ChangeDeletePassword replaces the gate password. Knowing the current
// password is required.
func (s *SettingsService) ChangeDeletePassword(ctx context.Context, current, next string) error {
	if err := s.VerifyDeletePassword(ctx, current); err != nil {
		return err
	}
	if strings.TrimSpace(next) == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "Password", Message: "is required"},
		})
	}
	if err := s.settingsRepo.SetPassword(ctx, next); err != nil {
		return err
	}
	logger.Log.Info("deletion password changed")
	return nil
}
