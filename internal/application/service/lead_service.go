package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/query"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/datefmt"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/utils"
)

// LeadService handles lead-related operations
type LeadService struct {
	leadRepo repository.LeadRepository
	validate *validator.Validate
	now      func() time.Time
}

var phonePattern = regexp.MustCompile(`^\+?[0-9()\- ]{7,17}$`)

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return utils.IsDigits(fl.Field().String())
	})
	return &LeadService{
		leadRepo: leadRepo,
		validate: v,
		now:      time.Now,
	}
}

// MobileNumberInput is one phone entry on a submitted lead
type MobileNumberInput struct {
	ID     string
	Number string `validate:"omitempty,phone"`
	Name   string
	IsMain bool
}

// LeadInput represents a lead form submission
type LeadInput struct {
	ID              string
	ClientName      string `validate:"required"`
	Company         string
	ConsumerNumber  string `validate:"omitempty,digits"`
	KVA             string
	ConnectionDate  string
	CompanyLocation string
	Discom          string
	MobileNumbers   []MobileNumberInput `validate:"dive"`
	UnitType        enum.UnitType
	Status          enum.LeadStatus
	MandateStatus   enum.MandateStatus
	DocumentStatus  enum.DocumentStatus
	FollowUpDate    string
	Notes           string
	FinalConclusion string
}

// validateInput runs field validation for a submission. priorFollowUp is
// the follow-up date already on record ("" for a new lead); the
// no-past-dates rule only applies when the submitted value differs, so
// editing an already overdue lead stays possible.
func (s *LeadService) validateInput(input *LeadInput, priorFollowUp string) error {
	var fieldErrors []apperror.FieldError

	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	}

	if input.ConnectionDate != "" {
		if _, ok := datefmt.Parse(input.ConnectionDate); !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "ConnectionDate",
				Message: "must be a DD-MM-YYYY or YYYY-MM-DD date",
			})
		}
	}

	if input.FollowUpDate != "" {
		due, ok := datefmt.Parse(input.FollowUpDate)
		if !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "FollowUpDate",
				Message: "must be a DD-MM-YYYY or YYYY-MM-DD date",
			})
		} else if input.FollowUpDate != priorFollowUp {
			today := datefmt.Midnight(s.now())
			if datefmt.Midnight(due).Before(today) {
				fieldErrors = append(fieldErrors, apperror.FieldError{
					Field:   "FollowUpDate",
					Message: "must not be in the past",
				})
			}
		}
	}

	if input.UnitType != "" && !input.UnitType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "UnitType",
			Message: "must be New, Existing or Other",
		})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone":
		return "must be a valid phone number"
	case "digits":
		return "must contain only digits"
	default:
		return "is invalid"
	}
}

// applyInput writes the submitted fields onto the lead. Identity,
// lifecycle flags and the activity trail are left alone; the activity
// stamp is always set to now, regardless of what the caller sent.
func (s *LeadService) applyInput(lead *entity.Lead, input *LeadInput) {
	lead.ClientName = strings.TrimSpace(input.ClientName)
	lead.Company = strings.TrimSpace(input.Company)
	lead.ConsumerNumber = strings.TrimSpace(input.ConsumerNumber)
	lead.KVA = strings.TrimSpace(input.KVA)
	lead.ConnectionDate = strings.TrimSpace(input.ConnectionDate)
	lead.CompanyLocation = strings.TrimSpace(input.CompanyLocation)
	lead.Discom = strings.TrimSpace(input.Discom)
	lead.FollowUpDate = strings.TrimSpace(input.FollowUpDate)
	lead.Notes = input.Notes
	lead.FinalConclusion = input.FinalConclusion

	lead.UnitType = input.UnitType
	if lead.UnitType == "" {
		lead.UnitType = enum.UnitTypeNew
	}
	lead.Status = enum.NormalizeLeadStatus(input.Status.String())
	lead.MandateStatus = input.MandateStatus
	lead.DocumentStatus = input.DocumentStatus

	numbers := make([]entity.MobileNumber, 0, len(input.MobileNumbers))
	for _, m := range input.MobileNumbers {
		if strings.TrimSpace(m.Number) == "" {
			continue
		}
		id := m.ID
		if id == "" {
			id = utils.NewID()
		}
		numbers = append(numbers, entity.MobileNumber{
			ID:     id,
			Number: strings.TrimSpace(m.Number),
			Name:   strings.TrimSpace(m.Name),
			IsMain: m.IsMain,
		})
	}
	lead.MobileNumbers = numbers
	lead.SyncMainNumber()

	lead.LastActivityDate = s.now()
}

// AddLead creates a lead from a form submission. When the input carries
// an id that already exists, the stored record is replaced (last write
// wins).
func (s *LeadService) AddLead(ctx context.Context, input *LeadInput) (*entity.Lead, error) {
	if err := s.validateInput(input, ""); err != nil {
		return nil, err
	}

	lead := &entity.Lead{ID: input.ID, CreatedAt: s.now()}
	if lead.ID == "" {
		lead.ID = utils.NewID()
	}
	s.applyInput(lead, input)

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}
	logger.Log.Info("lead added", zap.String("id", lead.ID), zap.String("client", lead.ClientName))
	return lead, nil
}

// ImportLead creates a lead from an imported spreadsheet row. Only the
// client name is required; dates and numbers are taken as-is so that
// historical rows survive the trip.
func (s *LeadService) ImportLead(ctx context.Context, input *LeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, apperror.NewBadInputError("imported row has no client name")
	}

	lead := &entity.Lead{ID: input.ID, CreatedAt: s.now()}
	if lead.ID == "" {
		lead.ID = utils.NewID()
	}
	s.applyInput(lead, input)

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// UpdateLead replaces the stored record sharing the submitted id. The id,
// creation stamp, lifecycle flags and activity trail are preserved.
func (s *LeadService) UpdateLead(ctx context.Context, input *LeadInput) (*entity.Lead, error) {
	if input.ID == "" {
		return nil, apperror.NewBadInputError("lead id is required")
	}
	lead, err := s.leadRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if err := s.validateInput(input, lead.FollowUpDate); err != nil {
		return nil, err
	}

	s.applyInput(lead, input)

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}
	logger.Log.Info("lead updated", zap.String("id", lead.ID))
	return lead, nil
}

// GetLead retrieves a lead by id
func (s *LeadService) GetLead(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads returns the full collection, soft-deleted records included
func (s *LeadService) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	return s.leadRepo.List(ctx)
}

// FilteredLeads returns the collection narrowed by the given criteria
func (s *LeadService) FilteredLeads(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(leads, filter), nil
}

// MarkDone flags a lead as completed. There is no way back; done leads
// simply drop out of the working views.
func (s *LeadService) MarkDone(ctx context.Context, id string) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	if lead.IsDone {
		return nil
	}
	lead.IsDone = true
	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return err
	}
	logger.Log.Info("lead marked done", zap.String("id", id))
	return nil
}

// AppendActivity adds an entry to the lead's audit trail and refreshes
// the activity stamp. The trail is append-only.
func (s *LeadService) AppendActivity(ctx context.Context, leadID, description string) (*entity.Activity, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperror.NewBadInputError("activity description is required")
	}
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	activity := entity.Activity{
		ID:          utils.NewID(),
		LeadID:      leadID,
		Description: description,
		Timestamp:   s.now(),
	}
	lead.Activities = append(lead.Activities, activity)
	lead.LastActivityDate = activity.Timestamp

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}
	return &activity, nil
}
