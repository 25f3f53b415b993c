package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
)

func validInput() *LeadInput {
	return &LeadInput{
		ClientName:     gofakeit.Name(),
		Company:        gofakeit.Company(),
		ConsumerNumber: "1002003004",
		KVA:            "150",
		FollowUpDate:   "15-03-2025",
		MobileNumbers: []MobileNumberInput{
			{Number: "9876543210", IsMain: true},
		},
	}
}

func TestAddLeadStampsDefaults(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	lead, err := svc.AddLead(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, fixedNow, lead.CreatedAt)
	assert.Equal(t, fixedNow, lead.LastActivityDate)
	assert.Equal(t, enum.UnitTypeNew, lead.UnitType)
	assert.Equal(t, enum.StatusNew, lead.Status)

	stored, err := repo.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, lead.ClientName, stored.ClientName)
}

func TestAddLeadRequiresClientName(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.ClientName = ""
	_, err := svc.AddLead(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "ClientName", appErr.Errors[0].Field)
}

func TestAddLeadRejectsBadPhoneAndConsumerNumber(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.ConsumerNumber = "12AB34"
	input.MobileNumbers = []MobileNumberInput{{Number: "not a phone!", IsMain: true}}
	_, err := svc.AddLead(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Len(t, appErr.Errors, 2)
}

func TestAddLeadRejectsPastFollowUp(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.FollowUpDate = "01-03-2025"
	_, err := svc.AddLead(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAddLeadAcceptsTodayFollowUp(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.FollowUpDate = "10-03-2025"
	_, err := svc.AddLead(context.Background(), input)
	assert.NoError(t, err)
}

func TestAddLeadNormalizesLegacyStatus(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.Status = enum.LeadStatus("Contacted")
	lead, err := svc.AddLead(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusFollowUp, lead.Status)
}

func TestAddLeadWithExistingIDReplaces(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	first := validInput()
	first.ID = "fixed-id"
	_, err := svc.AddLead(context.Background(), first)
	require.NoError(t, err)

	second := validInput()
	second.ID = "fixed-id"
	second.ClientName = "Replacement"
	_, err = svc.AddLead(context.Background(), second)
	require.NoError(t, err)

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Replacement", leads[0].ClientName)
}

func TestUpdateLeadPreservesIdentityAndLifecycle(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	lead, err := svc.AddLead(context.Background(), validInput())
	require.NoError(t, err)
	_, err = svc.AppendActivity(context.Background(), lead.ID, "first call")
	require.NoError(t, err)

	input := validInput()
	input.ID = lead.ID
	input.ClientName = "Renamed Client"
	updated, err := svc.UpdateLead(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, lead.ID, updated.ID)
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Renamed Client", updated.ClientName)
	assert.Len(t, updated.Activities, 1, "activity trail survives the update")
	assert.False(t, updated.IsDone)
	assert.False(t, updated.IsDeleted)
}

func TestUpdateLeadUnknownID(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	input := validInput()
	input.ID = "missing"
	_, err := svc.UpdateLead(context.Background(), input)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateLeadKeepsOverdueFollowUpEditable(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	// seed a lead that is already overdue
	seeded := &entity.Lead{ID: "l1", ClientName: "Stale", FollowUpDate: "01-03-2025", CreatedAt: fixedNow}
	require.NoError(t, repo.Save(context.Background(), seeded))

	// resubmitting the same past date passes
	input := validInput()
	input.ID = "l1"
	input.FollowUpDate = "01-03-2025"
	_, err := svc.UpdateLead(context.Background(), input)
	assert.NoError(t, err)

	// moving to a different past date does not
	input.FollowUpDate = "02-03-2025"
	_, err = svc.UpdateLead(context.Background(), input)
	assert.True(t, apperror.IsValidation(err))
}

func TestImportLeadIsLenient(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	// past dates and loosely formatted numbers pass through on import
	lead, err := svc.ImportLead(context.Background(), &LeadInput{
		ClientName:   "Historic",
		FollowUpDate: "01-01-2020",
		MobileNumbers: []MobileNumberInput{
			{Number: "98765-43210", IsMain: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "01-01-2020", lead.FollowUpDate)
	assert.Equal(t, "98765-43210", lead.MainNumber().Number)
}

func TestImportLeadRequiresClientName(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())

	_, err := svc.ImportLead(context.Background(), &LeadInput{Company: "No Name Ltd"})
	assert.True(t, apperror.IsCode(err, apperror.CodeBadInput))
}

func TestMarkDoneIsOneWayAndIdempotent(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	lead, err := svc.AddLead(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.MarkDone(context.Background(), lead.ID))
	require.NoError(t, svc.MarkDone(context.Background(), lead.ID))

	stored, err := svc.GetLead(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDone)
}

func TestMarkDoneUnknownID(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())
	assert.True(t, apperror.IsNotFound(svc.MarkDone(context.Background(), "missing")))
}

func TestAppendActivity(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	lead, err := svc.AddLead(context.Background(), validInput())
	require.NoError(t, err)

	activity, err := svc.AppendActivity(context.Background(), lead.ID, "sent the quotation")
	require.NoError(t, err)
	assert.Equal(t, lead.ID, activity.LeadID)
	assert.Equal(t, fixedNow, activity.Timestamp)

	stored, err := svc.GetLead(context.Background(), lead.ID)
	require.NoError(t, err)
	require.Len(t, stored.Activities, 1)
	assert.Equal(t, "sent the quotation", stored.Activities[0].Description)
	assert.Equal(t, fixedNow, stored.LastActivityDate)
}

func TestAppendActivityRequiresDescription(t *testing.T) {
	svc := newTestLeadService(newMemLeadRepo())
	_, err := svc.AppendActivity(context.Background(), "any", "   ")
	assert.True(t, apperror.IsCode(err, apperror.CodeBadInput))
}

func TestFilteredLeadsExcludesDeleted(t *testing.T) {
	repo := newMemLeadRepo()
	svc := newTestLeadService(repo)

	active, err := svc.AddLead(context.Background(), validInput())
	require.NoError(t, err)

	gone := &entity.Lead{ID: "gone", ClientName: "Gone", IsDeleted: true, CreatedAt: fixedNow}
	require.NoError(t, repo.Save(context.Background(), gone))

	leads, err := svc.FilteredLeads(context.Background(), entity.LeadFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{active.ID}, leadIDs(leads))

	all, err := svc.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2, "the raw listing keeps soft-deleted records")
}
