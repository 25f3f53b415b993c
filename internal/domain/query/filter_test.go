package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
)

func ids(leads []entity.Lead) []string {
	out := make([]string, len(leads))
	for i := range leads {
		out[i] = leads[i].ID
	}
	return out
}

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID:         "l1",
			ClientName: "Ramesh Patel",
			Company:    "ACME Corp",
			Status:     enum.StatusNew,
			MobileNumbers: []entity.MobileNumber{
				{ID: "m1", Number: "98765-43210", IsMain: true},
			},
			FollowUpDate: "10-03-2025",
		},
		{
			ID:           "l2",
			ClientName:   "Suresh Shah",
			Company:      "Globex",
			Status:       enum.StatusFollowUp,
			FollowUpDate: "2025-03-15",
		},
		{
			ID:           "l3",
			ClientName:   "Mahesh Desai",
			Company:      "Initech",
			Status:       enum.StatusDealClose,
			FollowUpDate: "20-03-2025",
			IsDeleted:    true,
		},
	}
}

func TestApplyEmptyFilterExcludesDeleted(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{})
	assert.Equal(t, []string{"l1", "l2"}, ids(got))
}

func TestApplyIncludeDeleted(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{IncludeDeleted: true})
	assert.Equal(t, []string{"l1", "l2", "l3"}, ids(got))
}

func TestApplyStatusSet(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{
		Statuses: []enum.LeadStatus{enum.StatusFollowUp, enum.StatusDealClose},
	})
	assert.Equal(t, []string{"l2"}, ids(got), "deleted leads stay out even when their status matches")
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{SearchTerm: "acme"})
	assert.Equal(t, []string{"l1"}, ids(got))
}

func TestApplyDigitSearchIgnoresPhoneFormatting(t *testing.T) {
	// the stored number carries a dash; a bare digit term still hits it
	got := Apply(sampleLeads(), entity.LeadFilter{SearchTerm: "9876543210"})
	require.Equal(t, []string{"l1"}, ids(got))

	got = Apply(sampleLeads(), entity.LeadFilter{SearchTerm: "65432"})
	assert.Equal(t, []string{"l1"}, ids(got))
}

func TestApplyDigitSearchStillMatchesTextFields(t *testing.T) {
	leads := []entity.Lead{
		{ID: "l1", ClientName: "Plot 42", ConsumerNumber: "777"},
	}
	got := Apply(leads, entity.LeadFilter{SearchTerm: "42"})
	assert.Equal(t, []string{"l1"}, ids(got))
}

func TestApplySearchCoversNotesAndStatus(t *testing.T) {
	leads := []entity.Lead{
		{ID: "l1", ClientName: "A", Notes: "asked for a revised quotation", Status: enum.StatusNew},
		{ID: "l2", ClientName: "B", Status: enum.StatusMandateSent},
	}
	assert.Equal(t, []string{"l1"}, ids(Apply(leads, entity.LeadFilter{SearchTerm: "revised"})))
	assert.Equal(t, []string{"l2"}, ids(Apply(leads, entity.LeadFilter{SearchTerm: "mandate"})))
}

func TestApplyDateRangeMixedShapes(t *testing.T) {
	// start is day-first, stored values are a mix of both shapes
	got := Apply(sampleLeads(), entity.LeadFilter{
		FollowUpDateStart: "12-03-2025",
		IncludeDeleted:    true,
	})
	assert.Equal(t, []string{"l2", "l3"}, ids(got))

	got = Apply(sampleLeads(), entity.LeadFilter{
		FollowUpDateStart: "2025-03-12",
		FollowUpDateEnd:   "2025-03-16",
	})
	assert.Equal(t, []string{"l2"}, ids(got))
}

func TestApplyDateRangeIsInclusive(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{
		FollowUpDateStart: "10-03-2025",
		FollowUpDateEnd:   "15-03-2025",
	})
	assert.Equal(t, []string{"l1", "l2"}, ids(got))
}

func TestApplyCombinesCriteriaWithAnd(t *testing.T) {
	got := Apply(sampleLeads(), entity.LeadFilter{
		Statuses:   []enum.LeadStatus{enum.StatusNew, enum.StatusFollowUp},
		SearchTerm: "globex",
	})
	assert.Equal(t, []string{"l2"}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	leads := sampleLeads()
	_ = Apply(leads, entity.LeadFilter{SearchTerm: "acme"})
	assert.Equal(t, "l1", leads[0].ID)
	assert.Len(t, leads, 3)
}
