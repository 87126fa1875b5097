package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

func TestCanTransitionTo(t *testing.T) {
	allStatuses := []domain.DocumentStatus{
		domain.StatusDraft,
		domain.StatusSubmitted,
		domain.StatusUnderReview,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusWithdrawn,
	}

	allowed := map[domain.DocumentStatus][]domain.DocumentStatus{
		domain.StatusDraft:       {domain.StatusSubmitted, domain.StatusWithdrawn},
		domain.StatusSubmitted:   {domain.StatusUnderReview, domain.StatusWithdrawn},
		domain.StatusUnderReview: {domain.StatusApproved, domain.StatusRejected},
		domain.StatusApproved:    {},
		domain.StatusRejected:    {domain.StatusDraft, domain.StatusWithdrawn},
		domain.StatusWithdrawn:   {},
	}

	for from, targets := range allowed {
		permitted := map[domain.DocumentStatus]bool{}
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range allStatuses {
			got := from.CanTransitionTo(to)
			assert.Equal(t, permitted[to], got, "transition %s -> %s", from, to)
		}
	}
}

func TestCanTransitionTo_SelfLoopsDenied(t *testing.T) {
	for _, s := range []domain.DocumentStatus{
		domain.StatusDraft,
		domain.StatusSubmitted,
		domain.StatusUnderReview,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusWithdrawn,
	} {
		assert.False(t, s.CanTransitionTo(s), "self transition %s", s)
	}
}

func TestCanTransitionTo_UnknownStatus(t *testing.T) {
	unknown := domain.DocumentStatus("ARCHIVED")
	assert.False(t, unknown.CanTransitionTo(domain.StatusDraft))
	assert.False(t, domain.StatusDraft.CanTransitionTo(unknown))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, domain.StatusApproved.IsTerminal())
	assert.True(t, domain.StatusWithdrawn.IsTerminal())
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.False(t, domain.StatusSubmitted.IsTerminal())
	assert.False(t, domain.StatusUnderReview.IsTerminal())
	assert.False(t, domain.StatusRejected.IsTerminal())
}

func TestDocumentStatusIsValid(t *testing.T) {
	assert.True(t, domain.StatusDraft.IsValid())
	assert.True(t, domain.StatusWithdrawn.IsValid())
	assert.False(t, domain.DocumentStatus("").IsValid())
	assert.False(t, domain.DocumentStatus("draft").IsValid())
}

func TestDocumentTypeIsValid(t *testing.T) {
	valid := []domain.DocumentType{
		domain.TypeFinancialReport,
		domain.TypeProcurementBid,
		domain.TypeLegalDocument,
		domain.TypeAuditReport,
		domain.TypeInvestmentReport,
		domain.TypeGeneral,
	}
	for _, dt := range valid {
		assert.True(t, dt.IsValid(), "type %s", dt)
	}
	assert.False(t, domain.DocumentType("MEMO").IsValid())
	assert.False(t, domain.DocumentType("").IsValid())
}
