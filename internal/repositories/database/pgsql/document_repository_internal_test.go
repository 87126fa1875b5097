package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
)

func TestBuildSearchWhere_Empty(t *testing.T) {
	where, args := buildSearchWhere(portsrepo.SearchCriteria{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildSearchWhere_SinglePredicate(t *testing.T) {
	status := domain.StatusSubmitted
	where, args := buildSearchWhere(portsrepo.SearchCriteria{Status: &status})

	assert.Equal(t, " WHERE status = $1", where)
	assert.Equal(t, []any{status}, args)
}

func TestBuildSearchWhere_KeywordIsLoweredAndWrapped(t *testing.T) {
	keyword := "Quarterly REPORT"
	where, args := buildSearchWhere(portsrepo.SearchCriteria{TitleKeyword: &keyword})

	assert.Equal(t, " WHERE LOWER(title) LIKE $1", where)
	assert.Equal(t, []any{"%quarterly report%"}, args)
}

func TestBuildSearchWhere_AllPredicatesANDedInOrder(t *testing.T) {
	status := domain.StatusApproved
	docType := domain.TypeAuditReport
	caseID := "case-1"
	keyword := "audit"
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	where, args := buildSearchWhere(portsrepo.SearchCriteria{
		Status:         &status,
		Type:           &docType,
		CaseID:         &caseID,
		TitleKeyword:   &keyword,
		UploadedAfter:  &after,
		UploadedBefore: &before,
	})

	assert.Equal(t,
		" WHERE status = $1 AND doc_type = $2 AND case_id = $3 AND LOWER(title) LIKE $4 AND uploaded_at >= $5 AND uploaded_at <= $6",
		where)
	assert.Len(t, args, 6)
	assert.Equal(t, status, args[0])
	assert.Equal(t, "%audit%", args[3])
}
