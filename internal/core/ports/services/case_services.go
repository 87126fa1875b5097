package services

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// CaseSvcFacade is the case-management lookup this core consumes.
type CaseSvcFacade interface {
	// GetCaseByID retrieves a case by its unique identifier.
	GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error)

	// CaseExists reports whether a case exists.
	CaseExists(ctx context.Context, caseID string) (bool, error)
}
