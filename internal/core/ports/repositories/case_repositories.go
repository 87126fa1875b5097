package repositories

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// CaseReader defines the case lookups this core consumes from case management.
type CaseReader interface {
	// FindCaseByID retrieves a case by its unique identifier.
	FindCaseByID(ctx context.Context, caseID string) (*domain.Case, error)

	// CaseExists reports whether a case exists without loading it.
	CaseExists(ctx context.Context, caseID string) (bool, error)
}

// CaseRepositoryFacade combines all case-related repository interfaces.
type CaseRepositoryFacade interface {
	CaseReader
}
