package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
)

type caseService struct {
	BaseService
	caseRepo portsrepo.CaseRepositoryFacade
}

// NewCaseService creates the case lookup service.
func NewCaseService(caseRepo portsrepo.CaseRepositoryFacade) portssvc.CaseSvcFacade {
	return &caseService{caseRepo: caseRepo}
}

var _ portssvc.CaseSvcFacade = (*caseService)(nil)

func (s *caseService) GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	caseEntity, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find case", slog.String("case_id", caseID))
		}
		return nil, err
	}
	return caseEntity, nil
}

func (s *caseService) CaseExists(ctx context.Context, caseID string) (bool, error) {
	return s.caseRepo.CaseExists(ctx, caseID)
}
