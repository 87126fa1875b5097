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

type departmentService struct {
	BaseService
	deptRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates the department directory service.
func NewDepartmentService(deptRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{deptRepo: deptRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	dept, err := s.deptRepo.FindDepartmentByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find department by name", slog.String("name", name))
		}
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	dept, err := s.deptRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find department", slog.String("department_id", departmentID))
		}
		return nil, err
	}
	return dept, nil
}
