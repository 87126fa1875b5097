package services

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// DepartmentSvcFacade is the department directory consumed at routing time.
type DepartmentSvcFacade interface {
	// GetDepartmentByName resolves a department case-insensitively by name.
	GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// GetDepartmentByID retrieves a department by its unique identifier.
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
}
