package repositories

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// DepartmentReader defines read operations for the department directory.
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// FindDepartmentByName retrieves a department by name, case-insensitively.
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)
}

// DepartmentRepositoryFacade combines all department-related repository interfaces.
type DepartmentRepositoryFacade interface {
	DepartmentReader
}
