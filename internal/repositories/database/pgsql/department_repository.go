package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const departmentColumns = `
	department_id, name, head_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

// FindDepartmentByID retrieves a department by its ID.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	return scanDepartment(r.Pool.QueryRow(ctx, query, departmentID), "find department by ID "+departmentID)
}

// FindDepartmentByName retrieves a department by name, case-insensitively.
func (r *PgxDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE LOWER(name) = LOWER($1);`
	return scanDepartment(r.Pool.QueryRow(ctx, query, name), "find department by name "+name)
}

func scanDepartment(row pgx.Row, opDesc string) (*domain.Department, error) {
	var dept domain.Department
	var headID sql.NullString

	err := row.Scan(
		&dept.DepartmentID,
		&dept.Name,
		&headID,
		&dept.CreatedAt,
		&dept.CreatedBy,
		&dept.LastUpdatedAt,
		&dept.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to "+opDesc, err)
	}
	if headID.Valid {
		dept.HeadID = &headID.String
	}
	return &dept, nil
}
