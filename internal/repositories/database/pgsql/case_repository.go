package pgsql

import (
	"context"
	"errors"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCaseRepository struct {
	BaseRepository
}

func newPgxCaseRepository(pool *pgxpool.Pool) portsrepo.CaseRepositoryFacade {
	return &PgxCaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CaseRepositoryFacade = (*PgxCaseRepository)(nil)

// FindCaseByID retrieves a case by its ID.
func (r *PgxCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	query := `
		SELECT case_id, title, created_at, created_by, last_updated_at, last_updated_by
		FROM cases WHERE case_id = $1;
	`
	var c domain.Case
	err := r.Pool.QueryRow(ctx, query, caseID).Scan(
		&c.CaseID,
		&c.Title,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find case by ID "+caseID, err)
	}
	return &c, nil
}

// CaseExists reports whether a case row exists.
func (r *PgxCaseRepository) CaseExists(ctx context.Context, caseID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cases WHERE case_id = $1);`, caseID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check case existence "+caseID, err)
	}
	return exists, nil
}
