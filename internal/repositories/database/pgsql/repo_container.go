package pgsql

import (
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the concrete pgx repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:   newPgxDocumentRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		CaseRepo:       newPgxCaseRepository(dbPool),
	}
}
