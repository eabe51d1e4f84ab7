package pgsql

import (
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL draft store with the given ERP backend.
func NewRepositoryProvider(dbPool *pgxpool.Pool, backend portsrepo.ERPBackendFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DraftRepo: newPgxDraftRepository(dbPool),
		Backend:   backend,
	}
}
