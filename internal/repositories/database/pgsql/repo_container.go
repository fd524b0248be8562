package pgsql

import (
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	"github.com/quala/sucursales_api/pkg/database"
)

// NewRepositoryProvider wires every repository to db. Repositories prefer the
// request-scoped connection placed in the context by the DB scope middleware.
func NewRepositoryProvider(db database.Querier) portsrepo.RepositoryProvider {
	sucursalRepo := newPgxSucursalRepository(db)
	monedaRepo := newPgxMonedaRepository(db)
	usuarioRepo := newPgxUsuarioRepository(db)

	return portsrepo.RepositoryProvider{
		SucursalRepo: sucursalRepo,
		MonedaRepo:   monedaRepo,
		UsuarioRepo:  usuarioRepo,
	}
}
