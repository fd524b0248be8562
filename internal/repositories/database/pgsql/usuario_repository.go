package pgsql

import (
	"context"
	"fmt"

	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	"github.com/quala/sucursales_api/internal/models"
	"github.com/quala/sucursales_api/internal/utils/mapping"
	"github.com/quala/sucursales_api/pkg/database"
)

const spUsuarioValidar = "aa_sp_usuario_validar"

type PgxUsuarioRepository struct {
	BaseRepository
}

func newPgxUsuarioRepository(db database.Querier) portsrepo.UsuarioRepositoryFacade {
	return &PgxUsuarioRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.UsuarioRepositoryFacade = (*PgxUsuarioRepository)(nil)

// FindUsuarioByNombreUsuario looks a user up by exact username, active or not.
func (r *PgxUsuarioRepository) FindUsuarioByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error) {
	row, err := r.callProcedureRow(ctx, spUsuarioValidar, nombreUsuario)
	if err != nil {
		return nil, err
	}

	var u models.Usuario
	if err := row.Scan(&u.ID, &u.NombreUsuario, &u.Email, &u.PasswordHash, &u.Activo, &u.FechaCreacion); err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find usuario %q", nombreUsuario))
	}

	usuario := mapping.ToDomainUsuario(u)
	return &usuario, nil
}
