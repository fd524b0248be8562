package repositories

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
)

// UsuarioReader defines read operations for user credentials
type UsuarioReader interface {
	// FindUsuarioByNombreUsuario looks a user up by exact username. Returns apperrors.ErrNotFound when absent.
	FindUsuarioByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error)
}

// UsuarioRepositoryFacade is the full user repository. Users are read-only.
type UsuarioRepositoryFacade interface {
	UsuarioReader
}
