package mapping

import (
	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/internal/models"
)

// ToDomainUsuario converts a model Usuario to a domain Usuario
func ToDomainUsuario(m models.Usuario) domain.Usuario {
	return domain.Usuario{
		ID:            m.ID,
		NombreUsuario: m.NombreUsuario,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Activo:        m.Activo,
		FechaCreacion: m.FechaCreacion,
	}
}
