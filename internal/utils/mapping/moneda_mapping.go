package mapping

import (
	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/internal/models"
)

// ToDomainMoneda converts a model Moneda to a domain Moneda
func ToDomainMoneda(m models.Moneda) domain.Moneda {
	return domain.Moneda{
		ID:      m.ID,
		Codigo:  m.Codigo,
		Nombre:  m.Nombre,
		Simbolo: m.Simbolo,
		Activo:  m.Activo,
	}
}

// ToDomainMonedaSlice converts a slice of model Monedas to domain Monedas
func ToDomainMonedaSlice(ms []models.Moneda) []domain.Moneda {
	ds := make([]domain.Moneda, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneda(m)
	}
	return ds
}
