package mapping

import (
	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/internal/models"
)

// ToDomainSucursal converts a model Sucursal to a domain Sucursal
func ToDomainSucursal(m models.Sucursal) domain.Sucursal {
	d := domain.Sucursal{
		ID:                m.ID,
		Codigo:            m.Codigo,
		Descripcion:       m.Descripcion,
		Direccion:         m.Direccion,
		Identificacion:    m.Identificacion,
		FechaCreacion:     m.FechaCreacion,
		MonedaID:          m.MonedaID,
		Activo:            m.Activo,
		FechaModificacion: m.FechaModificacion,
	}
	if m.MonedaNombre.Valid {
		nombre := m.MonedaNombre.String
		d.MonedaNombre = &nombre
	}
	return d
}

// ToDomainSucursalSlice converts a slice of model Sucursales to domain Sucursales
func ToDomainSucursalSlice(ms []models.Sucursal) []domain.Sucursal {
	ds := make([]domain.Sucursal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSucursal(m)
	}
	return ds
}

// ToDomainDeleteResult converts the delete procedure row into a typed result.
func ToDomainDeleteResult(m models.SucursalDeleteResult) domain.DeleteResult {
	return domain.DeleteResult{
		Success: m.Success,
		Reason:  m.Mensaje.String,
	}
}
