package dto

import (
	"time"

	"github.com/quala/sucursales_api/internal/core/domain"
)

// CreateSucursalRequest defines the data needed to create a new branch.
// Tags use the "validate" key so gin binding only decodes and the
// validation package reports every violation at once.
type CreateSucursalRequest struct {
	Codigo         int    `json:"codigo" validate:"required,gt=0" example:"100"`
	Descripcion    string `json:"descripcion" validate:"required,notblank,max=250" example:"Sucursal principal"`
	Direccion      string `json:"direccion" validate:"required,notblank,max=250" example:"Calle 1 # 2-3"`
	Identificacion string `json:"identificacion" validate:"required,notblank,max=50" example:"900123456"`
	FechaCreacion  Date   `json:"fechaCreacion" validate:"required,notpast" swaggertype:"string" example:"2026-10-15"`
	MonedaID       int    `json:"monedaId" validate:"required,gt=0" example:"1"`
}

// UpdateSucursalRequest defines the data accepted when replacing a branch.
type UpdateSucursalRequest struct {
	ID             int    `json:"id" validate:"required,gt=0" example:"1"`
	Codigo         int    `json:"codigo" validate:"required,gt=0" example:"100"`
	Descripcion    string `json:"descripcion" validate:"required,notblank,max=250"`
	Direccion      string `json:"direccion" validate:"required,notblank,max=250"`
	Identificacion string `json:"identificacion" validate:"required,notblank,max=50"`
	MonedaID       int    `json:"monedaId" validate:"required,gt=0" example:"1"`
}

// SucursalResponse defines the data returned for a branch.
type SucursalResponse struct {
	ID                int       `json:"id"`
	Codigo            int       `json:"codigo"`
	Descripcion       string    `json:"descripcion"`
	Direccion         string    `json:"direccion"`
	Identificacion    string    `json:"identificacion"`
	FechaCreacion     Date      `json:"fechaCreacion" swaggertype:"string"`
	MonedaID          int       `json:"monedaId"`
	MonedaNombre      *string   `json:"monedaNombre,omitempty"`
	Activo            bool      `json:"activo"`
	FechaModificacion time.Time `json:"fechaModificacion"`
}

// ToSucursalResponse converts a domain.Sucursal to SucursalResponse DTO
func ToSucursalResponse(s *domain.Sucursal) SucursalResponse {
	return SucursalResponse{
		ID:                s.ID,
		Codigo:            s.Codigo,
		Descripcion:       s.Descripcion,
		Direccion:         s.Direccion,
		Identificacion:    s.Identificacion,
		FechaCreacion:     NewDate(s.FechaCreacion),
		MonedaID:          s.MonedaID,
		MonedaNombre:      s.MonedaNombre,
		Activo:            s.Activo,
		FechaModificacion: s.FechaModificacion,
	}
}

// ToListSucursalResponse converts a slice of domain.Sucursal to SucursalResponse DTOs
func ToListSucursalResponse(sucursales []domain.Sucursal) []SucursalResponse {
	res := make([]SucursalResponse, len(sucursales))
	for i := range sucursales {
		res[i] = ToSucursalResponse(&sucursales[i])
	}
	return res
}
