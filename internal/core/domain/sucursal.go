package domain

import "time"

// Sucursal represents a company branch.
type Sucursal struct {
	ID                int       `json:"id"`
	Codigo            int       `json:"codigo"` // Business key, unique among active branches
	Descripcion       string    `json:"descripcion"`
	Direccion         string    `json:"direccion"`
	Identificacion    string    `json:"identificacion"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
	MonedaID          int       `json:"monedaId"`
	MonedaNombre      *string   `json:"monedaNombre,omitempty"` // Joined on reads only
	Activo            bool      `json:"activo"`
	FechaModificacion time.Time `json:"fechaModificacion"`
}

// DeleteResult is the outcome reported by the store when removing a branch.
type DeleteResult struct {
	Success bool
	Reason  string
}
