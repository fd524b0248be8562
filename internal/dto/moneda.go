package dto

import "github.com/quala/sucursales_api/internal/core/domain"

// MonedaResponse defines the data returned for a currency.
type MonedaResponse struct {
	ID      int    `json:"id"`
	Codigo  string `json:"codigo"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
	Activo  bool   `json:"activo"`
}

// ToMonedaResponse converts a domain.Moneda to MonedaResponse DTO
func ToMonedaResponse(m *domain.Moneda) MonedaResponse {
	return MonedaResponse{
		ID:      m.ID,
		Codigo:  m.Codigo,
		Nombre:  m.Nombre,
		Simbolo: m.Simbolo,
		Activo:  m.Activo,
	}
}

// ToListMonedaResponse converts a slice of domain.Moneda to MonedaResponse DTOs
func ToListMonedaResponse(monedas []domain.Moneda) []MonedaResponse {
	res := make([]MonedaResponse, len(monedas))
	for i := range monedas {
		res[i] = ToMonedaResponse(&monedas[i])
	}
	return res
}
