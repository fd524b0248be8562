package domain

// Moneda represents a currency a branch can operate in. It is read-only for this service.
type Moneda struct {
	ID      int    `json:"id"`
	Codigo  string `json:"codigo"`  // e.g. "COP"
	Nombre  string `json:"nombre"`  // e.g. "Peso colombiano"
	Simbolo string `json:"simbolo"` // e.g. "$"
	Activo  bool   `json:"activo"`
}
