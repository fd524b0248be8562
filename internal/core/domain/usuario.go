package domain

import "time"

// Usuario is an API user able to log in.
type Usuario struct {
	ID            int       `json:"id"`
	NombreUsuario string    `json:"nombreUsuario"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}
