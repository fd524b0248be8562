package models

import "time"

// Usuario is the row returned by aa_sp_usuario_validar.
type Usuario struct {
	ID            int       `db:"id"`
	NombreUsuario string    `db:"nombre_usuario"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	Activo        bool      `db:"activo"`
	FechaCreacion time.Time `db:"fecha_creacion"`
}
