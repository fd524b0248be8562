package models

import (
	"database/sql"
	"time"
)

// Sucursal is the row shape returned by the aa_sp_sucursal_* procedures.
type Sucursal struct {
	ID                int            `db:"id"`
	Codigo            int            `db:"codigo"`
	Descripcion       string         `db:"descripcion"`
	Direccion         string         `db:"direccion"`
	Identificacion    string         `db:"identificacion"`
	FechaCreacion     time.Time      `db:"fecha_creacion"`
	MonedaID          int            `db:"moneda_id"`
	MonedaNombre      sql.NullString `db:"moneda_nombre"`
	Activo            bool           `db:"activo"`
	FechaModificacion time.Time      `db:"fecha_modificacion"`
}

// SucursalDeleteResult is the row returned by aa_sp_sucursal_eliminar.
type SucursalDeleteResult struct {
	Success bool           `db:"success"`
	Mensaje sql.NullString `db:"mensaje"`
}
