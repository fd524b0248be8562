package models

// Moneda is the row shape of aa_mon_moneda.
type Moneda struct {
	ID      int    `db:"id"`
	Codigo  string `db:"codigo"`
	Nombre  string `db:"nombre"`
	Simbolo string `db:"simbolo"`
	Activo  bool   `db:"activo"`
}
