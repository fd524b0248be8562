package database

import (
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
)

var procedureName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ProcedureQuery builds the statement that calls the set-returning function name
// with argc positional parameters, e.g. SELECT * FROM aa_sp_x($1, $2).
func ProcedureQuery(name string, argc int) (string, error) {
	if !procedureName.MatchString(name) {
		return "", fmt.Errorf("invalid procedure name %q", name)
	}
	return sq.Dollar.ReplacePlaceholders(fmt.Sprintf("SELECT * FROM %s(%s)", name, sq.Placeholders(argc)))
}
