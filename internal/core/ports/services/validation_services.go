package services

import (
	"context"
	"time"
)

// ValidationSvc exposes the business-rule checks that need stored data or the current date.
// A false result is a rule failure, never an error; errors are reserved for store failures.
type ValidationSvc interface {
	// DateNotPast reports whether date, ignoring time of day, is today or later.
	DateNotPast(ctx context.Context, date time.Time) bool

	// CodeIsUnique reports whether no active branch other than excludeID uses codigo.
	CodeIsUnique(ctx context.Context, codigo int, excludeID *int) (bool, error)

	// CurrencyExists reports whether an active currency with monedaID exists.
	CurrencyExists(ctx context.Context, monedaID int) (bool, error)
}
