package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx used by repositories.
// *pgxpool.Pool, *pgxpool.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type connCtxKey struct{}

// WithConn returns a context carrying a request-scoped connection.
func WithConn(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, connCtxKey{}, q)
}

// ConnFromContext returns the request-scoped connection stored in ctx, if any.
func ConnFromContext(ctx context.Context) (Querier, bool) {
	q, ok := ctx.Value(connCtxKey{}).(Querier)
	return q, ok && q != nil
}

// QuerierFor returns the request-scoped connection when one is present, otherwise fallback.
func QuerierFor(ctx context.Context, fallback Querier) Querier {
	if q, ok := ConnFromContext(ctx); ok {
		return q
	}
	return fallback
}
