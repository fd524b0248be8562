package pgsql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/pkg/database"
)

// uniqueViolation is the SQLSTATE raised by unique indexes.
const uniqueViolation = "23505"

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB database.Querier
}

// querier returns the request-scoped connection when the middleware stored one, the pool otherwise.
func (r *BaseRepository) querier(ctx context.Context) database.Querier {
	return database.QuerierFor(ctx, r.DB)
}

// callProcedure runs a set-returning procedure and returns its rows.
func (r *BaseRepository) callProcedure(ctx context.Context, name string, args ...any) (pgx.Rows, error) {
	query, err := database.ProcedureQuery(name, len(args))
	if err != nil {
		return nil, err
	}
	return r.querier(ctx).Query(ctx, query, args...)
}

// callProcedureRow runs a procedure expected to return a single row.
func (r *BaseRepository) callProcedureRow(ctx context.Context, name string, args ...any) (pgx.Row, error) {
	query, err := database.ProcedureQuery(name, len(args))
	if err != nil {
		return nil, err
	}
	return r.querier(ctx).QueryRow(ctx, query, args...), nil
}

// translateError maps driver errors onto the apperrors taxonomy.
func translateError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		}
		return apperrors.NewStoreError(pgErr.Message, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
