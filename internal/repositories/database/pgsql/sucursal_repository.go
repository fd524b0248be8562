package pgsql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	"github.com/quala/sucursales_api/internal/models"
	"github.com/quala/sucursales_api/internal/utils/mapping"
	"github.com/quala/sucursales_api/pkg/database"
)

const (
	spSucursalObtenerTodas = "aa_sp_sucursal_obtener_todas"
	spSucursalObtenerPorID = "aa_sp_sucursal_obtener_por_id"
	spSucursalCrear        = "aa_sp_sucursal_crear"
	spSucursalActualizar   = "aa_sp_sucursal_actualizar"
	spSucursalEliminar     = "aa_sp_sucursal_eliminar"
	sucursalTable          = "aa_suc_sucursal"
)

type PgxSucursalRepository struct {
	BaseRepository
}

// newPgxSucursalRepository creates a new repository for branch data.
func newPgxSucursalRepository(db database.Querier) portsrepo.SucursalRepositoryFacade {
	return &PgxSucursalRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SucursalRepositoryFacade = (*PgxSucursalRepository)(nil)

// scanSucursal reads the column order shared by every aa_sp_sucursal_* procedure.
func scanSucursal(row pgx.Row) (models.Sucursal, error) {
	var s models.Sucursal
	err := row.Scan(
		&s.ID,
		&s.Codigo,
		&s.Descripcion,
		&s.Direccion,
		&s.Identificacion,
		&s.FechaCreacion,
		&s.MonedaID,
		&s.MonedaNombre,
		&s.Activo,
		&s.FechaModificacion,
	)
	return s, err
}

// FindSucursales retrieves every active branch.
func (r *PgxSucursalRepository) FindSucursales(ctx context.Context) ([]domain.Sucursal, error) {
	rows, err := r.callProcedure(ctx, spSucursalObtenerTodas)
	if err != nil {
		return nil, translateError(err, "failed to query sucursales")
	}
	defer rows.Close()

	modelSucursales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sucursal, error) {
		return scanSucursal(row)
	})
	if err != nil {
		return nil, translateError(err, "failed to scan sucursales")
	}

	return mapping.ToDomainSucursalSlice(modelSucursales), nil
}

// FindSucursalByID retrieves an active branch by its ID.
func (r *PgxSucursalRepository) FindSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error) {
	row, err := r.callProcedureRow(ctx, spSucursalObtenerPorID, id)
	if err != nil {
		return nil, err
	}

	modelSucursal, err := scanSucursal(row)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find sucursal %d", id))
	}

	sucursal := mapping.ToDomainSucursal(modelSucursal)
	return &sucursal, nil
}

// ExistsCodigo reports whether an active branch other than excludeID already uses codigo.
func (r *PgxSucursalRepository) ExistsCodigo(ctx context.Context, codigo int, excludeID *int) (bool, error) {
	builder := psql.Select("COUNT(1)").
		From(sucursalTable).
		Where(sq.Eq{"codigo": codigo}).
		Where(sq.Eq{"activo": true})
	if excludeID != nil {
		builder = builder.Where(sq.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build codigo lookup: %w", err)
	}

	var count int
	if err := r.querier(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, translateError(err, fmt.Sprintf("failed to check codigo %d", codigo))
	}
	return count > 0, nil
}

// CreateSucursal persists a new branch. The store assigns the ID and audit timestamps.
func (r *PgxSucursalRepository) CreateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error) {
	row, err := r.callProcedureRow(ctx, spSucursalCrear,
		sucursal.Codigo,
		sucursal.Descripcion,
		sucursal.Direccion,
		sucursal.Identificacion,
		sucursal.FechaCreacion,
		sucursal.MonedaID,
	)
	if err != nil {
		return nil, err
	}

	modelSucursal, err := scanSucursal(row)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to create sucursal %d", sucursal.Codigo))
	}

	created := mapping.ToDomainSucursal(modelSucursal)
	return &created, nil
}

// UpdateSucursal replaces the mutable fields of the branch identified by sucursal.ID.
func (r *PgxSucursalRepository) UpdateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error) {
	row, err := r.callProcedureRow(ctx, spSucursalActualizar,
		sucursal.ID,
		sucursal.Codigo,
		sucursal.Descripcion,
		sucursal.Direccion,
		sucursal.Identificacion,
		sucursal.MonedaID,
	)
	if err != nil {
		return nil, err
	}

	modelSucursal, err := scanSucursal(row)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to update sucursal %d", sucursal.ID))
	}

	updated := mapping.ToDomainSucursal(modelSucursal)
	return &updated, nil
}

// DeleteSucursal soft-deletes a branch and returns the typed outcome reported by the store.
func (r *PgxSucursalRepository) DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error) {
	row, err := r.callProcedureRow(ctx, spSucursalEliminar, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	var result models.SucursalDeleteResult
	if err := row.Scan(&result.Success, &result.Mensaje); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DeleteResult{}, apperrors.ErrNotFound
		}
		return domain.DeleteResult{}, translateError(err, fmt.Sprintf("failed to delete sucursal %d", id))
	}

	return mapping.ToDomainDeleteResult(result), nil
}
