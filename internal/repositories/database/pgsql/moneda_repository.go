package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	"github.com/quala/sucursales_api/internal/models"
	"github.com/quala/sucursales_api/internal/utils/mapping"
	"github.com/quala/sucursales_api/pkg/database"
)

const (
	spMonedaObtenerTodas = "aa_sp_moneda_obtener_todas"
	monedaTable          = "aa_mon_moneda"
)

type PgxMonedaRepository struct {
	BaseRepository
}

func newPgxMonedaRepository(db database.Querier) portsrepo.MonedaRepositoryFacade {
	return &PgxMonedaRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.MonedaRepositoryFacade = (*PgxMonedaRepository)(nil)

// FindMonedas retrieves every active currency ordered by code.
func (r *PgxMonedaRepository) FindMonedas(ctx context.Context) ([]domain.Moneda, error) {
	rows, err := r.callProcedure(ctx, spMonedaObtenerTodas)
	if err != nil {
		return nil, translateError(err, "failed to query monedas")
	}
	defer rows.Close()

	modelMonedas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Moneda, error) {
		var m models.Moneda
		err := row.Scan(&m.ID, &m.Codigo, &m.Nombre, &m.Simbolo, &m.Activo)
		return m, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan monedas")
	}

	return mapping.ToDomainMonedaSlice(modelMonedas), nil
}

// FindMonedaByID retrieves an active currency by its ID.
func (r *PgxMonedaRepository) FindMonedaByID(ctx context.Context, id int) (*domain.Moneda, error) {
	query, args, err := psql.Select("id", "codigo", "nombre", "simbolo", "activo").
		From(monedaTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build moneda lookup: %w", err)
	}

	var m models.Moneda
	err = r.querier(ctx).QueryRow(ctx, query, args...).Scan(&m.ID, &m.Codigo, &m.Nombre, &m.Simbolo, &m.Activo)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find moneda %d", id))
	}

	moneda := mapping.ToDomainMoneda(m)
	return &moneda, nil
}
