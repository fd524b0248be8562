package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/pkg/database"
)

var sucursalColumns = []string{
	"id", "codigo", "descripcion", "direccion", "identificacion",
	"fecha_creacion", "moneda_id", "moneda_nombre", "activo", "fecha_modificacion",
}

type SucursalRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxSucursalRepository
	ctx  context.Context
}

func (s *SucursalRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.repo = newPgxSucursalRepository(mock).(*PgxSucursalRepository)
	s.ctx = context.Background()
}

func (s *SucursalRepositoryTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func (s *SucursalRepositoryTestSuite) TestFindSucursales() {
	fecha := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(sucursalColumns).
		AddRow(1, 100, "Main", "St 1", "ID1", fecha, 1, "Peso colombiano", true, fecha).
		AddRow(2, 200, "Norte", "St 2", "ID2", fecha, 2, nil, true, fecha)

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_obtener_todas()")).
		WillReturnRows(rows)

	sucursales, err := s.repo.FindSucursales(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(sucursales, 2)
	s.Equal(100, sucursales[0].Codigo)
	s.Require().NotNil(sucursales[0].MonedaNombre)
	s.Equal("Peso colombiano", *sucursales[0].MonedaNombre)
	s.Nil(sucursales[1].MonedaNombre)
}

func (s *SucursalRepositoryTestSuite) TestFindSucursales_Empty() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_obtener_todas()")).
		WillReturnRows(pgxmock.NewRows(sucursalColumns))

	sucursales, err := s.repo.FindSucursales(s.ctx)

	s.Require().NoError(err)
	s.NotNil(sucursales)
	s.Empty(sucursales)
}

func (s *SucursalRepositoryTestSuite) TestFindSucursalByID_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_obtener_por_id($1)")).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows(sucursalColumns))

	sucursal, err := s.repo.FindSucursalByID(s.ctx, 99)

	s.Nil(sucursal)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SucursalRepositoryTestSuite) TestExistsCodigo() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM aa_suc_sucursal WHERE codigo = $1 AND activo = $2")).
		WithArgs(100, true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := s.repo.ExistsCodigo(s.ctx, 100, nil)

	s.Require().NoError(err)
	s.True(exists)
}

func (s *SucursalRepositoryTestSuite) TestExistsCodigo_ExcludesOwnRow() {
	ownID := 5
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM aa_suc_sucursal WHERE codigo = $1 AND activo = $2 AND id <> $3")).
		WithArgs(100, true, ownID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := s.repo.ExistsCodigo(s.ctx, 100, &ownID)

	s.Require().NoError(err)
	s.False(exists)
}

func (s *SucursalRepositoryTestSuite) TestCreateSucursal() {
	fecha := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	input := domain.Sucursal{
		Codigo:         100,
		Descripcion:    "Main",
		Direccion:      "St 1",
		Identificacion: "ID1",
		FechaCreacion:  fecha,
		MonedaID:       1,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_crear($1,$2,$3,$4,$5,$6)")).
		WithArgs(100, "Main", "St 1", "ID1", fecha, 1).
		WillReturnRows(pgxmock.NewRows(sucursalColumns).
			AddRow(42, 100, "Main", "St 1", "ID1", fecha, 1, "Peso colombiano", true, fecha))

	created, err := s.repo.CreateSucursal(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(42, created.ID)
	s.True(created.Activo)
}

func (s *SucursalRepositoryTestSuite) TestCreateSucursal_UniqueViolation() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_crear($1,$2,$3,$4,$5,$6)")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	created, err := s.repo.CreateSucursal(s.ctx, domain.Sucursal{Codigo: 100})

	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *SucursalRepositoryTestSuite) TestCreateSucursal_OtherStoreError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_crear($1,$2,$3,$4,$5,$6)")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	_, err := s.repo.CreateSucursal(s.ctx, domain.Sucursal{Codigo: 100, MonedaID: 9})

	var storeErr *apperrors.StoreError
	s.Require().ErrorAs(err, &storeErr)
	s.Equal("violates foreign key constraint", storeErr.Message)
	s.ErrorIs(err, apperrors.ErrStore)
}

func (s *SucursalRepositoryTestSuite) TestUpdateSucursal_MissingRow() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_actualizar($1,$2,$3,$4,$5,$6)")).
		WithArgs(7, 100, "Main", "St 1", "ID1", 1).
		WillReturnRows(pgxmock.NewRows(sucursalColumns))

	_, err := s.repo.UpdateSucursal(s.ctx, domain.Sucursal{
		ID: 7, Codigo: 100, Descripcion: "Main", Direccion: "St 1", Identificacion: "ID1", MonedaID: 1,
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SucursalRepositoryTestSuite) TestDeleteSucursal() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_eliminar($1)")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"success", "mensaje"}).AddRow(true, nil))

	result, err := s.repo.DeleteSucursal(s.ctx, 7)

	s.Require().NoError(err)
	s.True(result.Success)
	s.Empty(result.Reason)
}

func (s *SucursalRepositoryTestSuite) TestDeleteSucursal_Refused() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_eliminar($1)")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"success", "mensaje"}).AddRow(false, "Sucursal no encontrada o ya eliminada"))

	result, err := s.repo.DeleteSucursal(s.ctx, 7)

	s.Require().NoError(err)
	s.False(result.Success)
	s.Equal("Sucursal no encontrada o ya eliminada", result.Reason)
}

func (s *SucursalRepositoryTestSuite) TestUsesScopedConnection() {
	scoped, err := pgxmock.NewPool()
	s.Require().NoError(err)
	defer scoped.Close()

	scoped.ExpectQuery(regexp.QuoteMeta("SELECT * FROM aa_sp_sucursal_obtener_todas()")).
		WillReturnRows(pgxmock.NewRows(sucursalColumns))

	ctx := database.WithConn(s.ctx, scoped)
	_, err = s.repo.FindSucursales(ctx)

	s.Require().NoError(err)
	s.NoError(scoped.ExpectationsWereMet())
}

func TestSucursalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SucursalRepositoryTestSuite))
}

func TestTranslateError(t *testing.T) {
	assert.ErrorIs(t, translateError(pgx.ErrNoRows, "op"), apperrors.ErrNotFound)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: uniqueViolation}, "op"), apperrors.ErrDuplicate)

	err := translateError(&pgconn.PgError{Code: "22001", Message: "value too long"}, "op")
	var storeErr *apperrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "value too long", storeErr.Message)

	plain := translateError(assert.AnError, "op")
	assert.ErrorIs(t, plain, assert.AnError)
	assert.NotErrorIs(t, plain, apperrors.ErrStore)
}
