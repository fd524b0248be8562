package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
)

// --- Mock SucursalRepository ---
type MockSucursalRepository struct {
	mock.Mock
}

func (m *MockSucursalRepository) FindSucursales(ctx context.Context) ([]domain.Sucursal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sucursal), args.Error(1)
}

func (m *MockSucursalRepository) FindSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalRepository) ExistsCodigo(ctx context.Context, codigo int, excludeID *int) (bool, error) {
	args := m.Called(ctx, codigo, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSucursalRepository) CreateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error) {
	args := m.Called(ctx, sucursal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalRepository) UpdateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error) {
	args := m.Called(ctx, sucursal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalRepository) DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteResult), args.Error(1)
}

var _ portsrepo.SucursalRepositoryFacade = (*MockSucursalRepository)(nil)

// --- Mock MonedaRepository ---
type MockMonedaRepository struct {
	mock.Mock
}

func (m *MockMonedaRepository) FindMonedas(ctx context.Context) ([]domain.Moneda, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Moneda), args.Error(1)
}

func (m *MockMonedaRepository) FindMonedaByID(ctx context.Context, id int) (*domain.Moneda, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moneda), args.Error(1)
}

var _ portsrepo.MonedaRepositoryFacade = (*MockMonedaRepository)(nil)

// --- Mock UsuarioRepository ---
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) FindUsuarioByNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error) {
	args := m.Called(ctx, nombreUsuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}

var _ portsrepo.UsuarioRepositoryFacade = (*MockUsuarioRepository)(nil)

// --- Mock ValidationService ---
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) DateNotPast(ctx context.Context, date time.Time) bool {
	args := m.Called(ctx, date)
	return args.Bool(0)
}

func (m *MockValidationService) CodeIsUnique(ctx context.Context, codigo int, excludeID *int) (bool, error) {
	args := m.Called(ctx, codigo, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockValidationService) CurrencyExists(ctx context.Context, monedaID int) (bool, error) {
	args := m.Called(ctx, monedaID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.ValidationSvc = (*MockValidationService)(nil)
