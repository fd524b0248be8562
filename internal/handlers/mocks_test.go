package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/quala/sucursales_api/internal/core/domain"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/utils"
)

// --- Mock SucursalService ---
type MockSucursalService struct {
	mock.Mock
}

func (m *MockSucursalService) ListSucursales(ctx context.Context) ([]domain.Sucursal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sucursal), args.Error(1)
}

func (m *MockSucursalService) GetSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalService) CreateSucursal(ctx context.Context, req dto.CreateSucursalRequest) (*domain.Sucursal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalService) UpdateSucursal(ctx context.Context, id int, req dto.UpdateSucursalRequest) (*domain.Sucursal, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sucursal), args.Error(1)
}

func (m *MockSucursalService) DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteResult), args.Error(1)
}

var _ portssvc.SucursalSvcFacade = (*MockSucursalService)(nil)

// --- Mock MonedaService ---
type MockMonedaService struct {
	mock.Mock
}

func (m *MockMonedaService) ListMonedas(ctx context.Context) ([]domain.Moneda, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Moneda), args.Error(1)
}

func (m *MockMonedaService) GetMonedaByID(ctx context.Context, id int) (*domain.Moneda, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moneda), args.Error(1)
}

var _ portssvc.MonedaSvcFacade = (*MockMonedaService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ValidateUser(ctx context.Context, nombreUsuario, password string) (*domain.Usuario, error) {
	args := m.Called(ctx, nombreUsuario, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Usuario), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*utils.TokenClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.TokenClaims), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
