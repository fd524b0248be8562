package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/core/services"
)

type ValidationServiceTestSuite struct {
	suite.Suite
	sucursalRepo *MockSucursalRepository
	monedaRepo   *MockMonedaRepository
	service      portssvc.ValidationSvc
	now          time.Time
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.sucursalRepo = new(MockSucursalRepository)
	suite.monedaRepo = new(MockMonedaRepository)
	suite.now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewValidationService(suite.sucursalRepo, suite.monedaRepo,
		services.WithValidationClock(func() time.Time { return suite.now }))
}

func (suite *ValidationServiceTestSuite) TestDateNotPast() {
	ctx := context.Background()

	suite.True(suite.service.DateNotPast(ctx, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)), "today")
	suite.True(suite.service.DateNotPast(ctx, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)), "future")
	suite.False(suite.service.DateNotPast(ctx, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)), "yesterday")
}

func (suite *ValidationServiceTestSuite) TestCodeIsUnique() {
	ctx := context.Background()
	suite.sucursalRepo.On("ExistsCodigo", ctx, 100, (*int)(nil)).Return(true, nil).Once()
	suite.sucursalRepo.On("ExistsCodigo", ctx, 200, (*int)(nil)).Return(false, nil).Once()

	unique, err := suite.service.CodeIsUnique(ctx, 100, nil)
	suite.Require().NoError(err)
	suite.False(unique)

	unique, err = suite.service.CodeIsUnique(ctx, 200, nil)
	suite.Require().NoError(err)
	suite.True(unique)

	suite.sucursalRepo.AssertExpectations(suite.T())
}

func (suite *ValidationServiceTestSuite) TestCodeIsUnique_ExcludesOwnRow() {
	ctx := context.Background()
	ownID := 5
	suite.sucursalRepo.On("ExistsCodigo", ctx, 100, mock.MatchedBy(func(id *int) bool {
		return id != nil && *id == ownID
	})).Return(false, nil).Once()

	unique, err := suite.service.CodeIsUnique(ctx, 100, &ownID)

	suite.Require().NoError(err)
	suite.True(unique)
	suite.sucursalRepo.AssertExpectations(suite.T())
}

func (suite *ValidationServiceTestSuite) TestCodeIsUnique_RepoError() {
	ctx := context.Background()
	suite.sucursalRepo.On("ExistsCodigo", ctx, 100, (*int)(nil)).Return(false, assert.AnError).Once()

	_, err := suite.service.CodeIsUnique(ctx, 100, nil)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ValidationServiceTestSuite) TestCurrencyExists() {
	ctx := context.Background()
	suite.monedaRepo.On("FindMonedaByID", ctx, 1).Return(&domain.Moneda{ID: 1, Activo: true}, nil).Once()
	suite.monedaRepo.On("FindMonedaByID", ctx, 2).Return(&domain.Moneda{ID: 2, Activo: false}, nil).Once()
	suite.monedaRepo.On("FindMonedaByID", ctx, 99).Return(nil, apperrors.ErrNotFound).Once()
	suite.monedaRepo.On("FindMonedaByID", ctx, 500).Return(nil, assert.AnError).Once()

	exists, err := suite.service.CurrencyExists(ctx, 1)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.service.CurrencyExists(ctx, 2)
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.service.CurrencyExists(ctx, 99)
	suite.Require().NoError(err, "not found is a failed rule, not an error")
	suite.False(exists)

	_, err = suite.service.CurrencyExists(ctx, 500)
	suite.ErrorIs(err, assert.AnError)

	suite.monedaRepo.AssertExpectations(suite.T())
}

func TestValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
