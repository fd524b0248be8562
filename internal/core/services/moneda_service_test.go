package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/core/services"
)

type MonedaServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMonedaRepository
	service  portssvc.MonedaSvcFacade
}

func (suite *MonedaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMonedaRepository)
	suite.service = services.NewMonedaService(suite.mockRepo)
}

func (suite *MonedaServiceTestSuite) TestListMonedas_Success() {
	ctx := context.Background()
	expected := []domain.Moneda{{ID: 1, Codigo: "COP"}, {ID: 2, Codigo: "USD"}}
	suite.mockRepo.On("FindMonedas", ctx).Return(expected, nil).Once()

	monedas, err := suite.service.ListMonedas(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, monedas)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonedaServiceTestSuite) TestListMonedas_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("FindMonedas", ctx).Return(nil, nil).Once()

	monedas, err := suite.service.ListMonedas(ctx)

	suite.Require().NoError(err)
	suite.NotNil(monedas)
	suite.Empty(monedas)
}

func (suite *MonedaServiceTestSuite) TestListMonedas_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindMonedas", ctx).Return(nil, assert.AnError).Once()

	monedas, err := suite.service.ListMonedas(ctx)

	suite.Nil(monedas)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *MonedaServiceTestSuite) TestGetMonedaByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindMonedaByID", ctx, 99).Return(nil, apperrors.ErrNotFound).Once()

	moneda, err := suite.service.GetMonedaByID(ctx, 99)

	suite.Nil(moneda)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestMonedaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonedaServiceTestSuite))
}
