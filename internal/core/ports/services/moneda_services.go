package services

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
)

// MonedaReaderSvc defines read operations for currency data
type MonedaReaderSvc interface {
	// ListMonedas retrieves all available currencies.
	ListMonedas(ctx context.Context) ([]domain.Moneda, error)

	// GetMonedaByID retrieves a specific currency.
	GetMonedaByID(ctx context.Context, id int) (*domain.Moneda, error)
}

// MonedaSvcFacade combines all currency-related service interfaces
type MonedaSvcFacade interface {
	MonedaReaderSvc
}
