package repositories

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
)

// MonedaReader defines read operations for currency data
type MonedaReader interface {
	// FindMonedas retrieves all currencies.
	FindMonedas(ctx context.Context) ([]domain.Moneda, error)

	// FindMonedaByID retrieves an active currency. Returns apperrors.ErrNotFound when absent.
	FindMonedaByID(ctx context.Context, id int) (*domain.Moneda, error)
}

// MonedaRepositoryFacade is the full currency repository. Currencies are read-only.
type MonedaRepositoryFacade interface {
	MonedaReader
}
