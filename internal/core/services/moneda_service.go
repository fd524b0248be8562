package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
)

type monedaService struct {
	BaseService
	monedaRepo portsrepo.MonedaRepositoryFacade
}

// NewMonedaService creates the read-only currency service.
func NewMonedaService(monedaRepo portsrepo.MonedaRepositoryFacade) portssvc.MonedaSvcFacade {
	return &monedaService{monedaRepo: monedaRepo}
}

var _ portssvc.MonedaSvcFacade = (*monedaService)(nil)

func (s *monedaService) ListMonedas(ctx context.Context) ([]domain.Moneda, error) {
	monedas, err := s.monedaRepo.FindMonedas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list monedas")
		return nil, fmt.Errorf("failed to list monedas in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if monedas == nil {
		return []domain.Moneda{}, nil
	}
	return monedas, nil
}

func (s *monedaService) GetMonedaByID(ctx context.Context, id int) (*domain.Moneda, error) {
	moneda, err := s.monedaRepo.FindMonedaByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get moneda", slog.Int("moneda_id", id))
		}
		return nil, fmt.Errorf("failed to get moneda by ID in service: %w", err)
	}
	return moneda, nil
}
