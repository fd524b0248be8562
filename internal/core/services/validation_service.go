package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quala/sucursales_api/internal/apperrors"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/validation"
)

type validationService struct {
	BaseService
	sucursalRepo portsrepo.SucursalReader
	monedaRepo   portsrepo.MonedaReader
	now          func() time.Time
}

// ValidationServiceOption configures the validation service.
type ValidationServiceOption func(*validationService)

// WithValidationClock sets the clock used for date rules. Its location decides what "today" is.
func WithValidationClock(now func() time.Time) ValidationServiceOption {
	return func(s *validationService) {
		s.now = now
	}
}

// NewValidationService creates the business-rule checker.
func NewValidationService(sucursalRepo portsrepo.SucursalReader, monedaRepo portsrepo.MonedaReader, opts ...ValidationServiceOption) portssvc.ValidationSvc {
	s := &validationService{
		sucursalRepo: sucursalRepo,
		monedaRepo:   monedaRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ValidationSvc = (*validationService)(nil)

func (s *validationService) DateNotPast(_ context.Context, date time.Time) bool {
	return validation.IsNotPast(date, s.now())
}

func (s *validationService) CodeIsUnique(ctx context.Context, codigo int, excludeID *int) (bool, error) {
	exists, err := s.sucursalRepo.ExistsCodigo(ctx, codigo, excludeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check codigo uniqueness", slog.Int("codigo", codigo))
		return false, fmt.Errorf("failed to check codigo uniqueness: %w", err)
	}
	return !exists, nil
}

func (s *validationService) CurrencyExists(ctx context.Context, monedaID int) (bool, error) {
	moneda, err := s.monedaRepo.FindMonedaByID(ctx, monedaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to look up moneda", slog.Int("moneda_id", monedaID))
		return false, fmt.Errorf("failed to check moneda existence: %w", err)
	}
	return moneda != nil && moneda.Activo, nil
}
