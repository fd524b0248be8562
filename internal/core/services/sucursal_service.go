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
	"github.com/quala/sucursales_api/internal/dto"
)

// Business rule messages returned inside validation errors.
const (
	MsgFechaCreacionPasada       = "La fecha de creación no puede ser anterior a la fecha actual"
	MsgCodigoDuplicado           = "Ya existe una sucursal con el código especificado"
	MsgCodigoDuplicadoActualizar = "Ya existe otra sucursal con el código especificado"
	MsgMonedaNoExiste            = "La moneda especificada no existe"
)

type sucursalService struct {
	BaseService
	sucursalRepo portsrepo.SucursalRepositoryFacade
	validation   portssvc.ValidationSvc
}

// NewSucursalService creates the branch service. Business rules run through validation.
func NewSucursalService(sucursalRepo portsrepo.SucursalRepositoryFacade, validation portssvc.ValidationSvc) portssvc.SucursalSvcFacade {
	return &sucursalService{
		sucursalRepo: sucursalRepo,
		validation:   validation,
	}
}

var _ portssvc.SucursalSvcFacade = (*sucursalService)(nil)

func (s *sucursalService) ListSucursales(ctx context.Context) ([]domain.Sucursal, error) {
	sucursales, err := s.sucursalRepo.FindSucursales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sucursales")
		return nil, fmt.Errorf("failed to list sucursales in service: %w", err)
	}
	if sucursales == nil {
		return []domain.Sucursal{}, nil
	}
	return sucursales, nil
}

func (s *sucursalService) GetSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error) {
	sucursal, err := s.sucursalRepo.FindSucursalByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get sucursal", slog.Int("sucursal_id", id))
		}
		return nil, fmt.Errorf("failed to get sucursal by ID in service: %w", err)
	}
	return sucursal, nil
}

// CreateSucursal checks every business rule, then persists the branch.
// All failed rules are returned together in an *apperrors.ValidationError.
func (s *sucursalService) CreateSucursal(ctx context.Context, req dto.CreateSucursalRequest) (*domain.Sucursal, error) {
	var failed []string

	if !s.validation.DateNotPast(ctx, req.FechaCreacion.Time) {
		failed = append(failed, MsgFechaCreacionPasada)
	}

	unique, err := s.validation.CodeIsUnique(ctx, req.Codigo, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		failed = append(failed, MsgCodigoDuplicado)
	}

	exists, err := s.validation.CurrencyExists(ctx, req.MonedaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		failed = append(failed, MsgMonedaNoExiste)
	}

	if len(failed) > 0 {
		s.LogDebug(ctx, "Sucursal rejected by business rules", slog.Int("codigo", req.Codigo), slog.Int("failed_rules", len(failed)))
		return nil, apperrors.NewValidationError(failed)
	}

	sucursal := domain.Sucursal{
		Codigo:         req.Codigo,
		Descripcion:    req.Descripcion,
		Direccion:      req.Direccion,
		Identificacion: req.Identificacion,
		FechaCreacion:  req.FechaCreacion.Time,
		MonedaID:       req.MonedaID,
		Activo:         true,
	}

	created, err := s.sucursalRepo.CreateSucursal(ctx, sucursal)
	if err != nil {
		s.LogError(ctx, err, "Failed to create sucursal", slog.Int("codigo", req.Codigo))
		return nil, fmt.Errorf("failed to create sucursal in service: %w", err)
	}

	s.LogInfo(ctx, "Sucursal created", slog.Int("sucursal_id", created.ID), slog.Int("codigo", created.Codigo))
	return created, nil
}

// UpdateSucursal requires the branch to exist, checks the business rules excluding
// the branch itself from the uniqueness check, then replaces its mutable fields.
func (s *sucursalService) UpdateSucursal(ctx context.Context, id int, req dto.UpdateSucursalRequest) (*domain.Sucursal, error) {
	if _, err := s.sucursalRepo.FindSucursalByID(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load sucursal for update", slog.Int("sucursal_id", id))
		}
		return nil, fmt.Errorf("failed to load sucursal for update: %w", err)
	}

	var failed []string

	unique, err := s.validation.CodeIsUnique(ctx, req.Codigo, &id)
	if err != nil {
		return nil, err
	}
	if !unique {
		failed = append(failed, MsgCodigoDuplicadoActualizar)
	}

	exists, err := s.validation.CurrencyExists(ctx, req.MonedaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		failed = append(failed, MsgMonedaNoExiste)
	}

	if len(failed) > 0 {
		return nil, apperrors.NewValidationError(failed)
	}

	sucursal := domain.Sucursal{
		ID:             id,
		Codigo:         req.Codigo,
		Descripcion:    req.Descripcion,
		Direccion:      req.Direccion,
		Identificacion: req.Identificacion,
		MonedaID:       req.MonedaID,
	}

	updated, err := s.sucursalRepo.UpdateSucursal(ctx, sucursal)
	if err != nil {
		s.LogError(ctx, err, "Failed to update sucursal", slog.Int("sucursal_id", id))
		return nil, fmt.Errorf("failed to update sucursal in service: %w", err)
	}

	s.LogInfo(ctx, "Sucursal updated", slog.Int("sucursal_id", id))
	return updated, nil
}

// DeleteSucursal soft-deletes an existing branch. A rejected delete is reported
// through the result, not as an error.
func (s *sucursalService) DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error) {
	if _, err := s.sucursalRepo.FindSucursalByID(ctx, id); err != nil {
		return domain.DeleteResult{}, fmt.Errorf("failed to load sucursal for delete: %w", err)
	}

	result, err := s.sucursalRepo.DeleteSucursal(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete sucursal", slog.Int("sucursal_id", id))
		return domain.DeleteResult{}, fmt.Errorf("failed to delete sucursal in service: %w", err)
	}

	if !result.Success {
		s.LogInfo(ctx, "Sucursal delete rejected by store", slog.Int("sucursal_id", id), slog.String("reason", result.Reason))
	}
	return result, nil
}
