package services

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/internal/dto"
)

// SucursalReaderSvc defines read operations for branches
type SucursalReaderSvc interface {
	ListSucursales(ctx context.Context) ([]domain.Sucursal, error)
	GetSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error)
}

// SucursalWriterSvc defines write operations for branches. Create and Update run the
// business rules and return an *apperrors.ValidationError listing every failed rule.
type SucursalWriterSvc interface {
	CreateSucursal(ctx context.Context, req dto.CreateSucursalRequest) (*domain.Sucursal, error)
	UpdateSucursal(ctx context.Context, id int, req dto.UpdateSucursalRequest) (*domain.Sucursal, error)
	DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error)
}

// SucursalSvcFacade combines all branch-related service interfaces
type SucursalSvcFacade interface {
	SucursalReaderSvc
	SucursalWriterSvc
}
