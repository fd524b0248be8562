package repositories

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
)

// SucursalReader defines read operations for branch data
type SucursalReader interface {
	// FindSucursales retrieves every active branch.
	FindSucursales(ctx context.Context) ([]domain.Sucursal, error)

	// FindSucursalByID retrieves an active branch by its ID. Returns apperrors.ErrNotFound when absent.
	FindSucursalByID(ctx context.Context, id int) (*domain.Sucursal, error)

	// ExistsCodigo reports whether an active branch other than excludeID already uses codigo.
	ExistsCodigo(ctx context.Context, codigo int, excludeID *int) (bool, error)
}

// SucursalWriter defines write operations for branch data
type SucursalWriter interface {
	// CreateSucursal persists a new branch and returns the stored row.
	CreateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error)

	// UpdateSucursal replaces the mutable fields of an existing branch.
	UpdateSucursal(ctx context.Context, sucursal domain.Sucursal) (*domain.Sucursal, error)

	// DeleteSucursal removes a branch, reporting whether the store accepted it.
	DeleteSucursal(ctx context.Context, id int) (domain.DeleteResult, error)
}

// SucursalRepositoryFacade combines all branch-related repository interfaces
type SucursalRepositoryFacade interface {
	SucursalReader
	SucursalWriter
}
