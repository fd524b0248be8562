package services

import (
	"time"

	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc := cfg.TimeZone
	if loc == nil {
		loc = time.Local
	}
	clock := func() time.Time { return time.Now().In(loc) }

	container := &portssvc.ServiceContainer{}

	// Validation first since the branch service depends on it
	container.Validation = NewValidationService(repos.SucursalRepo, repos.MonedaRepo, WithValidationClock(clock))

	container.Sucursal = NewSucursalService(repos.SucursalRepo, container.Validation)
	container.Moneda = NewMonedaService(repos.MonedaRepo)
	container.Auth = NewAuthService(repos.UsuarioRepo, cfg.Auth)

	return container
}
