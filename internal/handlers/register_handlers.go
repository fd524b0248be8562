package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/quala/sucursales_api/cmd/docs"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/middleware"
	"github.com/quala/sucursales_api/internal/platform/config"
	"github.com/quala/sucursales_api/internal/validation"
)

// RouterOptions carries the infrastructure wired around the API routes.
// Nil fields switch the matching feature off.
type RouterOptions struct {
	Validator       *validation.Validator
	DBPool          middleware.ConnAcquirer
	LoginLimiter    *limiter.Limiter
	MetricsGatherer prometheus.Gatherer
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouterOptions,
) {
	if opts.Validator == nil {
		opts.Validator = validation.New()
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if opts.MetricsGatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")

	// Public authentication routes
	registerAuthRoutes(api, services.Auth, opts.Validator, opts.LoginLimiter, cfg.IsProduction)

	setupProtectedRoutes(api, cfg, services, opts)

	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes configures the bearer-protected routes. Authentication runs
// before a database connection is acquired for the request.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouterOptions,
) {
	chain := []gin.HandlerFunc{middleware.AuthMiddleware(services.Auth)}
	if opts.DBPool != nil {
		chain = append(chain, middleware.DBScope(opts.DBPool))
	}
	protected := api.Group("", chain...)

	registerSucursalRoutes(protected, services.Sucursal, opts.Validator, cfg.IsProduction)
	registerMonedaRoutes(protected, services.Moneda, cfg.IsProduction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
