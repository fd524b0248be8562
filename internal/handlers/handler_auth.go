package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/middleware"
	"github.com/quala/sucursales_api/internal/validation"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	validator    *validation.Validator
	isProduction bool
}

// registerAuthRoutes sets up the routes for authentication.
// The login route is rate limited per client IP when loginLimiter is set.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, v *validation.Validator, loginLimiter *limiter.Limiter, isProduction bool) {
	h := &authHandler{authService: authService, validator: v, isProduction: isProduction}

	loginChain := []gin.HandlerFunc{h.login}
	if loginLimiter != nil {
		loginChain = append([]gin.HandlerFunc{middleware.RateLimit(loginLimiter)}, loginChain...)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginChain...)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token with its expiration.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse[dto.LoginResponse]
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 401 {object} dto.APIResponse[any]
// @Failure 429 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error[any](msgFormatoInvalido))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if !respondValidation(c, err) {
			respondInternal(c, logger, err, "Error interno del servidor: ", h.isProduction)
		}
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, logger, err, "Error interno del servidor: ", h.isProduction)
		return
	}
	if result == nil {
		c.JSON(http.StatusUnauthorized, dto.Error[any]("Usuario o contraseña incorrectos"))
		return
	}

	c.JSON(http.StatusOK, dto.Success(*result, "Login exitoso"))
}
