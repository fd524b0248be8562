package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/middleware"
)

// monedaHandler handles HTTP requests related to currencies.
type monedaHandler struct {
	monedaService portssvc.MonedaSvcFacade
	isProduction  bool
}

// registerMonedaRoutes registers routes related to currencies.
func registerMonedaRoutes(rg *gin.RouterGroup, monedaService portssvc.MonedaSvcFacade, isProduction bool) {
	h := &monedaHandler{monedaService: monedaService, isProduction: isProduction}

	monedas := rg.Group("/monedas")
	{
		monedas.GET("", h.listMonedas)
		monedas.GET("/:id", h.getMoneda)
	}
}

// listMonedas godoc
// @Summary List all currencies
// @Description Retrieves a list of all active currencies
// @Tags monedas
// @Produce json
// @Success 200 {object} dto.APIResponse[[]dto.MonedaResponse]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /monedas [get]
func (h *monedaHandler) listMonedas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monedas, err := h.monedaService.ListMonedas(c.Request.Context())
	if err != nil {
		respondInternal(c, logger, err, "Error al obtener monedas: ", h.isProduction)
		return
	}

	logger.Info("Monedas listed successfully", slog.Int("count", len(monedas)))
	c.JSON(http.StatusOK, dto.Success(dto.ToListMonedaResponse(monedas), "Monedas obtenidas exitosamente"))
}

// getMoneda godoc
// @Summary Get a currency by ID
// @Tags monedas
// @Produce json
// @Param id path int true "Moneda ID"
// @Success 200 {object} dto.APIResponse[dto.MonedaResponse]
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 404 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /monedas/{id} [get]
func (h *monedaHandler) getMoneda(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	moneda, err := h.monedaService.GetMonedaByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int("moneda_id", id)), err, failureMessages{
			NotFound: "Moneda no encontrada",
			Internal: "Error al obtener moneda: ",
			ReadOnly: true,
		}, h.isProduction)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToMonedaResponse(moneda), "Moneda obtenida exitosamente"))
}
