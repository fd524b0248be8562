package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/middleware"
	"github.com/quala/sucursales_api/internal/validation"
)

const (
	msgSucursalesObtenidas  = "Sucursales obtenidas exitosamente"
	msgSucursalObtenida     = "Sucursal obtenida exitosamente"
	msgSucursalCreada       = "Sucursal creada exitosamente"
	msgSucursalActualizada  = "Sucursal actualizada exitosamente"
	msgSucursalEliminada    = "Sucursal eliminada exitosamente"
	msgSucursalNoEncontrada = "Sucursal no encontrada"
	msgSucursalNoEliminada  = "No se pudo eliminar la sucursal"
	msgIDNoCoincide         = "El ID de la URL no coincide con el ID del objeto"
	msgCodigoYaExiste       = "Ya existe una sucursal con el código especificado"
	msgCodigoYaExisteEnOtra = "Ya existe otra sucursal con el código especificado"
)

// sucursalHandler handles HTTP requests related to branches.
type sucursalHandler struct {
	sucursalService portssvc.SucursalSvcFacade
	validator       *validation.Validator
	isProduction    bool
}

func newSucursalHandler(ss portssvc.SucursalSvcFacade, v *validation.Validator, isProduction bool) *sucursalHandler {
	return &sucursalHandler{
		sucursalService: ss,
		validator:       v,
		isProduction:    isProduction,
	}
}

// registerSucursalRoutes registers routes related to branches.
func registerSucursalRoutes(rg *gin.RouterGroup, sucursalService portssvc.SucursalSvcFacade, v *validation.Validator, isProduction bool) {
	h := newSucursalHandler(sucursalService, v, isProduction)

	sucursales := rg.Group("/sucursales")
	{
		sucursales.GET("", h.listSucursales)
		sucursales.GET("/:id", h.getSucursal)
		sucursales.POST("", h.createSucursal)
		sucursales.PUT("/:id", h.updateSucursal)
		sucursales.DELETE("/:id", h.deleteSucursal)
	}
}

// listSucursales godoc
// @Summary List branches
// @Description Retrieves every active branch with its currency name
// @Tags sucursales
// @Produce json
// @Success 200 {object} dto.APIResponse[[]dto.SucursalResponse]
// @Failure 401 "Unauthorized"
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /sucursales [get]
func (h *sucursalHandler) listSucursales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sucursales, err := h.sucursalService.ListSucursales(c.Request.Context())
	if err != nil {
		respondInternal(c, logger, err, "Error al obtener sucursales: ", h.isProduction)
		return
	}

	logger.Info("Sucursales listed successfully", slog.Int("count", len(sucursales)))
	c.JSON(http.StatusOK, dto.Success(dto.ToListSucursalResponse(sucursales), msgSucursalesObtenidas))
}

// getSucursal godoc
// @Summary Get a branch
// @Tags sucursales
// @Produce json
// @Param id path int true "Sucursal ID"
// @Success 200 {object} dto.APIResponse[dto.SucursalResponse]
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 404 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /sucursales/{id} [get]
func (h *sucursalHandler) getSucursal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("sucursal_id", id))

	sucursal, err := h.sucursalService.GetSucursalByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, failureMessages{
			NotFound: msgSucursalNoEncontrada,
			Internal: "Error al obtener sucursal: ",
			ReadOnly: true,
		}, h.isProduction)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToSucursalResponse(sucursal), msgSucursalObtenida))
}

// createSucursal godoc
// @Summary Create a branch
// @Description Validates the payload and the business rules (creation date, unique code, existing currency) before storing it
// @Tags sucursales
// @Accept json
// @Produce json
// @Param sucursal body dto.CreateSucursalRequest true "Sucursal details"
// @Success 201 {object} dto.APIResponse[dto.SucursalResponse]
// @Header 201 {string} Location "/api/sucursales/{id}"
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 409 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /sucursales [post]
func (h *sucursalHandler) createSucursal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSucursalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSucursal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error[any](msgFormatoInvalido))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if !respondValidation(c, err) {
			respondInternal(c, logger, err, "Error al crear sucursal: ", h.isProduction)
		}
		return
	}

	created, err := h.sucursalService.CreateSucursal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, failureMessages{
			Duplicate: msgCodigoYaExiste,
			Internal:  "Error al crear sucursal: ",
		}, h.isProduction)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/sucursales/%d", created.ID))
	c.JSON(http.StatusCreated, dto.Success(dto.ToSucursalResponse(created), msgSucursalCreada))
}

// updateSucursal godoc
// @Summary Update a branch
// @Description Replaces code, description, address, identification and currency. The path id must match the body id.
// @Tags sucursales
// @Accept json
// @Produce json
// @Param id path int true "Sucursal ID"
// @Param sucursal body dto.UpdateSucursalRequest true "Sucursal details"
// @Success 200 {object} dto.APIResponse[dto.SucursalResponse]
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 404 {object} dto.APIResponse[any]
// @Failure 409 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /sucursales/{id} [put]
func (h *sucursalHandler) updateSucursal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("sucursal_id", id))

	var req dto.UpdateSucursalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSucursal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error[any](msgFormatoInvalido))
		return
	}

	if req.ID != id {
		logger.Warn("Path id does not match body id", slog.Int("body_id", req.ID))
		c.JSON(http.StatusBadRequest, dto.Error[any](msgIDNoCoincide))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if !respondValidation(c, err) {
			respondInternal(c, logger, err, "Error al actualizar sucursal: ", h.isProduction)
		}
		return
	}

	updated, err := h.sucursalService.UpdateSucursal(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, failureMessages{
			NotFound:  msgSucursalNoEncontrada,
			Duplicate: msgCodigoYaExisteEnOtra,
			Internal:  "Error al actualizar sucursal: ",
		}, h.isProduction)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToSucursalResponse(updated), msgSucursalActualizada))
}

// deleteSucursal godoc
// @Summary Delete a branch
// @Description Soft-deletes the branch; the store may refuse with a reason
// @Tags sucursales
// @Produce json
// @Param id path int true "Sucursal ID"
// @Success 200 {object} dto.APIResponse[bool]
// @Failure 400 {object} dto.APIResponse[any]
// @Failure 404 {object} dto.APIResponse[any]
// @Failure 500 {object} dto.APIResponse[any]
// @Security BearerAuth
// @Router /sucursales/{id} [delete]
func (h *sucursalHandler) deleteSucursal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	logger = logger.With(slog.Int("sucursal_id", id))

	result, err := h.sucursalService.DeleteSucursal(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, failureMessages{
			NotFound: msgSucursalNoEncontrada,
			Internal: "Error al eliminar sucursal: ",
		}, h.isProduction)
		return
	}

	if !result.Success {
		var reasons []string
		if result.Reason != "" {
			reasons = append(reasons, result.Reason)
		}
		c.JSON(http.StatusBadRequest, dto.Error[bool](msgSucursalNoEliminada, reasons...))
		return
	}

	logger.Info("Sucursal deleted successfully")
	c.JSON(http.StatusOK, dto.Success(true, msgSucursalEliminada))
}
