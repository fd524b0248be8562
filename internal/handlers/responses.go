package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/dto"
)

const (
	msgErrorInterno     = "Error interno del servidor"
	msgFormatoInvalido  = "Formato de solicitud inválido"
	msgIDInvalido       = "El ID debe ser un número entero"
	msgErrorBaseDeDatos = "Error de base de datos: "
)

// failureMessages describes how a handler words each class of service error.
type failureMessages struct {
	NotFound  string
	Duplicate string
	// Internal prefixes the error detail shown outside production, e.g. "Error al crear sucursal: ".
	Internal string
	// ReadOnly reports store failures as 500 instead of surfacing the store message.
	ReadOnly bool
}

// parseIDParam reads a positive integer path parameter, answering 400 when it is not one.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error[any](msgIDInvalido))
		return 0, false
	}
	return id, true
}

// respondValidation writes the 400 envelope for a failed shape or rule check.
// It reports false when err is not a validation error.
func respondValidation(c *gin.Context, err error) bool {
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ValidationError[any](verr.Messages))
	return true
}

// respondError maps a service error to its status code and envelope.
func respondError(c *gin.Context, logger *slog.Logger, err error, msgs failureMessages, isProduction bool) {
	if respondValidation(c, err) {
		logger.Warn("Request rejected by validation", slog.String("error", err.Error()))
		return
	}

	var storeErr *apperrors.StoreError
	switch {
	case errors.Is(err, apperrors.ErrNotFound) && msgs.NotFound != "":
		logger.Warn("Resource not found")
		c.JSON(http.StatusNotFound, dto.Error[any](msgs.NotFound))
	case errors.Is(err, apperrors.ErrDuplicate) && msgs.Duplicate != "":
		logger.Warn("Duplicate resource rejected by store", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.Error[any](msgs.Duplicate))
	case !msgs.ReadOnly && errors.As(err, &storeErr):
		logger.Warn("Store rejected request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error[any](msgErrorBaseDeDatos+storeErr.Message))
	default:
		respondInternal(c, logger, err, msgs.Internal, isProduction)
	}
}

// respondInternal writes a 500 envelope. The error detail is only exposed outside production.
func respondInternal(c *gin.Context, logger *slog.Logger, err error, prefix string, isProduction bool) {
	logger.Error("Unexpected error handling request", slog.String("error", err.Error()))
	if isProduction || prefix == "" {
		c.JSON(http.StatusInternalServerError, dto.Error[any](msgErrorInterno))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error[any](prefix+err.Error()))
}
