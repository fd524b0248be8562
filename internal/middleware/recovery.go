package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quala/sucursales_api/internal/dto"
)

// RecoveryHandler answers a recovered panic with a 500 envelope. Use with gin.CustomRecovery.
func RecoveryHandler(c *gin.Context, recovered any) {
	GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic", "panic", fmt.Sprint(recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error[any]("Error interno del servidor"))
}
