package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/pkg/database"
)

// ConnAcquirer hands out pooled connections. *pgxpool.Pool implements it.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// DBScope acquires one pooled connection per request, exposes it through the
// request context and releases it when the request finishes.
func DBScope(pool ConnAcquirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := pool.Acquire(c.Request.Context())
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to acquire database connection", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error[any]("Error interno del servidor"))
			return
		}
		defer conn.Release()

		c.Request = c.Request.WithContext(database.WithConn(c.Request.Context(), conn))
		c.Next()
	}
}
