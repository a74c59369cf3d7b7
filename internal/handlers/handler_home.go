package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashier_app/internal/core/ports/services"
	"github.com/SscSPs/cashier_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerHealthRoutes registers the liveness and readiness probes.
func registerHealthRoutes(r *gin.Engine, changeService portssvc.ChangeSvcFacade) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/ready", readinessHandler(changeService))
}

// readinessHandler godoc
// @Summary Readiness probe
// @Description Reports whether the calculation history store is reachable.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /ready [get]
func readinessHandler(changeService portssvc.ChangeSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := changeService.CheckHealth(c.Request.Context()); err != nil {
			middleware.GetLoggerFromContext(c).Warn("Readiness check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "history store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
