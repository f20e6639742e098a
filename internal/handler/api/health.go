package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	clock   clock.Clock
	service string
}

func NewHealthHandler(db Pinger, clk clock.Clock, cfg config.Config) *HealthHandler {
	return &HealthHandler{db: db, clock: clk, service: cfg.Server.ServiceName}
}

// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
		"time":    h.clock.Now().UTC(),
	})
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": h.clock.Now().UTC()})
}

// @Summary Readiness check
// @Description Reports ready only when the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("readiness ping failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": h.clock.Now().UTC()})
}
