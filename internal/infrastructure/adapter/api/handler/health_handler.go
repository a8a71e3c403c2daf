package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	db     Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
