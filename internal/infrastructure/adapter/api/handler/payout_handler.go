package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PayoutHandler handles host balance and payout requests
type PayoutHandler struct {
	payouts usecase.PayoutUseCase
	logger  coreport.Logger
}

// NewPayoutHandler creates a new payout handler instance
func NewPayoutHandler(payouts usecase.PayoutUseCase, logger coreport.Logger) *PayoutHandler {
	return &PayoutHandler{
		payouts: payouts,
		logger:  logger,
	}
}

// Payout handles the POST /accounts/:hostId/payout endpoint. The body is optional.
func (h *PayoutHandler) Payout(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	var req dto.PayoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request format: "+err.Error())
			return
		}
	}

	result, err := h.payouts.Payout(c.Request.Context(), hostID, req.Currency)
	if err != nil {
		respondError(c, h.logger, "Error issuing payout", err, map[string]any{
			"host_id":  hostID,
			"currency": req.Currency,
		})
		return
	}

	status := http.StatusCreated
	if result.Skipped {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewPayoutResponse(result))
}

// Dashboard handles the GET /accounts/:hostId/dashboard endpoint
func (h *PayoutHandler) Dashboard(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	summary, err := h.payouts.Summary(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, h.logger, "Error getting host dashboard", err, map[string]any{"host_id": hostID})
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(summary))
}
