package handler

import (
	"errors"
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	settlement usecase.SettlementUseCase
	logger     coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(settlement usecase.SettlementUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		settlement: settlement,
		logger:     logger,
	}
}

// SubmitTransaction handles the POST /transactions endpoint.
// A guest always pays as itself; an operator may name both parties.
func (h *TransactionHandler) SubmitTransaction(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondError(c, h.logger, "Unauthenticated transaction request", errs.ErrUnauthorized, nil)
		return
	}

	var req dto.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	submit := usecase.SubmitTransactionRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		HostID:   req.HostID,
		GuestID:  req.GuestID,
	}
	if principal.Role == middleware.RoleGuest {
		submit.GuestID = principal.ID
	}

	result, err := h.settlement.SubmitTransaction(c.Request.Context(), submit)
	if err != nil {
		h.respondSettlementError(c, "Error processing transaction", result, err, map[string]any{
			"amount":   req.Amount,
			"currency": req.Currency,
			"host_id":  submit.HostID,
			"guest_id": submit.GuestID,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewSettlementResponse(result))
}

// RetryTransaction handles the POST /transactions/:transactionId/retry endpoint
func (h *TransactionHandler) RetryTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")

	result, err := h.settlement.Settle(c.Request.Context(), transactionID)
	if err != nil {
		h.respondSettlementError(c, "Error retrying transaction", result, err, map[string]any{
			"transaction_id": transactionID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewSettlementResponse(result))
}

// GetTransaction handles the GET /transactions/:transactionId endpoint.
// Hosts and guests only see their own transactions.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")

	txn, err := h.settlement.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, h.logger, "Error getting transaction", err, map[string]any{
			"transaction_id": transactionID,
		})
		return
	}

	principal, _ := middleware.CurrentPrincipal(c)
	switch {
	case principal.Role == middleware.RoleOperator:
	case principal.Role == middleware.RoleHost && principal.ID == txn.HostID:
	case principal.Role == middleware.RoleGuest && principal.ID == txn.GuestID:
	default:
		respondError(c, h.logger, "Transaction read denied", errs.ErrForbidden, map[string]any{
			"transaction_id": transactionID,
			"role":           string(principal.Role),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListHostTransactions handles the GET /accounts/:hostId/transactions endpoint.
// since is an optional RFC 3339 timestamp.
func (h *TransactionHandler) ListHostTransactions(c *gin.Context) {
	hostID, ok := parseID(c, "hostId")
	if !ok {
		return
	}

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "Invalid since format, expected RFC 3339")
			return
		}
		since = parsed
	}

	txns, err := h.settlement.ListHostTransactions(c.Request.Context(), hostID, since)
	if err != nil {
		respondError(c, h.logger, "Error listing host transactions", err, map[string]any{"host_id": hostID})
		return
	}

	response := dto.TransactionListResponse{
		HostID:       hostID,
		Count:        len(txns),
		Transactions: make([]dto.TransactionResponse, 0, len(txns)),
	}
	for _, txn := range txns {
		response.Transactions = append(response.Transactions, dto.NewTransactionResponse(txn))
	}
	c.JSON(http.StatusOK, response)
}

// respondSettlementError keeps the transaction in the body when the charge went through
// and only the transfer failed, so the caller can see the recorded charge
func (h *TransactionHandler) respondSettlementError(
	c *gin.Context,
	logMessage string,
	result *usecase.SettlementResult,
	err error,
	fields map[string]any,
) {
	if result == nil || !errors.Is(err, errs.ErrPartialSettlement) {
		respondError(c, h.logger, logMessage, err, fields)
		return
	}

	logFields := errs.LogFields(err)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["request_id"] = middleware.RequestID(c)
	h.logger.Error(logMessage, logFields)

	c.JSON(errs.HTTPStatus(err), dto.PartialSettlementResponse{
		ErrorResponse: dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: err.Error(),
		},
		Transaction: dto.NewSettlementResponse(result),
	})
}
