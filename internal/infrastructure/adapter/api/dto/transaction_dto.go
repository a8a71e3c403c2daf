package dto

import (
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// SubmitTransactionRequest represents the API request for a guest payment.
// Operators may name the host and guest; guests always pay as themselves.
type SubmitTransactionRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	HostID   uint64 `json:"hostId"`
	GuestID  uint64 `json:"guestId"`
}

// SettlementResponse represents where a transaction stands after a settle call
type SettlementResponse struct {
	TransactionID   string `json:"transactionId"`
	HostID          uint64 `json:"hostId"`
	HostDisplayName string `json:"hostDisplayName"`
	GuestID         uint64 `json:"guestId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	HostShare       int64  `json:"hostShare"`
	PlatformFee     int64  `json:"platformFee"`
	Protocol        string `json:"protocol"`
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	ChargeRef       string `json:"chargeRef,omitempty"`
	TransferRef     string `json:"transferRef,omitempty"`
}

// NewSettlementResponse maps a settlement result
func NewSettlementResponse(result *usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		TransactionID:   result.TransactionID,
		HostID:          result.HostID,
		HostDisplayName: result.HostDisplayName,
		GuestID:         result.GuestID,
		Amount:          result.Amount,
		Currency:        result.Currency,
		HostShare:       result.HostShare,
		PlatformFee:     result.PlatformFee,
		Protocol:        string(result.Protocol),
		Status:          string(result.Status),
		Reference:       result.Reference,
		ChargeRef:       result.ChargeRef,
		TransferRef:     result.TransferRef,
	}
}

// PartialSettlementResponse is returned when the charge went through but the transfer did not
type PartialSettlementResponse struct {
	ErrorResponse
	Transaction SettlementResponse `json:"transaction"`
}

// TransactionResponse represents a stored transaction record
type TransactionResponse struct {
	ID             string     `json:"id"`
	HostID         uint64     `json:"hostId"`
	GuestID        uint64     `json:"guestId"`
	Amount         int64      `json:"amount"`
	Currency       string     `json:"currency"`
	HostShare      int64      `json:"hostShare"`
	PlatformFee    int64      `json:"platformFee"`
	Protocol       string     `json:"protocol"`
	Status         string     `json:"status"`
	ChargeRef      string     `json:"chargeRef,omitempty"`
	TransferRef    string     `json:"transferRef,omitempty"`
	ChargeAttempts int        `json:"chargeAttempts"`
	LastError      string     `json:"lastError,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	SettledAt      *time.Time `json:"settledAt,omitempty"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             txn.ID,
		HostID:         txn.HostID,
		GuestID:        txn.GuestID,
		Amount:         txn.Amount,
		Currency:       txn.Currency,
		HostShare:      txn.HostShare,
		PlatformFee:    txn.PlatformFee,
		Protocol:       string(txn.Protocol),
		Status:         string(txn.Status),
		ChargeRef:      txn.ChargeRef,
		TransferRef:    txn.TransferRef,
		ChargeAttempts: txn.ChargeAttempts,
		LastError:      txn.LastError,
		CreatedAt:      txn.CreatedAt,
		SettledAt:      txn.SettledAt,
	}
}

// TransactionListResponse is a host's recent transactions
type TransactionListResponse struct {
	HostID       uint64                `json:"hostId"`
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}
