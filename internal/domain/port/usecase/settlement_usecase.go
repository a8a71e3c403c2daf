package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// SubmitTransactionRequest is an accepted payment request. Zero IDs are resolved
// by the CounterpartyResolver.
type SubmitTransactionRequest struct {
	Amount   int64
	Currency string
	HostID   uint64
	GuestID  uint64
}

// SettlementResult describes where a transaction stands after a settle call
type SettlementResult struct {
	TransactionID   string
	HostID          uint64
	HostDisplayName string
	GuestID         uint64
	Amount          int64
	Currency        string
	HostShare       int64
	PlatformFee     int64
	Protocol        entity.SettlementProtocol
	Status          entity.SettlementStatus
	ChargeRef       string
	TransferRef     string
	Reference       string
}

// SettlementUseCase accepts transactions and moves them to settled
type SettlementUseCase interface {
	// SubmitTransaction validates the request, records a pending transaction and settles it.
	// On PartialSettlementError the result is returned together with the error.
	SubmitTransaction(ctx context.Context, req SubmitTransactionRequest) (*SettlementResult, error)

	// Settle retries an existing transaction from its recorded status
	Settle(ctx context.Context, transactionID string) (*SettlementResult, error)

	// GetTransaction reads a transaction record
	GetTransaction(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// ListHostTransactions returns a host's transactions created since the given time
	ListHostTransactions(ctx context.Context, hostID uint64, since time.Time) ([]*entity.Transaction, error)
}
