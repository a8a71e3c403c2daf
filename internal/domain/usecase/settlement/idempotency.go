package settlement

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
)

// IdempotencyGuard re-reads the stored transaction before every processor call.
// The stored record, not the caller's copy, decides whether a call may be sent.
type IdempotencyGuard struct {
	transactions persistence.TransactionRepository
}

// NewIdempotencyGuard creates a new IdempotencyGuard
func NewIdempotencyGuard(transactions persistence.TransactionRepository) *IdempotencyGuard {
	return &IdempotencyGuard{
		transactions: transactions,
	}
}

// BeforeCharge returns the current record if no charge has been recorded for it
func (g *IdempotencyGuard) BeforeCharge(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	txn, err := g.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.ChargeRef != "" {
		return txn, errs.NewDuplicateOperationError(txn.ID, string(entity.StepCharge), txn.ChargeRef)
	}
	if txn.Status != entity.StatusPending {
		return txn, fmt.Errorf("%w: transaction %s is %s without a charge reference", errs.ErrStaleRecord, txn.ID, txn.Status)
	}
	return txn, nil
}

// BeforeTransfer returns the current record if it is charged and no transfer has been recorded for it
func (g *IdempotencyGuard) BeforeTransfer(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	txn, err := g.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.TransferRef != "" {
		return txn, errs.NewDuplicateOperationError(txn.ID, string(entity.StepTransfer), txn.TransferRef)
	}
	if txn.Status != entity.StatusCharged {
		return txn, fmt.Errorf("%w: transaction %s is %s, expected %s", errs.ErrStaleRecord, txn.ID, txn.Status, entity.StatusCharged)
	}
	return txn, nil
}
