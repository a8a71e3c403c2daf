package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// TransactionRepository owns transaction records and is the single source of truth
// for which processor calls have already succeeded.
type TransactionRepository interface {
	// Create saves a new pending transaction
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a transaction with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID reads the current record
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// RecordCharge stores the charge reference and moves a pending transaction without
	// a charge reference to next. The check and the write are one conditional update.
	//
	// Possible errors:
	// - ErrStaleRecord: If the transaction is no longer pending or already has a charge reference
	// - ErrDatabaseConnection: If database connection fails
	RecordCharge(ctx context.Context, id string, chargeRef string, next entity.SettlementStatus) error

	// RecordTransfer stores the transfer reference and settles a charged transaction
	// without a transfer reference.
	//
	// Possible errors:
	// - ErrStaleRecord: If the transaction is not charged or already has a transfer reference
	// - ErrDatabaseConnection: If database connection fails
	RecordTransfer(ctx context.Context, id string, transferRef string) error

	// RecordFailure stores the last processor failure. A permanent failure on a pending
	// transaction bumps the charge attempt counter so the next charge uses a new idempotency key.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	RecordFailure(ctx context.Context, id string, message string, permanent bool) error

	// ListRetryable returns charged transactions and pending transactions whose last failure was
	// transient, last updated before olderThan, oldest first
	ListRetryable(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error)

	// ListByHost returns a host's transactions created at or after since, newest first
	ListByHost(ctx context.Context, hostID uint64, since time.Time) ([]*entity.Transaction, error)

	// SumHostShares returns the total host share of a host's settled transactions
	SumHostShares(ctx context.Context, hostID uint64) (int64, error)
}
