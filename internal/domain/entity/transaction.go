package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	tport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// SettlementStatus defines possible settlement status values for a transaction
type SettlementStatus string

// SettlementStatus constants
const (
	StatusPending SettlementStatus = "pending" // created, no processor reference
	StatusCharged SettlementStatus = "charged" // platform charge recorded, transfer outstanding
	StatusSettled SettlementStatus = "settled" // every required reference recorded
)

// SettlementStep is the next processor call a transaction needs
type SettlementStep string

const (
	StepCharge   SettlementStep = "charge"
	StepTransfer SettlementStep = "transfer"
	StepNone     SettlementStep = "none"
)

// Transaction is one guest to host money movement
type Transaction struct {
	ID             string             // uuid; doubles as the processor transfer group
	HostID         uint64             // Host receiving the host share
	GuestID        uint64             // Guest being charged
	Amount         int64              // Minor currency units, immutable
	Currency       string             // Lower-case ISO 4217 code
	HostShare      int64              // floor(Amount * 0.8)
	PlatformFee    int64              // Amount - HostShare
	Protocol       SettlementProtocol // Fixed when the transaction is created
	Status         SettlementStatus   // Settlement progress
	ChargeRef      string             // Processor charge reference
	TransferRef    string             // Processor transfer reference, indirect protocol only
	ChargeAttempts int                // Bumped after a charge the processor rejected
	LastError      string             // Last processor failure, cleared on success
	LastErrorFinal bool               // The last failure was a permanent processor rejection
	CreatedAt      time.Time          // When the transaction was accepted
	UpdatedAt      time.Time          // When the record last changed
	SettledAt      *time.Time         // When the transaction reached settled
}

// TransactionOption customizes a transaction on creation
type TransactionOption func(*Transaction)

// WithStatus creates the transaction in the given status
func WithStatus(status SettlementStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// WithChargeRef creates the transaction with a recorded charge reference
func WithChargeRef(ref string) TransactionOption {
	return func(t *Transaction) {
		t.ChargeRef = ref
	}
}

// NewTransaction creates a pending transaction and computes its split
func NewTransaction(
	id string,
	hostID uint64,
	guestID uint64,
	amount int64,
	currency string,
	protocol SettlementProtocol,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if id == "" {
		return nil, errs.NewValidationError("id", "is required")
	}
	if hostID == 0 {
		return nil, errs.NewValidationError("hostId", "is required")
	}
	if guestID == 0 {
		return nil, errs.NewValidationError("guestId", "is required")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	normalized, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if !protocol.IsValid() {
		return nil, errs.NewValidationError("protocol", fmt.Sprintf("unknown protocol %q", protocol))
	}

	hostShare, platformFee := SplitAmount(amount)
	now := timeProvider.Now()

	t := &Transaction{
		ID:          id,
		HostID:      hostID,
		GuestID:     guestID,
		Amount:      amount,
		Currency:    normalized,
		HostShare:   hostShare,
		PlatformFee: platformFee,
		Protocol:    protocol,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// TransferGroup is the correlation key shared by the charge and the transfer
func (t *Transaction) TransferGroup() string {
	return t.ID
}

// ChargeIdempotencyKey stays the same across transient retries and changes after a rejected charge
func (t *Transaction) ChargeIdempotencyKey() string {
	return fmt.Sprintf("%s:charge:%d", t.ID, t.ChargeAttempts)
}

// TransferIdempotencyKey is stable for the lifetime of the transaction
func (t *Transaction) TransferIdempotencyKey() string {
	return t.ID + ":transfer"
}

// IsTerminal reports whether the transaction can no longer change
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusSettled
}

// NextStep returns the processor call the transaction is waiting for
func (t *Transaction) NextStep() SettlementStep {
	switch t.Status {
	case StatusPending:
		return StepCharge
	case StatusCharged:
		return StepTransfer
	default:
		return StepNone
	}
}

// StatusAfterCharge is the status a successful charge moves the transaction to
func (t *Transaction) StatusAfterCharge() SettlementStatus {
	if t.Protocol == DirectSettlement {
		return StatusSettled
	}
	return StatusCharged
}

// RecordCharge stores the charge reference and advances the status
func (t *Transaction) RecordCharge(ref string, timeProvider tport.TimeProvider) error {
	if t.Status != StatusPending {
		return errs.NewDuplicateOperationError(t.ID, string(StepCharge), t.ChargeRef)
	}
	if t.ChargeRef != "" {
		return errs.NewDuplicateOperationError(t.ID, string(StepCharge), t.ChargeRef)
	}

	now := timeProvider.Now()
	t.ChargeRef = ref
	t.Status = t.StatusAfterCharge()
	t.LastError = ""
	t.LastErrorFinal = false
	t.UpdatedAt = now
	if t.Status == StatusSettled {
		t.SettledAt = &now
	}
	return nil
}

// RecordTransfer stores the transfer reference and settles the transaction
func (t *Transaction) RecordTransfer(ref string, timeProvider tport.TimeProvider) error {
	if t.Protocol != IndirectSettlement {
		return errs.NewValidationError("protocol", "transfers only belong to indirect settlement")
	}
	if t.Status != StatusCharged || t.TransferRef != "" {
		return errs.NewDuplicateOperationError(t.ID, string(StepTransfer), t.TransferRef)
	}

	now := timeProvider.Now()
	t.TransferRef = ref
	t.Status = StatusSettled
	t.LastError = ""
	t.LastErrorFinal = false
	t.UpdatedAt = now
	t.SettledAt = &now
	return nil
}

// RecordFailure stores a failed processor call. A permanent failure of the charge
// moves the charge idempotency key on, so a corrected retry is not deduplicated
// against the rejected attempt.
func (t *Transaction) RecordFailure(message string, permanent bool, timeProvider tport.TimeProvider) {
	t.LastError = message
	t.LastErrorFinal = permanent
	if permanent && t.Status == StatusPending {
		t.ChargeAttempts++
	}
	t.UpdatedAt = timeProvider.Now()
}

// SettlementReference is the reference callers use to look the money movement up at the processor
func (t *Transaction) SettlementReference() string {
	if t.TransferRef != "" {
		return t.TransferRef
	}
	return t.ChargeRef
}
