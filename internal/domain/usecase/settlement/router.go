package settlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
)

// ProtocolExecutor drives the processor calls of one settlement protocol.
// It returns the latest known state of the transaction together with any error.
type ProtocolExecutor interface {
	Execute(ctx context.Context, txn *entity.Transaction, host *entity.Host, guest *entity.Guest) (*entity.Transaction, error)
}

// executorDeps is shared by both protocol executors
type executorDeps struct {
	processor    processor.PaymentProcessor
	transactions persistence.TransactionRepository
	guard        *IdempotencyGuard
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	appName      string
}

// Router picks the executor for a transaction's protocol
type Router struct {
	executors map[entity.SettlementProtocol]ProtocolExecutor
}

// NewRouter creates a router with the direct and indirect executors
func NewRouter(
	paymentProcessor processor.PaymentProcessor,
	transactions persistence.TransactionRepository,
	guard *IdempotencyGuard,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	appName string,
) *Router {
	deps := executorDeps{
		processor:    paymentProcessor,
		transactions: transactions,
		guard:        guard,
		timeProvider: timeProvider,
		logger:       logger,
		appName:      appName,
	}

	return &Router{
		executors: map[entity.SettlementProtocol]ProtocolExecutor{
			entity.DirectSettlement:   &DirectExecutor{executorDeps: deps},
			entity.IndirectSettlement: &IndirectExecutor{executorDeps: deps},
		},
	}
}

// Execute runs the protocol the transaction was created with
func (r *Router) Execute(ctx context.Context, txn *entity.Transaction, host *entity.Host, guest *entity.Guest) (*entity.Transaction, error) {
	executor, ok := r.executors[txn.Protocol]
	if !ok {
		return txn, errs.NewValidationError("protocol", fmt.Sprintf("no executor for protocol %q", txn.Protocol))
	}
	return executor.Execute(ctx, txn, host, guest)
}

// DirectExecutor settles with one destination charge made on behalf of the host account
type DirectExecutor struct {
	executorDeps
}

// Execute issues the destination charge and records it as settled
func (e *DirectExecutor) Execute(ctx context.Context, txn *entity.Transaction, host *entity.Host, guest *entity.Guest) (*entity.Transaction, error) {
	current, err := e.guard.BeforeCharge(ctx, txn.ID)
	if err != nil {
		return orCurrent(current, txn), err
	}

	charge, err := e.processor.CreateDestinationCharge(ctx, processor.DestinationChargeRequest{
		Amount:               current.Amount,
		Currency:             current.Currency,
		CustomerID:           guest.ProcessorCustomerID,
		DestinationAccountID: host.ProcessorAccountID,
		TransferAmount:       current.HostShare,
		Description:          description(current, host),
		StatementDescriptor:  e.appName,
		IdempotencyKey:       current.ChargeIdempotencyKey(),
		Metadata:             metadata(current),
	})
	if err != nil {
		e.recordFailure(ctx, current, entity.StepCharge, err)
		return current, err
	}

	if err := e.recordCharge(ctx, current, charge); err != nil {
		return current, err
	}
	return current, nil
}

// IndirectExecutor settles with a platform charge followed by a transfer in the same transfer group
type IndirectExecutor struct {
	executorDeps
}

// Execute runs whichever of the charge and the transfer are still outstanding
func (e *IndirectExecutor) Execute(ctx context.Context, txn *entity.Transaction, host *entity.Host, guest *entity.Guest) (*entity.Transaction, error) {
	current := txn

	if txn.NextStep() == entity.StepCharge {
		charged, err := e.charge(ctx, txn, host, guest)
		if err != nil {
			return charged, err
		}
		current = charged
	}

	return e.transfer(ctx, current, host)
}

func (e *IndirectExecutor) charge(ctx context.Context, txn *entity.Transaction, host *entity.Host, guest *entity.Guest) (*entity.Transaction, error) {
	current, err := e.guard.BeforeCharge(ctx, txn.ID)
	if err != nil {
		return orCurrent(current, txn), err
	}

	charge, err := e.processor.CreatePlatformCharge(ctx, processor.PlatformChargeRequest{
		Amount:              current.Amount,
		Currency:            current.Currency,
		CustomerID:          guest.ProcessorCustomerID,
		TransferGroup:       current.TransferGroup(),
		Description:         description(current, host),
		StatementDescriptor: e.appName,
		IdempotencyKey:      current.ChargeIdempotencyKey(),
		Metadata:            metadata(current),
	})
	if err != nil {
		e.recordFailure(ctx, current, entity.StepCharge, err)
		return current, err
	}

	if err := e.recordCharge(ctx, current, charge); err != nil {
		return current, err
	}
	return current, nil
}

func (e *IndirectExecutor) transfer(ctx context.Context, txn *entity.Transaction, host *entity.Host) (*entity.Transaction, error) {
	current, err := e.guard.BeforeTransfer(ctx, txn.ID)
	if err != nil {
		return orCurrent(current, txn), err
	}

	transfer, err := e.processor.CreateTransfer(ctx, processor.TransferRequest{
		Amount:               current.HostShare,
		Currency:             current.Currency,
		DestinationAccountID: host.ProcessorAccountID,
		TransferGroup:        current.TransferGroup(),
		SourceTransaction:    current.ChargeRef,
		IdempotencyKey:       current.TransferIdempotencyKey(),
	})
	if err != nil {
		e.recordFailure(ctx, current, entity.StepTransfer, err)
		e.logger.Warn("Transaction charged but transfer failed", map[string]any{
			"transaction_id": current.ID,
			"charge_ref":     current.ChargeRef,
			"transfer_group": current.TransferGroup(),
			"error":          err.Error(),
		})
		return current, errs.NewPartialSettlementError(current.ID, current.ChargeRef, err)
	}

	if err := e.transactions.RecordTransfer(ctx, current.ID, transfer.ID); err != nil {
		e.logger.Error("Transfer succeeded but could not be recorded", map[string]any{
			"transaction_id": current.ID,
			"transfer_ref":   transfer.ID,
			"error":          err.Error(),
		})
		return current, err
	}
	if err := current.RecordTransfer(transfer.ID, e.timeProvider); err != nil {
		return current, err
	}

	e.logger.Info("Transfer recorded", map[string]any{
		"transaction_id": current.ID,
		"transfer_ref":   transfer.ID,
		"host_share":     current.HostShare,
		"status":         string(current.Status),
	})
	return current, nil
}

// recordCharge stores the charge reference with a conditional update. When the store
// write fails the charge idempotency key is unchanged, so a retry returns the same charge.
func (d *executorDeps) recordCharge(ctx context.Context, txn *entity.Transaction, charge *processor.Charge) error {
	chargeRef := charge.ID
	next := txn.StatusAfterCharge()
	if err := d.transactions.RecordCharge(ctx, txn.ID, chargeRef, next); err != nil {
		d.logger.Error("Charge succeeded but could not be recorded", map[string]any{
			"transaction_id": txn.ID,
			"charge_ref":     chargeRef,
			"payment_intent": charge.PaymentIntentID,
			"error":          err.Error(),
		})
		return err
	}
	if err := txn.RecordCharge(chargeRef, d.timeProvider); err != nil {
		return err
	}

	d.logger.Info("Charge recorded", map[string]any{
		"transaction_id": txn.ID,
		"protocol":       string(txn.Protocol),
		"charge_ref":     chargeRef,
		"amount":         txn.Amount,
		"currency":       txn.Currency,
		"status":         string(txn.Status),
	})
	return nil
}

// recordFailure stores a failed processor call on the transaction. A store error is
// logged and does not replace the processor error returned to the caller.
func (d *executorDeps) recordFailure(ctx context.Context, txn *entity.Transaction, step entity.SettlementStep, callErr error) {
	permanent := errs.IsPermanentProcessorError(callErr)
	txn.RecordFailure(callErr.Error(), permanent, d.timeProvider)

	fields := errs.LogFields(callErr)
	fields["transaction_id"] = txn.ID
	fields["step"] = string(step)
	fields["permanent"] = permanent
	d.logger.Error("Processor call failed", fields)

	if err := d.transactions.RecordFailure(context.WithoutCancel(ctx), txn.ID, callErr.Error(), permanent); err != nil {
		d.logger.Error("Failed to record processor failure", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}
}

func description(txn *entity.Transaction, host *entity.Host) string {
	return fmt.Sprintf("Gift %s to %s", entity.FormatMinorUnits(txn.Amount, txn.Currency), host.DisplayName())
}

func metadata(txn *entity.Transaction) map[string]string {
	return map[string]string{
		"transaction_id": txn.ID,
		"host_id":        strconv.FormatUint(txn.HostID, 10),
		"guest_id":       strconv.FormatUint(txn.GuestID, 10),
	}
}

// orCurrent prefers the re-read record when the guard returned one
func orCurrent(current, fallback *entity.Transaction) *entity.Transaction {
	if current != nil {
		return current
	}
	return fallback
}

// isSettledElsewhere reports whether err means another attempt already recorded the step
func isSettledElsewhere(err error) bool {
	return errs.IsDuplicateOperationError(err) || errors.Is(err, errs.ErrStaleRecord)
}
