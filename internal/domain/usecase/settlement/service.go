package settlement

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/lease"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultHistoryWindow is how far back ListHostTransactions looks when no start is given
const DefaultHistoryWindow = 7 * 24 * time.Hour

// Settlement outcomes reported to metrics
const (
	OutcomeSettled   = "settled"
	OutcomeCharged   = "charged"
	OutcomeFailed    = "failed"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
)

// Config holds the settlement settings
type Config struct {
	AppName     string
	LockTimeout time.Duration
}

// Service implements usecase.SettlementUseCase
type Service struct {
	transactions persistence.TransactionRepository
	hosts        persistence.HostRepository
	guests       persistence.GuestRepository
	locks        persistence.LockRepository
	resolver     usecase.CounterpartyResolver
	router       *Router
	validator    *TransactionValidator
	inflight     singleflight.Group
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	config       Config
	newID        func() string
}

// NewService creates a new settlement service
func NewService(
	transactions persistence.TransactionRepository,
	hosts persistence.HostRepository,
	guests persistence.GuestRepository,
	locks persistence.LockRepository,
	resolver usecase.CounterpartyResolver,
	paymentProcessor processor.PaymentProcessor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	config Config,
) *Service {
	guard := NewIdempotencyGuard(transactions)

	return &Service{
		transactions: transactions,
		hosts:        hosts,
		guests:       guests,
		locks:        locks,
		resolver:     resolver,
		router:       NewRouter(paymentProcessor, transactions, guard, timeProvider, logger, config.AppName),
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		config:       config,
		newID:        uuid.NewString,
	}
}

// SubmitTransaction validates and records a payment request, then settles it
func (s *Service) SubmitTransaction(ctx context.Context, req usecase.SubmitTransactionRequest) (*usecase.SettlementResult, error) {
	currency, err := s.validator.ValidateSubmission(req)
	if err != nil {
		return nil, err
	}

	counterparty, err := s.resolver.ResolveCounterparty(ctx, usecase.CounterpartyQuery{
		HostID:  req.HostID,
		GuestID: req.GuestID,
	})
	if err != nil {
		return nil, err
	}
	host, guest := counterparty.Host, counterparty.Guest

	protocol := entity.ProtocolForCountry(host.Country)
	if err := host.RequireOnboarded(); err != nil {
		s.logger.Warn("Transaction rejected, host not onboarded", map[string]any{
			"host_id": host.ID,
			"state":   string(host.OnboardingState()),
		})
		s.metrics.SettlementAttempt(string(protocol), OutcomeRejected)
		return nil, err
	}
	if !guest.HasProcessorCustomer() {
		return nil, errs.NewValidationError("guestId", "guest has no processor customer")
	}

	txn, err := entity.NewTransaction(s.newID(), host.ID, guest.ID, req.Amount, currency, protocol, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction accepted", map[string]any{
		"transaction_id": txn.ID,
		"host_id":        host.ID,
		"guest_id":       guest.ID,
		"amount":         txn.Amount,
		"currency":       txn.Currency,
		"host_share":     txn.HostShare,
		"platform_fee":   txn.PlatformFee,
		"protocol":       string(txn.Protocol),
	})

	return s.Settle(ctx, txn.ID)
}

// Settle moves a transaction from its recorded status towards settled.
// Concurrent calls for one transaction in this process share a single attempt;
// the transaction lease covers other processes. The shared attempt does not end
// when one caller goes away, it is bounded by the lease duration instead.
func (s *Service) Settle(ctx context.Context, transactionID string) (*usecase.SettlementResult, error) {
	if err := s.validator.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}

	attempt := s.inflight.DoChan(transactionID, func() (any, error) {
		attemptCtx, cancel := s.attemptContext(ctx)
		defer cancel()
		return s.settle(attemptCtx, transactionID)
	})

	select {
	case <-ctx.Done():
		s.logger.Warn("Caller left before the settlement attempt finished", map[string]any{
			"transaction_id": transactionID,
			"error":          ctx.Err().Error(),
		})
		return nil, ctx.Err()
	case res := <-attempt:
		result, _ := res.Val.(*usecase.SettlementResult)
		if res.Err != nil && !errs.IsPartialSettlementError(res.Err) {
			return nil, res.Err
		}
		return result, res.Err
	}
}

// attemptContext keeps the caller's values but not its cancellation
func (s *Service) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.config.LockTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.config.LockTimeout)
}

func (s *Service) settle(ctx context.Context, transactionID string) (*usecase.SettlementResult, error) {
	var result *usecase.SettlementResult

	err := lease.Run(ctx, s.locks, s.logger, lease.TransactionKey(transactionID), s.config.LockTimeout, func(ctx context.Context) error {
		txn, err := s.transactions.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}

		if txn.IsTerminal() {
			s.logger.Warn("Settlement retried after completion", map[string]any{
				"transaction_id": txn.ID,
				"reference":      txn.SettlementReference(),
			})
			s.metrics.SettlementAttempt(string(txn.Protocol), OutcomeDuplicate)
			return errs.NewDuplicateOperationError(txn.ID, lastStep(txn), txn.SettlementReference())
		}

		host, err := s.hosts.GetByID(ctx, txn.HostID)
		if err != nil {
			return err
		}
		if err := host.RequireOnboarded(); err != nil {
			s.metrics.SettlementAttempt(string(txn.Protocol), OutcomeRejected)
			return err
		}

		guest, err := s.guests.GetByID(ctx, txn.GuestID)
		if err != nil {
			return err
		}
		if !guest.HasProcessorCustomer() {
			return errs.NewValidationError("guestId", "guest has no processor customer")
		}

		updated, execErr := s.router.Execute(ctx, txn, host, guest)
		result = newSettlementResult(updated, host)
		s.metrics.SettlementAttempt(string(updated.Protocol), outcome(updated, execErr))

		if execErr == nil {
			s.logger.Info("Transaction settlement attempt finished", map[string]any{
				"transaction_id": updated.ID,
				"status":         string(updated.Status),
				"reference":      updated.SettlementReference(),
			})
		}
		return execErr
	})

	return result, err
}

// GetTransaction reads a transaction record
func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	if err := s.validator.ValidateTransactionID(transactionID); err != nil {
		return nil, err
	}
	return s.transactions.GetByID(ctx, transactionID)
}

// ListHostTransactions returns a host's recent transactions, the last 7 days when since is zero
func (s *Service) ListHostTransactions(ctx context.Context, hostID uint64, since time.Time) ([]*entity.Transaction, error) {
	if _, err := s.hosts.GetByID(ctx, hostID); err != nil {
		return nil, err
	}
	if since.IsZero() {
		since = s.timeProvider.Now().Add(-DefaultHistoryWindow)
	}
	return s.transactions.ListByHost(ctx, hostID, since)
}

func newSettlementResult(txn *entity.Transaction, host *entity.Host) *usecase.SettlementResult {
	return &usecase.SettlementResult{
		TransactionID:   txn.ID,
		HostID:          txn.HostID,
		HostDisplayName: host.DisplayName(),
		GuestID:         txn.GuestID,
		Amount:          txn.Amount,
		Currency:        txn.Currency,
		HostShare:       txn.HostShare,
		PlatformFee:     txn.PlatformFee,
		Protocol:        txn.Protocol,
		Status:          txn.Status,
		ChargeRef:       txn.ChargeRef,
		TransferRef:     txn.TransferRef,
		Reference:       txn.SettlementReference(),
	}
}

func outcome(txn *entity.Transaction, err error) string {
	switch {
	case err == nil && txn.Status == entity.StatusSettled:
		return OutcomeSettled
	case errs.IsPartialSettlementError(err), err == nil && txn.Status == entity.StatusCharged:
		return OutcomeCharged
	case isSettledElsewhere(err):
		return OutcomeDuplicate
	default:
		return OutcomeFailed
	}
}

// lastStep names the processor call that completed a settled transaction
func lastStep(txn *entity.Transaction) string {
	if txn.TransferRef != "" {
		return string(entity.StepTransfer)
	}
	return string(entity.StepCharge)
}
