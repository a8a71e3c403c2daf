package settlement

import (
	"context"
	"errors"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"golang.org/x/sync/errgroup"
)

// ReconcilerConfig bounds one reconciliation pass
type ReconcilerConfig struct {
	BatchSize   int
	Concurrency int
	StaleAfter  time.Duration // only transactions untouched for this long are retried
}

// ReconcileReport summarizes one reconciliation pass
type ReconcileReport struct {
	Scanned  int
	Settled  int
	Partial  int
	Failed   int
	Skipped  int
	Failures map[string]string // transaction id to error message
}

// Reconciler retries charged transactions and stale pending transactions whose charge was not declined.
// Every retry goes through Settle, so a pass can be repeated safely.
type Reconciler struct {
	settler      usecase.SettlementUseCase
	transactions persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       ReconcilerConfig
}

// NewReconciler creates a new reconciler
func NewReconciler(
	settler usecase.SettlementUseCase,
	transactions persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config ReconcilerConfig,
) *Reconciler {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 4
	}
	return &Reconciler{
		settler:      settler,
		transactions: transactions,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Run performs one pass over the retryable transactions
func (r *Reconciler) Run(ctx context.Context) (*ReconcileReport, error) {
	olderThan := r.timeProvider.Now().Add(-r.config.StaleAfter)

	txns, err := r.transactions.ListRetryable(ctx, olderThan, r.config.BatchSize)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{
		Scanned:  len(txns),
		Failures: make(map[string]string),
	}
	if len(txns) == 0 {
		return report, nil
	}

	r.logger.Info("Reconciliation started", map[string]any{
		"candidates":  len(txns),
		"concurrency": r.config.Concurrency,
	})

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.config.Concurrency)

	for _, txn := range txns {
		id := txn.ID
		g.Go(func() error {
			if ctx.Err() != nil {
				mu.Lock()
				report.Skipped++
				mu.Unlock()
				return nil
			}

			_, settleErr := r.settler.Settle(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case settleErr == nil:
				report.Settled++
			case errs.IsPartialSettlementError(settleErr):
				report.Partial++
				report.Failures[id] = settleErr.Error()
			case errs.IsDuplicateOperationError(settleErr), errs.IsResourceLockedError(settleErr), errors.Is(settleErr, errs.ErrStaleRecord):
				report.Skipped++
			default:
				report.Failed++
				report.Failures[id] = settleErr.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Info("Reconciliation finished", map[string]any{
		"scanned": report.Scanned,
		"settled": report.Settled,
		"partial": report.Partial,
		"failed":  report.Failed,
		"skipped": report.Skipped,
	})
	return report, ctx.Err()
}
