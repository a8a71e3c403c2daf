package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/amirhossein-jamali/settlement-engine/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/settlement-engine/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconciler_Run(t *testing.T) {
	staleAfter := 10 * time.Minute
	olderThan := fixedTime.Add(-staleAfter)

	candidates := []*entity.Transaction{
		{ID: "settles", Status: entity.StatusCharged},
		{ID: "still-failing", Status: entity.StatusCharged},
		{ID: "done-elsewhere", Status: entity.StatusCharged},
		{ID: "locked", Status: entity.StatusPending},
		{ID: "declined", Status: entity.StatusPending},
	}
	transient := errs.NewUpstreamProcessorError(processor.OpCreateTransfer, errs.Transient, "", "timeout", nil)
	declined := errs.NewUpstreamProcessorError(processor.OpPlatformCharge, errs.Permanent, "card_declined", "declined", nil)

	tests := []struct {
		name           string
		setupMocks     func(*mockpersistence.MockTransactionRepository, *mockusecase.MockSettlementUseCase)
		expectedReport ReconcileReport
		expectedErr    error
	}{
		{
			name: "Classifies every outcome",
			setupMocks: func(txns *mockpersistence.MockTransactionRepository, settler *mockusecase.MockSettlementUseCase) {
				txns.On("ListRetryable", mock.Anything, olderThan, 50).Return(candidates, nil).Once()
				settler.On("Settle", mock.Anything, "settles").Return(&usecase.SettlementResult{Status: entity.StatusSettled}, nil).Once()
				settler.On("Settle", mock.Anything, "still-failing").
					Return(&usecase.SettlementResult{Status: entity.StatusCharged}, errs.NewPartialSettlementError("still-failing", "ch_1", transient)).Once()
				settler.On("Settle", mock.Anything, "done-elsewhere").
					Return(nil, errs.NewDuplicateOperationError("done-elsewhere", "transfer", "tr_9")).Once()
				settler.On("Settle", mock.Anything, "locked").Return(nil, errs.ErrResourceLocked).Once()
				settler.On("Settle", mock.Anything, "declined").Return(nil, declined).Once()
			},
			expectedReport: ReconcileReport{Scanned: 5, Settled: 1, Partial: 1, Failed: 1, Skipped: 2},
		},
		{
			name: "Nothing to do",
			setupMocks: func(txns *mockpersistence.MockTransactionRepository, settler *mockusecase.MockSettlementUseCase) {
				txns.On("ListRetryable", mock.Anything, olderThan, 50).Return([]*entity.Transaction{}, nil).Once()
			},
			expectedReport: ReconcileReport{},
		},
		{
			name: "Store unavailable",
			setupMocks: func(txns *mockpersistence.MockTransactionRepository, settler *mockusecase.MockSettlementUseCase) {
				txns.On("ListRetryable", mock.Anything, olderThan, 50).Return(nil, errs.ErrDatabaseConnection).Once()
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := mockpersistence.NewMockTransactionRepository(t)
			settler := mockusecase.NewMockSettlementUseCase(t)
			tt.setupMocks(txns, settler)

			reconciler := NewReconciler(settler, txns, fixedClock{}, logger.NewNoopLogger(), ReconcilerConfig{
				BatchSize:   50,
				Concurrency: 2,
				StaleAfter:  staleAfter,
			})

			report, err := reconciler.Run(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedReport.Scanned, report.Scanned)
			assert.Equal(t, tt.expectedReport.Settled, report.Settled)
			assert.Equal(t, tt.expectedReport.Partial, report.Partial)
			assert.Equal(t, tt.expectedReport.Failed, report.Failed)
			assert.Equal(t, tt.expectedReport.Skipped, report.Skipped)
			assert.Len(t, report.Failures, tt.expectedReport.Partial+tt.expectedReport.Failed)
		})
	}
}

func TestReconciler_RetriesThroughSettlement(t *testing.T) {
	f := newFixture(t)
	f.expectParties(onboardedHost("US", "acct_us"), chargeableGuest())

	txn, err := entity.NewTransaction(txID, 10, 20, 5000, "usd", entity.IndirectSettlement,
		fixedClock{at: fixedTime.Add(-time.Hour)}, entity.WithStatus(entity.StatusCharged), entity.WithChargeRef("ch_1"))
	require.NoError(t, err)
	require.NoError(t, f.txns.Create(context.Background(), txn))

	f.processor.On("CreateTransfer", mock.Anything, mock.Anything).Return(&processor.Transfer{ID: "tr_1"}, nil).Once()

	reconciler := NewReconciler(f.svc, f.txns, fixedClock{}, logger.NewNoopLogger(), ReconcilerConfig{StaleAfter: time.Minute})

	report, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Settled)

	// A second pass finds nothing left to retry.
	report, err = reconciler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	f.processor.AssertNumberOfCalls(t, "CreateTransfer", 1)
	f.processor.AssertNotCalled(t, "CreatePlatformCharge", mock.Anything, mock.Anything)
}

func TestReconciler_CancelledContext(t *testing.T) {
	txns := mockpersistence.NewMockTransactionRepository(t)
	settler := mockusecase.NewMockSettlementUseCase(t)
	txns.On("ListRetryable", mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Transaction{{ID: "a"}, {ID: "b"}}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewReconciler(settler, txns, fixedClock{}, logger.NewNoopLogger(), ReconcilerConfig{}).Run(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 2, report.Skipped)
	settler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
}

// unrecordedCharge loses the first charge write, as when the node stops between the charge and the store update
type unrecordedCharge struct {
	*memoryTransactions
	lost bool
}

func (u *unrecordedCharge) RecordCharge(ctx context.Context, id, chargeRef string, next entity.SettlementStatus) error {
	if !u.lost {
		u.lost = true
		return errs.ErrDatabaseConnection
	}
	return u.memoryTransactions.RecordCharge(ctx, id, chargeRef, next)
}

func TestReconciler_RecoversChargeThatWasNeverRecorded(t *testing.T) {
	f := newFixture(t)
	f.expectParties(onboardedHost("US", "acct_us"), chargeableGuest())
	txns := &unrecordedCharge{memoryTransactions: f.txns}

	svc := NewService(txns, f.hosts, f.guests, f.locks, f.resolver, f.processor, fixedClock{at: fixedTime.Add(-time.Hour)},
		logger.NewNoopLogger(), f.metrics, Config{AppName: "Rooms", LockTimeout: 30 * time.Second})
	svc.newID = func() string { return txID }

	f.processor.On("CreatePlatformCharge", mock.Anything, mock.MatchedBy(func(req processor.PlatformChargeRequest) bool {
		return req.IdempotencyKey == txID+":charge:0"
	})).Return(&processor.Charge{ID: "ch_1", Amount: 5000, Currency: "usd"}, nil).Twice()

	_, err := svc.SubmitTransaction(context.Background(), usecase.SubmitTransactionRequest{Amount: 5000, Currency: "usd"})
	require.ErrorIs(t, err, errs.ErrDatabaseConnection)

	stored, err := txns.GetByID(context.Background(), txID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Empty(t, stored.ChargeRef)
	assert.Empty(t, stored.LastError)

	f.processor.On("CreateTransfer", mock.Anything, mock.MatchedBy(func(req processor.TransferRequest) bool {
		return req.SourceTransaction == "ch_1" && req.Amount == 4000
	})).Return(&processor.Transfer{ID: "tr_1"}, nil).Once()

	reconciler := NewReconciler(svc, txns, fixedClock{}, logger.NewNoopLogger(), ReconcilerConfig{StaleAfter: time.Minute})
	report, err := reconciler.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Settled)

	stored, err = txns.GetByID(context.Background(), txID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSettled, stored.Status)
	assert.Equal(t, "ch_1", stored.ChargeRef)
	assert.Equal(t, "tr_1", stored.TransferRef)
	f.processor.AssertNumberOfCalls(t, "CreatePlatformCharge", 2)
	f.processor.AssertNumberOfCalls(t, "CreateTransfer", 1)
}
