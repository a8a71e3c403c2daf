package payout

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/settlement-engine/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/settlement-engine/mocks/port/persistence"
	mockprocessor "github.com/amirhossein-jamali/settlement-engine/mocks/port/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func onboarded(country string) *entity.Host {
	return &entity.Host{
		ID:                 1,
		Type:               entity.HostTypeCompany,
		Country:            country,
		BusinessName:       "Rooms Inc",
		ProcessorAccountID: "acct_1",
		OnboardingComplete: true,
	}
}

func TestPayout(t *testing.T) {
	arrival := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		currency    string
		setupMocks  func(*mockpersistence.MockHostRepository, *mockprocessor.MockPaymentProcessor, *coremocks.MockMetrics)
		expectedAmt int64
		expectedCur string
		skipped     bool
		check       func(t *testing.T, err error)
	}{
		{
			name: "Sweeps the available balance in the settlement currency",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("JP"), nil).Once()
				pp.On("RetrieveBalance", mock.Anything, "acct_1").Return(&processor.Balance{
					Available: []processor.Money{{Amount: 2400, Currency: "jpy"}, {Amount: 50, Currency: "usd"}},
					Pending:   []processor.Money{{Amount: 800, Currency: "jpy"}},
				}, nil).Once()
				pp.On("CreatePayout", mock.Anything, processor.PayoutRequest{
					AccountID:           "acct_1",
					Amount:              2400,
					Currency:            "jpy",
					StatementDescriptor: "Rooms",
				}).Return(&processor.Payout{ID: "po_1", Amount: 2400, Currency: "jpy", Status: "pending", ArrivalDate: arrival}, nil).Once()
				metrics.EXPECT().PayoutIssued("jpy", OutcomeIssued, int64(2400)).Return().Once()
			},
			expectedAmt: 2400,
			expectedCur: "jpy",
		},
		{
			name:     "Explicit currency",
			currency: "USD",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("JP"), nil).Once()
				pp.On("RetrieveBalance", mock.Anything, "acct_1").Return(&processor.Balance{
					Available: []processor.Money{{Amount: 50, Currency: "usd"}},
				}, nil).Once()
				pp.On("CreatePayout", mock.Anything, mock.MatchedBy(func(req processor.PayoutRequest) bool {
					return req.Amount == 50 && req.Currency == "usd"
				})).Return(&processor.Payout{ID: "po_2", Amount: 50, Currency: "usd"}, nil).Once()
				metrics.EXPECT().PayoutIssued("usd", OutcomeIssued, int64(50)).Return().Once()
			},
			expectedAmt: 50,
			expectedCur: "usd",
		},
		{
			name: "Zero balance is a no-op",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("US"), nil).Once()
				pp.On("RetrieveBalance", mock.Anything, "acct_1").Return(&processor.Balance{}, nil).Once()
				metrics.EXPECT().PayoutIssued("usd", OutcomeSkipped, int64(0)).Return().Once()
			},
			expectedCur: "usd",
			skipped:     true,
		},
		{
			name: "Host not onboarded",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				host := onboarded("US")
				host.OnboardingComplete = false
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(host, nil).Once()
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsNotOnboardedError(err))
			},
		},
		{
			name: "Processor failure is surfaced",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("US"), nil).Once()
				pp.On("RetrieveBalance", mock.Anything, "acct_1").Return(&processor.Balance{
					Available: []processor.Money{{Amount: 900, Currency: "usd"}},
				}, nil).Once()
				pp.On("CreatePayout", mock.Anything, mock.Anything).
					Return(nil, errs.NewUpstreamProcessorError(processor.OpCreatePayout, errs.Permanent, "balance_insufficient", "insufficient funds", nil)).Once()
				metrics.EXPECT().PayoutIssued("usd", OutcomeFailed, int64(900)).Return().Once()
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsPermanentProcessorError(err))
			},
		},
		{
			name:     "Malformed currency",
			currency: "dollars",
			setupMocks: func(hosts *mockpersistence.MockHostRepository, pp *mockprocessor.MockPaymentProcessor, metrics *coremocks.MockMetrics) {
				hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("US"), nil).Once()
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsValidationError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hosts := mockpersistence.NewMockHostRepository(t)
			pp := mockprocessor.NewMockPaymentProcessor(t)
			metrics := coremocks.NewMockMetrics(t)
			tt.setupMocks(hosts, pp, metrics)

			svc := NewService(hosts, mockpersistence.NewMockTransactionRepository(t), pp, logger.NewNoopLogger(), metrics, "Rooms")
			result, err := svc.Payout(context.Background(), 1, tt.currency)

			if tt.check != nil {
				tt.check(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.skipped, result.Skipped)
			assert.Equal(t, tt.expectedAmt, result.Amount)
			assert.Equal(t, tt.expectedCur, result.Currency)
		})
	}
}

func TestSummary(t *testing.T) {
	hosts := mockpersistence.NewMockHostRepository(t)
	txns := mockpersistence.NewMockTransactionRepository(t)
	pp := mockprocessor.NewMockPaymentProcessor(t)

	hosts.On("GetByID", mock.Anything, uint64(1)).Return(onboarded("US"), nil).Once()
	pp.On("RetrieveBalance", mock.Anything, "acct_1").Return(&processor.Balance{
		Available: []processor.Money{{Amount: 4000, Currency: "usd"}},
		Pending:   []processor.Money{{Amount: 1600, Currency: "usd"}},
	}, nil).Once()
	txns.On("SumHostShares", mock.Anything, uint64(1)).Return(int64(5600), nil).Once()

	svc := NewService(hosts, txns, pp, logger.NewNoopLogger(), coremocks.NewMockMetrics(t), "Rooms")
	summary, err := svc.Summary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Rooms Inc", summary.DisplayName)
	assert.Equal(t, "usd", summary.Currency)
	assert.Equal(t, int64(4000), summary.Available)
	assert.Equal(t, int64(1600), summary.Pending)
	assert.Equal(t, int64(5600), summary.TotalEarned)
}
