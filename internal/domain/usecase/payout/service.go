package payout

import (
	"context"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// Payout outcomes reported to metrics
const (
	OutcomeIssued  = "issued"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Service implements usecase.PayoutUseCase
type Service struct {
	hosts        persistence.HostRepository
	transactions persistence.TransactionRepository
	processor    processor.PaymentProcessor
	logger       coreport.Logger
	metrics      coreport.Metrics
	appName      string
}

// NewService creates a new payout service
func NewService(
	hosts persistence.HostRepository,
	transactions persistence.TransactionRepository,
	paymentProcessor processor.PaymentProcessor,
	logger coreport.Logger,
	metrics coreport.Metrics,
	appName string,
) *Service {
	return &Service{
		hosts:        hosts,
		transactions: transactions,
		processor:    paymentProcessor,
		logger:       logger,
		metrics:      metrics,
		appName:      appName,
	}
}

// Payout sweeps the full available balance of the host in currency
func (s *Service) Payout(ctx context.Context, hostID uint64, currency string) (*usecase.PayoutResult, error) {
	host, err := s.onboardedHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	currency, err = s.currencyFor(host, currency)
	if err != nil {
		return nil, err
	}

	balance, err := s.processor.RetrieveBalance(ctx, host.ProcessorAccountID)
	if err != nil {
		s.metrics.PayoutIssued(currency, OutcomeFailed, 0)
		return nil, err
	}

	available := balance.AvailableFor(currency)
	if available <= 0 {
		s.logger.Info("No available balance to pay out", map[string]any{
			"host_id":  hostID,
			"currency": currency,
		})
		s.metrics.PayoutIssued(currency, OutcomeSkipped, 0)
		return &usecase.PayoutResult{HostID: hostID, Currency: currency, Skipped: true}, nil
	}

	payout, err := s.processor.CreatePayout(ctx, processor.PayoutRequest{
		AccountID:           host.ProcessorAccountID,
		Amount:              available,
		Currency:            currency,
		StatementDescriptor: s.appName,
	})
	if err != nil {
		s.logger.Error("Failed to create payout", map[string]any{
			"host_id":  hostID,
			"amount":   available,
			"currency": currency,
			"error":    err.Error(),
		})
		s.metrics.PayoutIssued(currency, OutcomeFailed, available)
		return nil, err
	}

	s.logger.Info("Payout issued", map[string]any{
		"host_id":   hostID,
		"payout_id": payout.ID,
		"amount":    payout.Amount,
		"currency":  currency,
		"status":    payout.Status,
	})
	s.metrics.PayoutIssued(currency, OutcomeIssued, payout.Amount)

	return &usecase.PayoutResult{
		HostID:      hostID,
		PayoutID:    payout.ID,
		Amount:      payout.Amount,
		Currency:    currency,
		Status:      payout.Status,
		ArrivalDate: payout.ArrivalDate,
	}, nil
}

// Summary reports the processor balance and the recorded earnings of a host
func (s *Service) Summary(ctx context.Context, hostID uint64) (*usecase.BalanceSummary, error) {
	host, err := s.onboardedHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	currency := entity.SettlementCurrency(host.Country)

	balance, err := s.processor.RetrieveBalance(ctx, host.ProcessorAccountID)
	if err != nil {
		return nil, err
	}

	earned, err := s.transactions.SumHostShares(ctx, hostID)
	if err != nil {
		return nil, err
	}

	return &usecase.BalanceSummary{
		HostID:      hostID,
		DisplayName: host.DisplayName(),
		Currency:    currency,
		Available:   balance.AvailableFor(currency),
		Pending:     balance.PendingFor(currency),
		TotalEarned: earned,
	}, nil
}

func (s *Service) onboardedHost(ctx context.Context, hostID uint64) (*entity.Host, error) {
	host, err := s.hosts.GetByID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if err := host.RequireOnboarded(); err != nil {
		s.logger.Warn("Payout rejected, host not onboarded", map[string]any{
			"host_id": hostID,
			"state":   string(host.OnboardingState()),
		})
		return nil, err
	}
	return host, nil
}

func (s *Service) currencyFor(host *entity.Host, requested string) (string, error) {
	if requested == "" {
		return entity.SettlementCurrency(host.Country), nil
	}
	return entity.NormalizeCurrency(requested)
}
