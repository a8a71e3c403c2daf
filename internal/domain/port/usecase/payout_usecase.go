package usecase

import (
	"context"
	"time"
)

// PayoutResult describes a payout request. Skipped is set when the available balance was zero.
type PayoutResult struct {
	HostID      uint64
	PayoutID    string
	Amount      int64
	Currency    string
	Status      string
	ArrivalDate time.Time
	Skipped     bool
}

// BalanceSummary is the dashboard view of a host's money
type BalanceSummary struct {
	HostID      uint64
	DisplayName string
	Currency    string
	Available   int64
	Pending     int64
	TotalEarned int64 // host share of settled transactions
}

// PayoutUseCase sweeps and reports host balances
type PayoutUseCase interface {
	// Payout pays out the full available balance in currency (the host's settlement currency when empty)
	Payout(ctx context.Context, hostID uint64, currency string) (*PayoutResult, error)

	// Summary reads the processor balance and the recorded host earnings
	Summary(ctx context.Context, hostID uint64) (*BalanceSummary, error)
}
