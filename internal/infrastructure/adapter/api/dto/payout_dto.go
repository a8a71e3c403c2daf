package dto

import (
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// PayoutRequest optionally names the currency to sweep
type PayoutRequest struct {
	Currency string `json:"currency"`
}

// PayoutResponse represents an issued or skipped payout
type PayoutResponse struct {
	HostID      uint64     `json:"hostId"`
	PayoutID    string     `json:"payoutId,omitempty"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status,omitempty"`
	ArrivalDate *time.Time `json:"arrivalDate,omitempty"`
	Skipped     bool       `json:"skipped"`
}

// NewPayoutResponse maps a payout result
func NewPayoutResponse(result *usecase.PayoutResult) PayoutResponse {
	return PayoutResponse{
		HostID:      result.HostID,
		PayoutID:    result.PayoutID,
		Amount:      result.Amount,
		Currency:    result.Currency,
		Status:      result.Status,
		ArrivalDate: optionalTime(result.ArrivalDate),
		Skipped:     result.Skipped,
	}
}

// DashboardResponse is the balance view of a host
type DashboardResponse struct {
	HostID      uint64 `json:"hostId"`
	DisplayName string `json:"displayName"`
	Currency    string `json:"currency"`
	Available   int64  `json:"available"`
	Pending     int64  `json:"pending"`
	TotalEarned int64  `json:"totalEarned"`
}

// NewDashboardResponse maps a balance summary
func NewDashboardResponse(summary *usecase.BalanceSummary) DashboardResponse {
	return DashboardResponse{
		HostID:      summary.HostID,
		DisplayName: summary.DisplayName,
		Currency:    summary.Currency,
		Available:   summary.Available,
		Pending:     summary.Pending,
		TotalEarned: summary.TotalEarned,
	}
}
