package entity

import "github.com/shopspring/decimal"

// FeeSchedule splits a transaction amount between the host and the platform
type FeeSchedule struct {
	HostRate decimal.Decimal // share of the amount paid to the host, between 0 and 1
}

// DefaultFeeSchedule pays the host 80% and keeps 20% as the platform fee
var DefaultFeeSchedule = FeeSchedule{HostRate: decimal.RequireFromString("0.8")}

// Split divides a positive amount into the host share and the platform fee.
// The host share is rounded down and the platform keeps the remainder, so the
// two parts always add up to amount.
func (s FeeSchedule) Split(amount int64) (hostShare, platformFee int64) {
	hostShare = decimal.NewFromInt(amount).Mul(s.HostRate).Floor().IntPart()
	return hostShare, amount - hostShare
}

// SplitAmount applies the default schedule
func SplitAmount(amount int64) (hostShare, platformFee int64) {
	return DefaultFeeSchedule.Split(amount)
}
