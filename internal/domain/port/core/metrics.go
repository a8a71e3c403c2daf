package core

import "time"

// Metrics records settlement outcomes and processor latency
type Metrics interface {
	// SettlementAttempt records the outcome of one settle call (settled, charged, failed, duplicate, rejected)
	SettlementAttempt(protocol string, outcome string)
	// ProcessorCall records one call to the payment processor
	ProcessorCall(operation string, outcome string, elapsed time.Duration)
	// PayoutIssued records a payout request and the swept amount
	PayoutIssued(currency string, outcome string, amount int64)
	// OnboardingTransition records a host reaching a new onboarding state
	OnboardingTransition(state string)
}
