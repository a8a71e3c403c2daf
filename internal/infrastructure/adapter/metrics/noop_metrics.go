package metrics

import (
	"database/sql"
	"time"
)

// NoopMetrics discards every measurement
type NoopMetrics struct{}

// NewNoopMetrics creates metrics for when the endpoint is disabled
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (NoopMetrics) SettlementAttempt(string, string)            {}
func (NoopMetrics) ProcessorCall(string, string, time.Duration) {}
func (NoopMetrics) PayoutIssued(string, string, int64)          {}
func (NoopMetrics) OnboardingTransition(string)                 {}
func (NoopMetrics) RecordPoolStats(sql.DBStats)                 {}
