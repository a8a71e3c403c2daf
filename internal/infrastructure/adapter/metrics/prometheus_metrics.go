package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements core.Metrics and the database pool recorder on a private registry
type PrometheusMetrics struct {
	registry *prometheus.Registry

	settlementAttempts *prometheus.CounterVec
	processorCalls     *prometheus.CounterVec
	processorLatency   *prometheus.HistogramVec
	payouts            *prometheus.CounterVec
	payoutAmount       *prometheus.CounterVec
	onboarding         *prometheus.CounterVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
	dbWaitDuration    prometheus.Gauge
}

// NewPrometheusMetrics creates and registers every collector under namespace
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		settlementAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_attempts_total",
			Help:      "Settle calls by protocol and outcome.",
		}, []string{"protocol", "outcome"}),
		processorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processor_calls_total",
			Help:      "Payment processor calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		processorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processor_call_duration_seconds",
			Help:      "Payment processor call latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_total",
			Help:      "Payout requests by currency and outcome.",
		}, []string{"currency", "outcome"}),
		payoutAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_amount_minor_units_total",
			Help:      "Amount swept by issued payouts, in minor currency units.",
		}, []string{"currency"}),
		onboarding: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_transitions_total",
			Help:      "Hosts reaching an onboarding state.",
		}, []string{"state"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Open database connections.",
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Database connections in use.",
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "idle_connections",
			Help:      "Idle database connections.",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "wait_count",
			Help:      "Connections waited for since the pool opened.",
		}),
		dbWaitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "wait_duration_seconds",
			Help:      "Time spent waiting for connections since the pool opened.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.settlementAttempts,
		m.processorCalls,
		m.processorLatency,
		m.payouts,
		m.payoutAmount,
		m.onboarding,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.dbWaitDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *PrometheusMetrics) SettlementAttempt(protocol string, outcome string) {
	m.settlementAttempts.WithLabelValues(protocol, outcome).Inc()
}

func (m *PrometheusMetrics) ProcessorCall(operation string, outcome string, elapsed time.Duration) {
	m.processorCalls.WithLabelValues(operation, outcome).Inc()
	m.processorLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *PrometheusMetrics) PayoutIssued(currency string, outcome string, amount int64) {
	m.payouts.WithLabelValues(currency, outcome).Inc()
	if amount > 0 && outcome == "issued" {
		m.payoutAmount.WithLabelValues(currency).Add(float64(amount))
	}
}

func (m *PrometheusMetrics) OnboardingTransition(state string) {
	m.onboarding.WithLabelValues(state).Inc()
}

// RecordPoolStats publishes a database pool snapshot
func (m *PrometheusMetrics) RecordPoolStats(stats sql.DBStats) {
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
	m.dbWaitDuration.Set(stats.WaitDuration.Seconds())
}
