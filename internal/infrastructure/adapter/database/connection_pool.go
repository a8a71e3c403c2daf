package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// PoolStatsRecorder receives periodic connection pool statistics
type PoolStatsRecorder interface {
	RecordPoolStats(stats sql.DBStats)
}

// PoolMonitor samples the connection pool on an interval
type PoolMonitor struct {
	db       *sql.DB
	recorder PoolStatsRecorder
	logger   coreport.Logger
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(db *sql.DB, recorder PoolStatsRecorder, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		db:       db,
		recorder: recorder,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start records the current statistics and then keeps sampling until Stop
func (m *PoolMonitor) Start(interval time.Duration) {
	m.collect()

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop ends sampling and waits for the sampler to exit
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	<-m.done
}

func (m *PoolMonitor) collect() {
	stats := m.db.Stats()
	m.recorder.RecordPoolStats(stats)

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
