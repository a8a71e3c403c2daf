package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database"
)

var baseTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

// manualClock is a TimeProvider that only moves when a test advances it
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: baseTime}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *manualClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

func (c *manualClock) Sleep(coreport.Duration) {}

func (c *manualClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

func setupTestDB(t *testing.T) (*database.TestDBManager, *manualClock) {
	t.Helper()
	return database.NewTestDBManager(t), newManualClock()
}
