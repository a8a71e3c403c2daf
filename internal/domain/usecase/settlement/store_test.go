package settlement

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// memoryTransactions is a TransactionRepository with the same conditional update
// rules as the SQL repository, used to follow a transaction across several calls.
type memoryTransactions struct {
	mu   sync.Mutex
	now  time.Time
	rows map[string]entity.Transaction
}

func newMemoryTransactions(now time.Time) *memoryTransactions {
	return &memoryTransactions{now: now, rows: make(map[string]entity.Transaction)}
}

func (m *memoryTransactions) Create(_ context.Context, txn *entity.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[txn.ID]; ok {
		return errs.ErrDuplicateRecord
	}
	m.rows[txn.ID] = *txn
	return nil
}

func (m *memoryTransactions) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return &row, nil
}

func (m *memoryTransactions) RecordCharge(_ context.Context, id, chargeRef string, next entity.SettlementStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.Status != entity.StatusPending || row.ChargeRef != "" {
		return errs.ErrStaleRecord
	}
	row.ChargeRef = chargeRef
	row.Status = next
	row.LastError = ""
	row.LastErrorFinal = false
	if next == entity.StatusSettled {
		settledAt := m.now
		row.SettledAt = &settledAt
	}
	m.rows[id] = row
	return nil
}

func (m *memoryTransactions) RecordTransfer(_ context.Context, id, transferRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.Status != entity.StatusCharged || row.TransferRef != "" {
		return errs.ErrStaleRecord
	}
	row.TransferRef = transferRef
	row.Status = entity.StatusSettled
	row.LastError = ""
	row.LastErrorFinal = false
	settledAt := m.now
	row.SettledAt = &settledAt
	m.rows[id] = row
	return nil
}

func (m *memoryTransactions) RecordFailure(_ context.Context, id, message string, permanent bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return errs.ErrTransactionNotFound
	}
	row.LastError = message
	row.LastErrorFinal = permanent
	if permanent && row.Status == entity.StatusPending {
		row.ChargeAttempts++
	}
	m.rows[id] = row
	return nil
}

func (m *memoryTransactions) ListRetryable(_ context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Transaction
	for _, row := range m.rows {
		row := row
		retryable := row.Status == entity.StatusCharged ||
			(row.Status == entity.StatusPending && !row.LastErrorFinal)
		if retryable && row.UpdatedAt.Before(olderThan) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryTransactions) ListByHost(_ context.Context, hostID uint64, since time.Time) ([]*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Transaction
	for _, row := range m.rows {
		row := row
		if row.HostID == hostID && !row.CreatedAt.Before(since) {
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *memoryTransactions) SumHostShares(_ context.Context, hostID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, row := range m.rows {
		if row.HostID == hostID && row.Status == entity.StatusSettled {
			total += row.HostShare
		}
	}
	return total, nil
}

// fixedClock is a TimeProvider stopped at one instant
type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	if c.at.IsZero() {
		return fixedTime
	}
	return c.at
}

func (c fixedClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

func (c fixedClock) Sleep(coreport.Duration) {}

func (c fixedClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// memoryLocks grants each key to one owner at a time, like the lock table
type memoryLocks struct {
	mu   sync.Mutex
	seq  int
	held map[string]string
}

func newMemoryLocks() *memoryLocks {
	return &memoryLocks{held: make(map[string]string)}
}

func (l *memoryLocks) AcquireLock(_ context.Context, key string, _ time.Duration) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return "", errs.ErrResourceLocked
	}
	l.seq++
	owner := fmt.Sprintf("owner-%d", l.seq)
	l.held[key] = owner
	return owner, nil
}

func (l *memoryLocks) ReleaseLock(_ context.Context, key string, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == owner {
		delete(l.held, key)
	}
	return nil
}

// CleanupExpiredLocks is a no-op: memoryLocks leases never expire
func (l *memoryLocks) CleanupExpiredLocks(_ context.Context) (int64, error) {
	return 0, nil
}
