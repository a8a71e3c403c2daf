// Package lease runs an operation while holding a persisted, expiring lock so
// that two nodes never work on the same host or transaction at once.
package lease

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
)

// HostKey is the lease key of a host
func HostKey(hostID uint64) string {
	return fmt.Sprintf("host:%d", hostID)
}

// TransactionKey is the lease key of a transaction
func TransactionKey(transactionID string) string {
	return "transaction:" + transactionID
}

// Run acquires the lease for key, runs fn and releases the lease.
// The release survives cancellation of ctx; an unreleased lease expires after ttl.
func Run(
	ctx context.Context,
	locks persistence.LockRepository,
	logger coreport.Logger,
	key string,
	ttl time.Duration,
	fn func(ctx context.Context) error,
) error {
	owner, err := locks.AcquireLock(ctx, key, ttl)
	if err != nil {
		return err
	}

	defer func() {
		if releaseErr := locks.ReleaseLock(context.WithoutCancel(ctx), key, owner); releaseErr != nil {
			logger.Warn("Failed to release lease, it will expire on its own", map[string]any{
				"lock_key": key,
				"error":    releaseErr.Error(),
			})
		}
	}()

	return fn(ctx)
}
