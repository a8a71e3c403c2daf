package persistence

import (
	"context"
	"time"
)

// LockRepository provides expiring leases shared by every node, keyed by resource
// (for example "host:42" or "transaction:<uuid>")
type LockRepository interface {
	// AcquireLock takes the lease for key until duration elapses and returns the owner token.
	//
	// Possible errors:
	// - ErrResourceLocked: If another owner holds an unexpired lease
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, key string, duration time.Duration) (string, error)

	// ReleaseLock gives up a lease held by owner. Releasing an expired or foreign lease is a no-op.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ReleaseLock(ctx context.Context, key string, owner string) error

	// CleanupExpiredLocks removes leases whose expiry has passed
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}
