package repository

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LockRepository implements persistence.LockRepository on the settlement_locks table
type LockRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	newOwner     func() string
}

// NewLockRepository creates a new LockRepository instance
func NewLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		newOwner:     uuid.NewString,
	}
}

// AcquireLock takes the lease for key in one upsert. An existing row is only
// taken over when its lease has expired.
func (r *LockRepository) AcquireLock(ctx context.Context, key string, duration time.Duration) (string, error) {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)
	owner := r.newOwner()

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO settlement_locks (lock_key, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (lock_key) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE settlement_locks.expires_at <= ?`,
		key, owner, now, expiresAt, now, now,
		now,
	)
	if result.Error != nil {
		return "", dbError(r.logger, "acquire lock", result.Error, map[string]any{"lock_key": key})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Lease held by another owner", map[string]any{
			"lock_key": key,
		})
		return "", errs.ErrResourceLocked
	}

	r.logger.Debug("Lease acquired", map[string]any{
		"lock_key":   key,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return owner, nil
}

// ReleaseLock deletes the lease only while owner still holds it
func (r *LockRepository) ReleaseLock(ctx context.Context, key string, owner string) error {
	result := r.db.WithContext(ctx).
		Where("lock_key = ? AND owner = ?", key, owner).
		Delete(&model.SettlementLock{})
	if result.Error != nil {
		return dbError(r.logger, "release lock", result.Error, map[string]any{"lock_key": key})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Lease already expired or taken over", map[string]any{
			"lock_key": key,
		})
	}
	return nil
}

// CleanupExpiredLocks removes leases whose expiry has passed
func (r *LockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", r.timeProvider.Now()).
		Delete(&model.SettlementLock{})
	if result.Error != nil {
		return 0, dbError(r.logger, "cleanup expired locks", result.Error, nil)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Cleaned up expired leases", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
