package model

import (
	"time"
)

// SettlementLock is an expiring lease on a host or transaction, keyed like "host:42"
type SettlementLock struct {
	LockKey   string    `gorm:"primaryKey;size:100"`
	Owner     string    `gorm:"not null;size:36"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SettlementLock
func (SettlementLock) TableName() string {
	return "settlement_locks"
}
