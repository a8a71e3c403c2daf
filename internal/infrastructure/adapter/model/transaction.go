package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID             string    `gorm:"primaryKey;size:36"`
	HostID         uint64    `gorm:"not null;index:idx_transactions_host_created,priority:1"`
	GuestID        uint64    `gorm:"not null;index"`
	Amount         int64     `gorm:"not null"`
	Currency       string    `gorm:"not null;size:3"`
	HostShare      int64     `gorm:"not null"`
	PlatformFee    int64     `gorm:"not null"`
	Protocol       string    `gorm:"not null;size:20"`
	Status         string    `gorm:"not null;size:20;index:idx_transactions_status_updated,priority:1"`
	ChargeRef      string    `gorm:"size:255"`
	TransferRef    string    `gorm:"size:255"`
	ChargeAttempts int       `gorm:"not null;default:0"`
	LastError      string    `gorm:"type:text"`
	LastErrorFinal bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null;index:idx_transactions_host_created,priority:2"`
	UpdatedAt      time.Time `gorm:"not null;index:idx_transactions_status_updated,priority:2"`
	SettledAt      *time.Time

	// Define relationships
	Host  Host  `gorm:"foreignKey:HostID;references:ID"`
	Guest Guest `gorm:"foreignKey:GuestID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
