package model

import (
	"time"
)

// Guest represents the database model for guests
type Guest struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	Email               string    `gorm:"uniqueIndex;not null;size:255"`
	FirstName           string    `gorm:"not null;size:100"`
	LastName            string    `gorm:"size:100"`
	ProcessorCustomerID *string   `gorm:"uniqueIndex;size:255"`
	CreatedAt           time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Guest
func (Guest) TableName() string {
	return "guests"
}
