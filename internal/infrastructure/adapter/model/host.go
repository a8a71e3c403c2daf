package model

import (
	"time"
)

// Host represents the database model for hosts
type Host struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	Email              string    `gorm:"uniqueIndex;not null;size:255"`
	Type               string    `gorm:"not null;size:20"`
	Country            string    `gorm:"not null;size:2"`
	FirstName          string    `gorm:"size:100"`
	LastName           string    `gorm:"size:100"`
	BusinessName       string    `gorm:"size:255"`
	ProcessorAccountID *string   `gorm:"uniqueIndex;size:255"` // NULL until onboarding starts
	OnboardingComplete bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null;index"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for Host
func (Host) TableName() string {
	return "hosts"
}
