package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a private in-memory database, migrates it and closes it when the test ends
func NewTestDBManager(t *testing.T) *TestDBManager {
	t.Helper()

	logger := applogger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        DriverSQLite,
		Database:      ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider, nil)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the test database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestHost inserts a host row and returns it
func (m *TestDBManager) CreateTestHost(t *testing.T, email string, accountID string, onboarded bool) model.Host {
	t.Helper()

	now := m.TimeProvider.Now()
	host := model.Host{
		Email:              email,
		Type:               "individual",
		Country:            "US",
		FirstName:          "Test",
		LastName:           "Host",
		OnboardingComplete: onboarded,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if accountID != "" {
		host.ProcessorAccountID = &accountID
	}

	if err := m.DB().Create(&host).Error; err != nil {
		t.Fatalf("Failed to create test host: %v", err)
	}
	return host
}

// CreateTestGuest inserts a guest row and returns it
func (m *TestDBManager) CreateTestGuest(t *testing.T, email string, customerID string) model.Guest {
	t.Helper()

	guest := model.Guest{
		Email:     email,
		FirstName: "Test",
		LastName:  "Guest",
		CreatedAt: m.TimeProvider.Now(),
	}
	if customerID != "" {
		guest.ProcessorCustomerID = &customerID
	}

	if err := m.DB().Create(&guest).Error; err != nil {
		t.Fatalf("Failed to create test guest: %v", err)
	}
	return guest
}
