package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	poolMonitor  *PoolMonitor
	poolRecorder PoolStatsRecorder
}

// NewManager creates a new database manager. recorder may be nil.
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, recorder PoolStatsRecorder) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		poolRecorder: recorder,
	}
}

// Connect opens the database, retrying transient failures, and configures the pool
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	retry := RetryConfig{
		MaxRetries:    max(m.config.RetryAttempts, 1),
		RetryInterval: max(m.config.RetryDelay, 100*time.Millisecond),
		MaxInterval:   max(m.config.RetryDelay, 100*time.Millisecond) * 4,
		JitterFactor:  0.2,
	}

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(m.dialector(), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt: m.config.Driver == DriverPostgres,
		})
		if openErr != nil {
			return openErr
		}
		return m.ping(ctx, gormDB)
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retry.MaxRetries, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		// One connection keeps an in-memory database alive and avoids SQLITE_BUSY on writes
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB

	if m.poolRecorder != nil {
		m.poolMonitor = NewPoolMonitor(sqlDB, m.poolRecorder, m.logger)
		m.poolMonitor.Start(30 * time.Second)
	}

	return m.db, nil
}

func (m *Manager) dialector() gorm.Dialector {
	if m.config.Driver == DriverSQLite {
		return sqlite.Open(m.config.DSN())
	}
	return postgres.Open(m.config.DSN())
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.ping(ctx, m.db)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Close stops pool monitoring and closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.poolMonitor != nil {
		m.poolMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}
