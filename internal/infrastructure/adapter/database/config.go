package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string // database name, or file path for sqlite (":memory:" for a private in-memory database)
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	return &Config{
		Driver:          conf.Database.Driver,
		Host:            conf.Database.Host,
		Port:            ParsePort(conf.Database.Port),
		Username:        conf.Database.Username,
		Password:        conf.Database.Password,
		Database:        conf.Database.Database,
		SSLMode:         conf.Database.SSLMode,
		MaxOpenConns:    conf.Database.MaxOpenConns,
		MaxIdleConns:    conf.Database.MaxIdleConns,
		ConnMaxLifetime: conf.Database.ConnMaxLifetime,
		ConnMaxIdleTime: conf.Database.ConnMaxIdleTime,
		QueryTimeout:    conf.Database.QueryTimeout,
		LogLevel:        conf.Logger.Level,
		RetryAttempts:   conf.Database.RetryAttempts,
		RetryDelay:      conf.Database.RetryDelay,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}
	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the database connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		if c.Database == ":memory:" {
			return "file::memory:?_busy_timeout=5000"
		}
		return "file:" + c.Database + "?_busy_timeout=5000&_journal_mode=WAL"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParsePort converts a port string to an int, 0 when it is not a valid port
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
