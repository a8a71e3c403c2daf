package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Processor   ProcessorConfig  `mapstructure:"processor"`
	Settlement  SettlementConfig `mapstructure:"settlement"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Metrics     MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// ProcessorConfig selects and configures the payment processor
type ProcessorConfig struct {
	Driver       string `mapstructure:"driver"` // stripe or memory
	SecretKey    string `mapstructure:"secretKey"`
	APIVersion   string `mapstructure:"apiVersion"` // must match the version the client library is pinned to
	PublicDomain string `mapstructure:"publicDomain"`
	AppName      string `mapstructure:"appName"`

	// Failed calls are surfaced to the caller, so the client does not retry on its own by default
	MaxNetworkRetries     int64 `mapstructure:"maxNetworkRetries"`
	RequestTimeoutSeconds int64 `mapstructure:"requestTimeoutSeconds"`
}

// RequestTimeout bounds one processor HTTP request. It has to stay below the
// settlement lease, or a slow call could outlive the lease that guards it.
func (c ProcessorConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SettlementConfig contains settlement and reconciliation settings
type SettlementConfig struct {
	LockTimeoutMs        int64 `mapstructure:"lockTimeoutMs"`
	ReconcileBatchSize   int   `mapstructure:"reconcileBatchSize"`
	ReconcileConcurrency int   `mapstructure:"reconcileConcurrency"`
	StaleAfterSeconds    int64 `mapstructure:"staleAfterSeconds"`
}

// LockTimeout returns the lease duration for host and transaction locks
func (c SettlementConfig) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMs) * time.Millisecond
}

// StaleAfter returns how long a transaction must be untouched before reconciliation retries it
func (c SettlementConfig) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterSeconds) * time.Second
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
