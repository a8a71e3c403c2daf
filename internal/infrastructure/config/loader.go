package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads configs/<env>.yaml from the given paths and applies defaults and SE_ overrides.
// A missing file is not an error; defaults and the environment are enough for local runs.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, processor calls can be slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("processor.driver", "stripe")
	v.SetDefault("processor.publicDomain", "http://localhost:8080")
	v.SetDefault("processor.appName", "Rocket Rides")
	v.SetDefault("processor.maxNetworkRetries", 0)
	v.SetDefault("processor.requestTimeoutSeconds", 20)

	v.SetDefault("settlement.lockTimeoutMs", 30000)
	v.SetDefault("settlement.reconcileBatchSize", 100)
	v.SetDefault("settlement.reconcileConcurrency", 4)
	v.SetDefault("settlement.staleAfterSeconds", 60)

	v.SetDefault("auth.issuer", "settlement-engine")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on SE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over the config file for secrets and deploy-specific values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"SE_DB_DRIVER":               "database.driver",
		"SE_DB_HOST":                 "database.host",
		"SE_DB_PORT":                 "database.port",
		"SE_DB_USERNAME":             "database.username",
		"SE_DB_PASSWORD":             "database.password",
		"SE_DB_NAME":                 "database.database",
		"SE_DB_SSL_MODE":             "database.sslMode",
		"SE_SERVER_HOST":             "server.host",
		"SE_SERVER_PORT":             "server.port",
		"SE_LOGGER_LEVEL":            "logger.level",
		"SE_PROCESSOR_DRIVER":        "processor.driver",
		"SE_PROCESSOR_SECRET_KEY":    "processor.secretKey",
		"SE_PROCESSOR_API_VERSION":   "processor.apiVersion",
		"SE_PROCESSOR_PUBLIC_DOMAIN": "processor.publicDomain",
		"SE_APP_NAME":                "processor.appName",
		"SE_AUTH_JWT_SECRET":         "auth.jwtSecret",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("SE_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("SE_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("SE_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if lockTimeout := getEnvInt("SE_SETTLEMENT_LOCK_TIMEOUT_MS", 0); lockTimeout > 0 {
		v.Set("settlement.lockTimeoutMs", lockTimeout)
	}
	if concurrency := getEnvInt("SE_SETTLEMENT_RECONCILE_CONCURRENCY", 0); concurrency > 0 {
		v.Set("settlement.reconcileConcurrency", concurrency)
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
