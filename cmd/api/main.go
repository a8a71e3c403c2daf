package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/app"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	application, err := app.New(startupCtx, cfg, appLogger)
	if err != nil {
		cancelStartup()
		appLogger.Error("Failed to initialize application", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = application.Close() }()

	// Run migrations
	if err := application.Migrate(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed demo guests outside production
	if cfg.Environment != config.Production {
		_ = migration.SeedDefaultGuests(startupCtx, application.Guests, appLogger)
	}
	cancelStartup()

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, cfg.Server.AllowedOrigins, appLogger)

	var metricsEndpoint *routes.MetricsEndpoint
	if application.MetricsHTTP != nil {
		metricsEndpoint = &routes.MetricsEndpoint{Path: cfg.Metrics.Path, Handler: application.MetricsHTTP}
	}
	routes.SetupRoutes(router, routes.Handlers{
		Host:        handler.NewHostHandler(application.Onboarding, application.Tokens, appLogger),
		Payout:      handler.NewPayoutHandler(application.Payouts, appLogger),
		Transaction: handler.NewTransactionHandler(application.Settlement, appLogger),
		Guest:       handler.NewGuestHandler(application.Guests, application.Tokens, appLogger),
		Health:      handler.NewHealthHandler(application.Database, appLogger),
	}, application.Tokens, metricsEndpoint, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":             server.Addr,
			"env":              cfg.Environment,
			"processor_driver": cfg.Processor.Driver,
			"database_driver":  cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (sqlite file path)")
		}
	case database.DriverPostgres:
		required := []struct{ key, value string }{
			{"database.host (or SE_DB_HOST)", cfg.Database.Host},
			{"database.port (or SE_DB_PORT)", cfg.Database.Port},
			{"database.username (or SE_DB_USERNAME)", cfg.Database.Username},
			{"database.password (or SE_DB_PASSWORD)", cfg.Database.Password},
			{"database.database (or SE_DB_NAME)", cfg.Database.Database},
		}
		for _, r := range required {
			if r.value == "" {
				missingConfigs = append(missingConfigs, r.key)
			}
		}
	default:
		return fmt.Errorf("invalid database.driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate processor configuration
	switch cfg.Processor.Driver {
	case processor.DriverStripe:
		if cfg.Processor.SecretKey == "" {
			missingConfigs = append(missingConfigs, "processor.secretKey (or SE_PROCESSOR_SECRET_KEY)")
		}
		if cfg.Processor.MaxNetworkRetries < 0 {
			return fmt.Errorf("invalid processor.maxNetworkRetries: %d", cfg.Processor.MaxNetworkRetries)
		}
		if cfg.Processor.RequestTimeoutSeconds <= 0 {
			missingConfigs = append(missingConfigs, "processor.requestTimeoutSeconds")
		} else if cfg.Processor.RequestTimeout() >= cfg.Settlement.LockTimeout() {
			return fmt.Errorf("processor.requestTimeoutSeconds (%s) must be shorter than settlement.lockTimeoutMs (%s)",
				cfg.Processor.RequestTimeout(), cfg.Settlement.LockTimeout())
		}
	case processor.DriverMemory:
		if cfg.Environment == config.Production {
			return fmt.Errorf("processor.driver %q is not allowed in production", processor.DriverMemory)
		}
	default:
		return fmt.Errorf("invalid processor.driver: %q, must be %s or %s",
			cfg.Processor.Driver, processor.DriverStripe, processor.DriverMemory)
	}

	if cfg.Processor.PublicDomain == "" {
		missingConfigs = append(missingConfigs, "processor.publicDomain")
	}

	// Validate settlement configuration
	if cfg.Settlement.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "settlement.lockTimeoutMs")
	}

	if cfg.Settlement.ReconcileConcurrency == 0 {
		missingConfigs = append(missingConfigs, "settlement.reconcileConcurrency")
	}

	// Validate auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or SE_AUTH_JWT_SECRET)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
