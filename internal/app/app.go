// Package app wires configuration, storage, the payment processor and the use cases
// into one container shared by the HTTP server and the operator CLI.
package app

import (
	"context"
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/counterparty"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/guest"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/payout"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/settlement"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "settlement"

// App holds the wired dependencies
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Database     *database.Manager
	Metrics      coreport.Metrics
	MetricsHTTP  http.Handler // nil when metrics are disabled
	Processor    processorport.PaymentProcessor
	Tokens       *middleware.TokenAuthority

	Onboarding *onboarding.Service
	Payouts    *payout.Service
	Settlement *settlement.Service
	Guests     *guest.Service
	Reconciler *settlement.Reconciler
}

// NewLogger builds the zap logger described by the configuration
func NewLogger(cfg *config.Config) (coreport.Logger, error) {
	return logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
		Output:     cfg.Logger.Output,
	})
}

// New connects to the database and builds every service. Close releases what it opened.
func New(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (*App, error) {
	tp := timeprovider.NewRealTimeProvider()

	a := &App{
		Config:       cfg,
		Logger:       appLogger,
		TimeProvider: tp,
		Tokens:       middleware.NewTokenAuthority(cfg.Auth.JWTSecret, cfg.Auth.Issuer, tp),
	}

	var poolRecorder database.PoolStatsRecorder
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusMetrics(MetricsNamespace)
		a.Metrics = prom
		a.MetricsHTTP = prom.Handler()
		poolRecorder = prom
	} else {
		a.Metrics = metrics.NewNoopMetrics()
	}

	a.Database = database.NewManager(database.FromAppConfig(cfg), appLogger, tp, poolRecorder)
	if _, err := a.Database.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	paymentProcessor, err := processor.New(cfg.Processor, a.Metrics, tp, appLogger)
	if err != nil {
		_ = a.Database.Close()
		return nil, fmt.Errorf("create payment processor: %w", err)
	}
	a.Processor = paymentProcessor

	db := a.Database.DB()
	hosts := repository.NewHostRepository(db, tp, appLogger)
	guests := repository.NewGuestRepository(db, appLogger)
	transactions := repository.NewTransactionRepository(db, tp, appLogger)
	locks := repository.NewLockRepository(db, tp, appLogger)

	a.Onboarding = onboarding.NewService(hosts, locks, paymentProcessor, tp, appLogger, a.Metrics, onboarding.Config{
		PublicDomain: cfg.Processor.PublicDomain,
		LockTimeout:  cfg.Settlement.LockTimeout(),
	})
	a.Payouts = payout.NewService(hosts, transactions, paymentProcessor, appLogger, a.Metrics, cfg.Processor.AppName)
	a.Guests = guest.NewService(guests, paymentProcessor, tp, appLogger)
	a.Settlement = settlement.NewService(
		transactions,
		hosts,
		guests,
		locks,
		counterparty.NewPlaceholderResolver(hosts, guests),
		paymentProcessor,
		tp,
		appLogger,
		a.Metrics,
		settlement.Config{
			AppName:     cfg.Processor.AppName,
			LockTimeout: cfg.Settlement.LockTimeout(),
		},
	)
	a.Reconciler = settlement.NewReconciler(a.Settlement, transactions, tp, appLogger, settlement.ReconcilerConfig{
		BatchSize:   cfg.Settlement.ReconcileBatchSize,
		Concurrency: cfg.Settlement.ReconcileConcurrency,
		StaleAfter:  cfg.Settlement.StaleAfter(),
	})

	return a, nil
}

// Migrate brings the schema to the current version
func (a *App) Migrate(ctx context.Context) error {
	return a.Database.Migrate(ctx)
}

// Close stops the host serializer and closes the database
func (a *App) Close() error {
	if a.Onboarding != nil {
		a.Onboarding.Shutdown()
	}
	return a.Database.Close()
}
