package processor

import (
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"
	"github.com/stripe/stripe-go/v76"
)

// Processor drivers
const (
	DriverStripe = "stripe"
	DriverMemory = "memory"
)

// New builds the configured processor wrapped with call metrics
func New(
	cfg config.ProcessorConfig,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (processorport.PaymentProcessor, error) {
	var base processorport.PaymentProcessor

	switch cfg.Driver {
	case DriverStripe, "":
		// The client library pins one API version; a different configured value would
		// silently be ignored, so refuse to start instead.
		if cfg.APIVersion != "" && cfg.APIVersion != stripe.APIVersion {
			return nil, fmt.Errorf("processor.apiVersion %s does not match the client library version %s",
				cfg.APIVersion, stripe.APIVersion)
		}
		stripeProcessor, err := NewStripeProcessor(StripeConfig{
			SecretKey:         cfg.SecretKey,
			MaxNetworkRetries: cfg.MaxNetworkRetries,
			HTTPClient:        &http.Client{Timeout: cfg.RequestTimeout()},
		}, logger)
		if err != nil {
			return nil, err
		}
		base = stripeProcessor
	case DriverMemory:
		logger.Warn("Using the in-memory payment processor, no money moves", map[string]any{
			"driver": cfg.Driver,
		})
		base = NewMemoryProcessor(timeProvider, cfg.PublicDomain)
	default:
		return nil, fmt.Errorf("unsupported processor driver: %s", cfg.Driver)
	}

	return NewInstrumentedProcessor(base, metrics, timeProvider, logger), nil
}
