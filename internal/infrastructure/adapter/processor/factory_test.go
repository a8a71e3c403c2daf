package processor

import (
	"testing"

	applogger "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	appmetrics "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/metrics"
	timeprovider "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.ProcessorConfig
		expectedError string
	}{
		{
			name: "Memory driver",
			cfg:  config.ProcessorConfig{Driver: DriverMemory, PublicDomain: "http://localhost:8080"},
		},
		{
			name: "Stripe with the pinned API version",
			cfg: config.ProcessorConfig{
				Driver:                DriverStripe,
				SecretKey:             "sk_test_123",
				APIVersion:            stripe.APIVersion,
				RequestTimeoutSeconds: 20,
			},
		},
		{
			name: "Stripe without an API version",
			cfg:  config.ProcessorConfig{Driver: DriverStripe, SecretKey: "sk_test_123", RequestTimeoutSeconds: 20},
		},
		{
			name: "Stripe with a different API version",
			cfg: config.ProcessorConfig{
				Driver:                DriverStripe,
				SecretKey:             "sk_test_123",
				APIVersion:            "2020-08-27",
				RequestTimeoutSeconds: 20,
			},
			expectedError: "does not match the client library version",
		},
		{
			name:          "Stripe without a secret key",
			cfg:           config.ProcessorConfig{Driver: DriverStripe, RequestTimeoutSeconds: 20},
			expectedError: "secret key is required",
		},
		{
			name:          "Unknown driver",
			cfg:           config.ProcessorConfig{Driver: "paypal"},
			expectedError: "unsupported processor driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg, appmetrics.NewNoopMetrics(), timeprovider.NewRealTimeProvider(), applogger.NewNoopLogger())

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &InstrumentedProcessor{}, p)
		})
	}
}
