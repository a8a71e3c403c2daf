package settlement

import (
	"testing"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	validator := NewTransactionValidator()

	tests := []struct {
		name             string
		req              usecase.SubmitTransactionRequest
		expectedCurrency string
		expectErr        bool
	}{
		{"Valid request", usecase.SubmitTransactionRequest{Amount: 2500, Currency: "USD"}, "usd", false},
		{"Whole unit currency", usecase.SubmitTransactionRequest{Amount: 3000, Currency: "jpy"}, "jpy", false},
		{"Zero amount", usecase.SubmitTransactionRequest{Amount: 0, Currency: "usd"}, "", true},
		{"Negative amount", usecase.SubmitTransactionRequest{Amount: -5, Currency: "usd"}, "", true},
		{"Missing currency", usecase.SubmitTransactionRequest{Amount: 100}, "", true},
		{"Malformed currency", usecase.SubmitTransactionRequest{Amount: 100, Currency: "us dollars"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, err := validator.ValidateSubmission(tt.req)

			if tt.expectErr {
				assert.True(t, errs.IsValidationError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCurrency, currency)
		})
	}
}

func TestValidateTransactionID(t *testing.T) {
	validator := NewTransactionValidator()

	assert.NoError(t, validator.ValidateTransactionID("abc"))
	assert.True(t, errs.IsValidationError(validator.ValidateTransactionID("")))
}
