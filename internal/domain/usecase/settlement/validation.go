package settlement

import (
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// TransactionValidator checks payment requests before anything is stored or charged
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateSubmission validates a payment request and returns its normalized currency
func (v *TransactionValidator) ValidateSubmission(req usecase.SubmitTransactionRequest) (string, error) {
	if err := entity.ValidateAmount(req.Amount); err != nil {
		return "", err
	}

	if req.Currency == "" {
		return "", errs.NewValidationError("currency", "is required")
	}
	return entity.NormalizeCurrency(req.Currency)
}

// ValidateTransactionID rejects an empty transaction id
func (v *TransactionValidator) ValidateTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValidationError("transactionId", "is required")
	}
	return nil
}
