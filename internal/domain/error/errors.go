package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInvalidRequest     = 4002
	CodeUnauthorized       = 4010
	CodeForbidden          = 4030
	CodeNotFound           = 4040
	CodeHostNotFound       = 4041
	CodeGuestNotFound      = 4042
	CodeTransactionMissing = 4043
	CodeNotOnboarded       = 4090
	CodeDuplicateOperation = 4091
	CodeAlreadyOnboarded   = 4092
	CodeDuplicateRecord    = 4093
	CodeResourceLocked     = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodePartialSettlement  = 5020
	CodeUpstreamPermanent  = 5021
	CodeUpstreamTransient  = 5030
	CodeDatabaseConnection = 5031
)

// Base error types
var (
	// ErrValidation is returned when input is malformed or a required field is missing
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotOnboarded is returned when a host is not yet able to receive funds
	ErrNotOnboarded = errors.New("host has not completed onboarding")

	// ErrAlreadyOnboarded is returned when an onboarding link is requested for an onboarded host
	ErrAlreadyOnboarded = errors.New("host has already completed onboarding")

	// ErrUpstreamProcessor is returned when a payment processor call fails
	ErrUpstreamProcessor = errors.New("payment processor call failed")

	// ErrPartialSettlement is returned when a charge succeeded but the follow-up transfer did not
	ErrPartialSettlement = errors.New("settlement partially completed")

	// ErrDuplicateOperation is returned when a charge or transfer was already recorded
	ErrDuplicateOperation = errors.New("operation already recorded")

	// ErrHostNotFound is returned when the requested host doesn't exist
	ErrHostNotFound = errors.New("host not found")

	// ErrGuestNotFound is returned when the requested guest doesn't exist
	ErrGuestNotFound = errors.New("guest not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrResourceLocked is returned when a host or transaction is held by another operation
	ErrResourceLocked = errors.New("resource is locked by another operation")

	// ErrUnauthorized is returned when the caller could not be authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller may not act on the resource
	ErrForbidden = errors.New("forbidden")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateRecord is returned when a unique constraint rejects an insert
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrStaleRecord is returned when a conditional update matched no row
	ErrStaleRecord = errors.New("record changed concurrently")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var upstream *UpstreamProcessorError
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNotOnboarded):
		return CodeNotOnboarded
	case errors.Is(err, ErrAlreadyOnboarded):
		return CodeAlreadyOnboarded
	case errors.Is(err, ErrDuplicateOperation):
		return CodeDuplicateOperation
	case errors.Is(err, ErrDuplicateRecord):
		return CodeDuplicateRecord
	case errors.Is(err, ErrHostNotFound):
		return CodeHostNotFound
	case errors.Is(err, ErrGuestNotFound):
		return CodeGuestNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionMissing
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrResourceLocked):
		return CodeResourceLocked
	case errors.Is(err, ErrPartialSettlement):
		return CodePartialSettlement
	case errors.As(err, &upstream):
		if upstream.Kind == Transient {
			return CodeUpstreamTransient
		}
		return CodeUpstreamPermanent
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the HTTP status the API layer responds with
func HTTPStatus(err error) int {
	switch code := ErrorCode(err); {
	case code == CodeValidation || code == CodeInvalidRequest:
		return http.StatusBadRequest
	case code == CodeUnauthorized:
		return http.StatusUnauthorized
	case code == CodeForbidden:
		return http.StatusForbidden
	case code >= CodeNotFound && code <= CodeTransactionMissing:
		return http.StatusNotFound
	case code >= CodeNotOnboarded && code <= CodeDuplicateRecord:
		return http.StatusConflict
	case code == CodeResourceLocked:
		return http.StatusLocked
	case code == CodePartialSettlement || code == CodeUpstreamPermanent:
		return http.StatusBadGateway
	case code == CodeUpstreamTransient || code == CodeDatabaseConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new validation error for a field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotOnboardedError reports the onboarding state a host is actually in
type NotOnboardedError struct {
	HostID uint64
	State  string
}

// Error implements the error interface
func (e *NotOnboardedError) Error() string {
	return fmt.Sprintf("host %d is not onboarded (state: %s)", e.HostID, e.State)
}

// Is checks if the target error is an ErrNotOnboarded
func (e *NotOnboardedError) Is(target error) bool {
	return target == ErrNotOnboarded
}

// LogFields returns a map of fields for structured logging
func (e *NotOnboardedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_onboarded",
		"host_id":    e.HostID,
		"state":      e.State,
		"error_code": CodeNotOnboarded,
	}
}

// NewNotOnboardedError creates a new not onboarded error
func NewNotOnboardedError(hostID uint64, state string) error {
	return &NotOnboardedError{HostID: hostID, State: state}
}

// FailureKind tells whether a processor failure may be retried unchanged
type FailureKind string

const (
	// Transient failures (network, rate limit) are safe to retry with the same correlation key
	Transient FailureKind = "transient"
	// Permanent failures were rejected by the processor
	Permanent FailureKind = "permanent"
)

// UpstreamProcessorError wraps a failed payment processor call
type UpstreamProcessorError struct {
	Operation string
	Kind      FailureKind
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *UpstreamProcessorError) Error() string {
	msg := fmt.Sprintf("processor %s failed (%s)", e.Operation, e.Kind)
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns the underlying error
func (e *UpstreamProcessorError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamProcessor
func (e *UpstreamProcessorError) Is(target error) bool {
	return target == ErrUpstreamProcessor
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamProcessorError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "upstream_processor",
		"operation":  e.Operation,
		"kind":       string(e.Kind),
		"code":       e.Code,
		"message":    e.Message,
		"error_code": ErrorCode(e),
	}
}

// NewUpstreamProcessorError creates a processor error of the given kind
func NewUpstreamProcessorError(operation string, kind FailureKind, code, message string, err error) error {
	return &UpstreamProcessorError{
		Operation: operation,
		Kind:      kind,
		Code:      code,
		Message:   message,
		Err:       err,
	}
}

// PartialSettlementError is returned when the platform charge succeeded but the transfer failed
type PartialSettlementError struct {
	TransactionID string
	ChargeRef     string
	Err           error
}

// Error implements the error interface
func (e *PartialSettlementError) Error() string {
	return fmt.Sprintf("transaction %s charged (%s) but transfer failed: %v", e.TransactionID, e.ChargeRef, e.Err)
}

// Unwrap returns the underlying error
func (e *PartialSettlementError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPartialSettlement
func (e *PartialSettlementError) Is(target error) bool {
	return target == ErrPartialSettlement
}

// LogFields returns a map of fields for structured logging
func (e *PartialSettlementError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "partial_settlement",
		"transaction_id": e.TransactionID,
		"charge_ref":     e.ChargeRef,
		"error_code":     CodePartialSettlement,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPartialSettlementError creates a new partial settlement error
func NewPartialSettlementError(transactionID, chargeRef string, err error) error {
	return &PartialSettlementError{TransactionID: transactionID, ChargeRef: chargeRef, Err: err}
}

// DuplicateOperationError is returned when a processor call would repeat a recorded one
type DuplicateOperationError struct {
	TransactionID string
	Operation     string
	ExistingRef   string
}

// Error implements the error interface
func (e *DuplicateOperationError) Error() string {
	if e.ExistingRef == "" {
		return fmt.Sprintf("duplicate %s for transaction %s", e.Operation, e.TransactionID)
	}
	return fmt.Sprintf("duplicate %s for transaction %s: already recorded as %s",
		e.Operation, e.TransactionID, e.ExistingRef)
}

// Is checks if the target error is an ErrDuplicateOperation
func (e *DuplicateOperationError) Is(target error) bool {
	return target == ErrDuplicateOperation
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateOperationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "duplicate_operation",
		"transaction_id": e.TransactionID,
		"operation":      e.Operation,
		"existing_ref":   e.ExistingRef,
		"error_code":     CodeDuplicateOperation,
	}
}

// NewDuplicateOperationError creates a new duplicate operation error
func NewDuplicateOperationError(transactionID, operation, existingRef string) error {
	return &DuplicateOperationError{
		TransactionID: transactionID,
		Operation:     operation,
		ExistingRef:   existingRef,
	}
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotOnboardedError checks if the error is a not onboarded error
func IsNotOnboardedError(err error) bool {
	return errors.Is(err, ErrNotOnboarded)
}

// IsDuplicateOperationError checks if the error is a duplicate operation error
func IsDuplicateOperationError(err error) bool {
	return errors.Is(err, ErrDuplicateOperation)
}

// IsPartialSettlementError checks if the error is a partial settlement error
func IsPartialSettlementError(err error) bool {
	return errors.Is(err, ErrPartialSettlement)
}

// IsTransientProcessorError checks if a processor call failed in a retryable way
func IsTransientProcessorError(err error) bool {
	var upstream *UpstreamProcessorError
	return errors.As(err, &upstream) && upstream.Kind == Transient
}

// IsPermanentProcessorError checks if the processor rejected the call
func IsPermanentProcessorError(err error) bool {
	var upstream *UpstreamProcessorError
	return errors.As(err, &upstream) && upstream.Kind == Permanent
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrHostNotFound) ||
		errors.Is(err, ErrGuestNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsResourceLockedError checks if the error is related to a held lease
func IsResourceLockedError(err error) bool {
	return errors.Is(err, ErrResourceLocked)
}

// LogFields extracts structured fields from a typed error, falling back to its message
func LogFields(err error) map[string]any {
	var typed interface{ LogFields() map[string]any }
	if errors.As(err, &typed) {
		return typed.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
