package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// Guest is a payer whose funding source is held by the processor as a customer
type Guest struct {
	ID                  uint64
	Email               string
	FirstName           string
	LastName            string
	ProcessorCustomerID string
	CreatedAt           time.Time
}

// NewGuest creates a guest. The processor customer reference is attached before the guest is stored.
func NewGuest(email, firstName, lastName string, timeProvider coreport.TimeProvider) (*Guest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewValidationError("email", "must be a valid email address")
	}
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, errs.NewValidationError("firstName", "is required")
	}

	return &Guest{
		Email:     email,
		FirstName: firstName,
		LastName:  strings.TrimSpace(lastName),
		CreatedAt: timeProvider.Now(),
	}, nil
}

// DisplayName returns the first name and last initial, e.g. "Jenny R."
func (g *Guest) DisplayName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	initial, _ := utf8.DecodeRuneInString(g.LastName)
	return g.FirstName + " " + strings.ToUpper(string(initial)) + "."
}

// HasProcessorCustomer reports whether the guest can be charged
func (g *Guest) HasProcessorCustomer() bool {
	return g.ProcessorCustomerID != ""
}
