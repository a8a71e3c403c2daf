package dto

import (
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// RegisterGuestRequest represents the API request for a guest sign-up
type RegisterGuestRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

// GuestResponse represents a guest
type GuestResponse struct {
	ID                  uint64    `json:"id"`
	Email               string    `json:"email"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName,omitempty"`
	DisplayName         string    `json:"displayName"`
	ProcessorCustomerID string    `json:"processorCustomerId"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewGuestResponse maps a guest entity
func NewGuestResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:                  guest.ID,
		Email:               guest.Email,
		FirstName:           guest.FirstName,
		LastName:            guest.LastName,
		DisplayName:         guest.DisplayName(),
		ProcessorCustomerID: guest.ProcessorCustomerID,
		CreatedAt:           guest.CreatedAt,
	}
}

// RegisteredGuestResponse is returned on sign-up together with a bearer token for the new guest
type RegisteredGuestResponse struct {
	GuestResponse
	Token string `json:"token"`
}

// EphemeralCredentialRequest names the client API version the credential is bound to
type EphemeralCredentialRequest struct {
	APIVersion string `json:"apiVersion"`
}

// EphemeralCredentialResponse is returned when the processor gave no raw key body
type EphemeralCredentialResponse struct {
	GuestID    uint64    `json:"guestId"`
	CustomerID string    `json:"customerId"`
	APIVersion string    `json:"apiVersion"`
	Secret     string    `json:"secret"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
