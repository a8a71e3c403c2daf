package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// RegisterGuestRequest carries the sign-up fields of a guest
type RegisterGuestRequest struct {
	Email     string
	FirstName string
	LastName  string
}

// EphemeralCredential is a client credential bound to one guest's processor customer
type EphemeralCredential struct {
	GuestID    uint64
	CustomerID string
	APIVersion string
	Secret     string
	ExpiresAt  time.Time
	RawJSON    []byte
}

// GuestUseCase manages guests and their processor customers
type GuestUseCase interface {
	// RegisterGuest creates the processor customer first and then stores the guest
	RegisterGuest(ctx context.Context, req RegisterGuestRequest) (*entity.Guest, error)

	// GetGuest loads a guest
	GetGuest(ctx context.Context, guestID uint64) (*entity.Guest, error)

	// SeedDefaultGuests registers the demo guests that don't exist yet and returns how many were created
	SeedDefaultGuests(ctx context.Context) (int, error)

	// IssueEphemeralCredential returns a credential scoped to the guest's own customer
	IssueEphemeralCredential(ctx context.Context, guestID uint64, apiVersion string) (*EphemeralCredential, error)
}
