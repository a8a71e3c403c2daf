package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// RegisterHostRequest carries the sign-up fields of a host
type RegisterHostRequest struct {
	Email        string
	Type         entity.HostType
	Country      string
	FirstName    string
	LastName     string
	BusinessName string
}

// OnboardingLink is a hosted onboarding URL for a host's processor account
type OnboardingLink struct {
	HostID         uint64
	AccountID      string
	URL            string
	ExpiresAt      time.Time
	State          entity.OnboardingState
	AccountCreated bool // true only on the call that created the processor account
}

// OnboardingStatus is the result of asking the processor whether onboarding finished
type OnboardingStatus struct {
	HostID           uint64
	State            entity.OnboardingState
	DetailsSubmitted bool
	PayoutsEnabled   bool
	Advanced         bool // true when this call moved the host to onboarded
}

// DashboardLink is a login link to the processor's hosted dashboard
type DashboardLink struct {
	HostID    uint64
	URL       string
	ExpiresAt time.Time
}

// OnboardingUseCase drives a host from registration to an onboarded processor account
type OnboardingUseCase interface {
	// RegisterHost creates a host in the registered (or profile complete) state
	RegisterHost(ctx context.Context, req RegisterHostRequest) (*entity.Host, error)

	// GetHost loads a host; its onboarding state is derived on read
	GetHost(ctx context.Context, hostID uint64) (*entity.Host, error)

	// UpdateProfile changes type, country and names, keeping the type-conditioned fields consistent
	UpdateProfile(ctx context.Context, hostID uint64, profile entity.HostProfile) (*entity.Host, error)

	// StartOnboarding returns a fresh onboarding link, creating the processor account on first use
	StartOnboarding(ctx context.Context, hostID uint64) (*OnboardingLink, error)

	// ConfirmOnboarding asks the processor whether the account details were submitted
	// and records completion when they were
	ConfirmOnboarding(ctx context.Context, hostID uint64) (*OnboardingStatus, error)

	// DashboardLink returns a login link to the processor dashboard of an onboarded host
	DashboardLink(ctx context.Context, hostID uint64) (*DashboardLink, error)
}
