package dto

import (
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// RegisterHostRequest represents the API request for a host sign-up
type RegisterHostRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Type         string `json:"type" binding:"omitempty,oneof=individual company"`
	Country      string `json:"country" binding:"omitempty,len=2"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
}

// UpdateProfileRequest represents the API request for a host profile change
type UpdateProfileRequest struct {
	Type         string `json:"type" binding:"required,oneof=individual company"`
	Country      string `json:"country" binding:"required,len=2"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	BusinessName string `json:"businessName"`
}

// HostResponse represents a host together with its derived onboarding state
type HostResponse struct {
	ID                 uint64    `json:"id"`
	Email              string    `json:"email"`
	Type               string    `json:"type"`
	Country            string    `json:"country"`
	FirstName          string    `json:"firstName,omitempty"`
	LastName           string    `json:"lastName,omitempty"`
	BusinessName       string    `json:"businessName,omitempty"`
	DisplayName        string    `json:"displayName"`
	OnboardingState    string    `json:"onboardingState"`
	MissingFields      []string  `json:"missingFields,omitempty"`
	ProcessorAccountID string    `json:"processorAccountId,omitempty"`
	SettlementProtocol string    `json:"settlementProtocol"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewHostResponse maps a host entity to its API representation
func NewHostResponse(host *entity.Host) HostResponse {
	return HostResponse{
		ID:                 host.ID,
		Email:              host.Email,
		Type:               string(host.Type),
		Country:            host.Country,
		FirstName:          host.FirstName,
		LastName:           host.LastName,
		BusinessName:       host.BusinessName,
		DisplayName:        host.DisplayName(),
		OnboardingState:    string(host.OnboardingState()),
		MissingFields:      host.MissingProfileFields(),
		ProcessorAccountID: host.ProcessorAccountID,
		SettlementProtocol: string(entity.ProtocolForCountry(host.Country)),
		CreatedAt:          host.CreatedAt,
	}
}

// RegisteredHostResponse is returned on sign-up together with a bearer token for the new host
type RegisteredHostResponse struct {
	HostResponse
	Token string `json:"token"`
}

// LinkResponse is a processor hosted URL the client redirects to
type LinkResponse struct {
	HostID          uint64     `json:"hostId"`
	URL             string     `json:"url"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	OnboardingState string     `json:"onboardingState,omitempty"`
	AccountCreated  bool       `json:"accountCreated,omitempty"`
}

// NewOnboardingLinkResponse maps an onboarding link
func NewOnboardingLinkResponse(link *usecase.OnboardingLink) LinkResponse {
	return LinkResponse{
		HostID:          link.HostID,
		URL:             link.URL,
		ExpiresAt:       optionalTime(link.ExpiresAt),
		OnboardingState: string(link.State),
		AccountCreated:  link.AccountCreated,
	}
}

// NewDashboardLinkResponse maps a dashboard login link
func NewDashboardLinkResponse(link *usecase.DashboardLink) LinkResponse {
	return LinkResponse{
		HostID:    link.HostID,
		URL:       link.URL,
		ExpiresAt: optionalTime(link.ExpiresAt),
	}
}

// OnboardingStatusResponse reports the outcome of an onboarding confirmation
type OnboardingStatusResponse struct {
	HostID           uint64 `json:"hostId"`
	OnboardingState  string `json:"onboardingState"`
	DetailsSubmitted bool   `json:"detailsSubmitted"`
	PayoutsEnabled   bool   `json:"payoutsEnabled"`
	Advanced         bool   `json:"advanced"`
}

// NewOnboardingStatusResponse maps an onboarding status
func NewOnboardingStatusResponse(status *usecase.OnboardingStatus) OnboardingStatusResponse {
	return OnboardingStatusResponse{
		HostID:           status.HostID,
		OnboardingState:  string(status.State),
		DetailsSubmitted: status.DetailsSubmitted,
		PayoutsEnabled:   status.PayoutsEnabled,
		Advanced:         status.Advanced,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
