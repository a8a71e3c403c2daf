package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// HostType is the legal form a host registers with
type HostType string

const (
	HostTypeIndividual HostType = "individual"
	HostTypeCompany    HostType = "company"
)

// DefaultCountry is assigned to hosts that register without a country
const DefaultCountry = "US"

// IsValid reports whether t is a known host type
func (t HostType) IsValid() bool {
	return t == HostTypeIndividual || t == HostTypeCompany
}

// Host is a payee that receives the host share of every transaction
type Host struct {
	ID                 uint64    // Unique identifier for the host
	Email              string    // Unique login email
	Type               HostType  // Legal form; decides which name fields are required
	Country            string    // ISO 3166-1 alpha-2, decides the settlement protocol
	FirstName          string    // Individual hosts only
	LastName           string    // Individual hosts only
	BusinessName       string    // Company hosts only
	ProcessorAccountID string    // Set once when onboarding starts
	OnboardingComplete bool      // Set only after the processor confirms details were submitted
	CreatedAt          time.Time // When the host signed up
	UpdatedAt          time.Time // When the host was last updated
}

// HostProfile carries the editable profile fields of a host
type HostProfile struct {
	Type         HostType
	Country      string
	FirstName    string
	LastName     string
	BusinessName string
}

// NewHost creates a registered host
func NewHost(email string, hostType HostType, country string, timeProvider coreport.TimeProvider) (*Host, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewValidationError("email", "must be a valid email address")
	}

	if hostType == "" {
		hostType = HostTypeIndividual
	}
	if !hostType.IsValid() {
		return nil, errs.NewValidationError("type", fmt.Sprintf("unknown host type %q", hostType))
	}

	if country == "" {
		country = DefaultCountry
	}
	normalized, err := NormalizeCountry(country)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Host{
		Email:     email,
		Type:      hostType,
		Country:   normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeType switches the legal form and clears the name fields of the other form.
// The type is fixed once a processor account exists because the account was created with it.
func (h *Host) ChangeType(hostType HostType, timeProvider coreport.TimeProvider) error {
	if !hostType.IsValid() {
		return errs.NewValidationError("type", fmt.Sprintf("unknown host type %q", hostType))
	}
	if hostType == h.Type {
		return nil
	}
	if h.HasProcessorAccount() {
		return errs.NewValidationError("type", "cannot change once a processor account is linked")
	}

	h.Type = hostType
	switch hostType {
	case HostTypeIndividual:
		h.BusinessName = ""
	case HostTypeCompany:
		h.FirstName = ""
		h.LastName = ""
	}
	h.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyProfile updates the type, country and the name fields that belong to the resulting type
func (h *Host) ApplyProfile(profile HostProfile, timeProvider coreport.TimeProvider) error {
	if profile.Type != "" {
		if err := h.ChangeType(profile.Type, timeProvider); err != nil {
			return err
		}
	}

	if profile.Country != "" {
		country, err := NormalizeCountry(profile.Country)
		if err != nil {
			return err
		}
		if country != h.Country && h.HasProcessorAccount() {
			return errs.NewValidationError("country", "cannot change once a processor account is linked")
		}
		h.Country = country
	}

	switch h.Type {
	case HostTypeIndividual:
		if profile.BusinessName != "" {
			return errs.NewValidationError("businessName", "only company hosts have a business name")
		}
		if profile.FirstName != "" {
			h.FirstName = strings.TrimSpace(profile.FirstName)
		}
		if profile.LastName != "" {
			h.LastName = strings.TrimSpace(profile.LastName)
		}
	case HostTypeCompany:
		if profile.FirstName != "" || profile.LastName != "" {
			return errs.NewValidationError("firstName", "company hosts use a business name")
		}
		if profile.BusinessName != "" {
			h.BusinessName = strings.TrimSpace(profile.BusinessName)
		}
	}

	h.UpdatedAt = timeProvider.Now()
	return nil
}

// ProfileComplete reports whether the name fields required by the host type are present
func (h *Host) ProfileComplete() bool {
	switch h.Type {
	case HostTypeIndividual:
		return h.FirstName != "" && h.LastName != ""
	case HostTypeCompany:
		return h.BusinessName != ""
	default:
		return false
	}
}

// MissingProfileFields lists the required name fields that are still empty
func (h *Host) MissingProfileFields() []string {
	var missing []string
	switch h.Type {
	case HostTypeCompany:
		if h.BusinessName == "" {
			missing = append(missing, "businessName")
		}
	default:
		if h.FirstName == "" {
			missing = append(missing, "firstName")
		}
		if h.LastName == "" {
			missing = append(missing, "lastName")
		}
	}
	return missing
}

// HasProcessorAccount reports whether onboarding has created a processor account
func (h *Host) HasProcessorAccount() bool {
	return h.ProcessorAccountID != ""
}

// OnboardingState derives the onboarding state from the stored attributes
func (h *Host) OnboardingState() OnboardingState {
	return ProjectOnboardingState(h)
}

// IsOnboarded reports whether the host can receive settlements and payouts
func (h *Host) IsOnboarded() bool {
	return h.OnboardingState() == StateOnboarded
}

// RequireOnboarded returns a NotOnboardedError unless the host is onboarded
func (h *Host) RequireOnboarded() error {
	if state := h.OnboardingState(); state != StateOnboarded {
		return errs.NewNotOnboardedError(h.ID, string(state))
	}
	return nil
}

// DisplayName is the name shown to guests
func (h *Host) DisplayName() string {
	if h.Type == HostTypeCompany {
		return h.BusinessName
	}
	return strings.TrimSpace(h.FirstName + " " + h.LastName)
}
