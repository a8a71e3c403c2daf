package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/settlement-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClock(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return mockTime
}

func TestNewHost(t *testing.T) {
	mockTime := newMockClock(t)

	t.Run("Defaults", func(t *testing.T) {
		host, err := NewHost(" Alice@Example.com ", "", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", host.Email)
		assert.Equal(t, HostTypeIndividual, host.Type)
		assert.Equal(t, DefaultCountry, host.Country)
		assert.Equal(t, StateRegistered, host.OnboardingState())
	})

	t.Run("Company in Japan", func(t *testing.T) {
		host, err := NewHost("shop@example.jp", HostTypeCompany, "jp", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "JP", host.Country)
		assert.Equal(t, HostTypeCompany, host.Type)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, err := NewHost("not-an-email", "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := NewHost("a@example.com", HostType("trust"), "", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestHost_ApplyProfile(t *testing.T) {
	mockTime := newMockClock(t)

	tests := []struct {
		name        string
		host        Host
		profile     HostProfile
		expectedErr error
		check       func(t *testing.T, h *Host)
	}{
		{
			name:    "Individual names complete the profile",
			host:    Host{Type: HostTypeIndividual, Country: "US"},
			profile: HostProfile{FirstName: "Alice", LastName: "Ng"},
			check: func(t *testing.T, h *Host) {
				assert.True(t, h.ProfileComplete())
				assert.Equal(t, StateProfileComplete, h.OnboardingState())
				assert.Equal(t, "Alice Ng", h.DisplayName())
			},
		},
		{
			name:    "Switching to company clears personal names",
			host:    Host{Type: HostTypeIndividual, Country: "US", FirstName: "Alice", LastName: "Ng"},
			profile: HostProfile{Type: HostTypeCompany, BusinessName: "Ng Tours"},
			check: func(t *testing.T, h *Host) {
				assert.Empty(t, h.FirstName)
				assert.Empty(t, h.LastName)
				assert.Equal(t, "Ng Tours", h.DisplayName())
				assert.True(t, h.ProfileComplete())
			},
		},
		{
			name:        "Business name on an individual",
			host:        Host{Type: HostTypeIndividual, Country: "US"},
			profile:     HostProfile{BusinessName: "Ng Tours"},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "Personal name on a company",
			host:        Host{Type: HostTypeCompany, Country: "US"},
			profile:     HostProfile{FirstName: "Alice"},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "Country is fixed once linked",
			host:        Host{Type: HostTypeIndividual, Country: "US", ProcessorAccountID: "acct_1"},
			profile:     HostProfile{Country: "JP"},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "Type is fixed once linked",
			host:        Host{Type: HostTypeIndividual, Country: "US", ProcessorAccountID: "acct_1"},
			profile:     HostProfile{Type: HostTypeCompany},
			expectedErr: errs.ErrValidation,
		},
		{
			name:    "Same country once linked is accepted",
			host:    Host{Type: HostTypeIndividual, Country: "US", ProcessorAccountID: "acct_1"},
			profile: HostProfile{Country: "us", FirstName: "Al"},
			check: func(t *testing.T, h *Host) {
				assert.Equal(t, "Al", h.FirstName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := tt.host
			err := host.ApplyProfile(tt.profile, mockTime)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, &host)
		})
	}
}

func TestHost_MissingProfileFields(t *testing.T) {
	assert.Equal(t, []string{"firstName", "lastName"}, (&Host{Type: HostTypeIndividual}).MissingProfileFields())
	assert.Equal(t, []string{"lastName"}, (&Host{Type: HostTypeIndividual, FirstName: "A"}).MissingProfileFields())
	assert.Equal(t, []string{"businessName"}, (&Host{Type: HostTypeCompany}).MissingProfileFields())
	assert.Empty(t, (&Host{Type: HostTypeCompany, BusinessName: "B"}).MissingProfileFields())
}

func TestHost_RequireOnboarded(t *testing.T) {
	host := &Host{ID: 4, Type: HostTypeCompany, BusinessName: "B", ProcessorAccountID: "acct_1"}

	err := host.RequireOnboarded()
	assert.ErrorIs(t, err, errs.ErrNotOnboarded)
	assert.True(t, errs.IsNotOnboardedError(err))

	host.OnboardingComplete = true
	assert.NoError(t, host.RequireOnboarded())
	assert.True(t, host.IsOnboarded())
}
