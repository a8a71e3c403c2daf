package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/settlement-engine/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/settlement-engine/mocks/port/persistence"
	mockprocessor "github.com/amirhossein-jamali/settlement-engine/mocks/port/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const publicDomain = "https://rooms.example.com"

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type onboardingMocks struct {
	hosts     *mockpersistence.MockHostRepository
	locks     *mockpersistence.MockLockRepository
	processor *mockprocessor.MockPaymentProcessor
	metrics   *coremocks.MockMetrics
}

func newTestService(t *testing.T) (*Service, onboardingMocks) {
	m := onboardingMocks{
		hosts:     mockpersistence.NewMockHostRepository(t),
		locks:     mockpersistence.NewMockLockRepository(t),
		processor: mockprocessor.NewMockPaymentProcessor(t),
		metrics:   coremocks.NewMockMetrics(t),
	}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	m.locks.On("AcquireLock", mock.Anything, mock.AnythingOfType("string"), 30*time.Second).Return("owner", nil).Maybe()
	m.locks.On("ReleaseLock", mock.Anything, mock.AnythingOfType("string"), "owner").Return(nil).Maybe()
	m.metrics.EXPECT().OnboardingTransition(mock.Anything).Return().Maybe()

	svc := NewService(m.hosts, m.locks, m.processor, mockTime, logger.NewNoopLogger(), m.metrics, Config{
		PublicDomain: publicDomain,
		LockTimeout:  30 * time.Second,
	})
	t.Cleanup(svc.Shutdown)
	return svc, m
}

func individualHost(id uint64) *entity.Host {
	return &entity.Host{
		ID:        id,
		Email:     "host@example.com",
		Type:      entity.HostTypeIndividual,
		Country:   "US",
		FirstName: "Amy",
		LastName:  "Host",
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func TestRegisterHost(t *testing.T) {
	tests := []struct {
		name          string
		req           usecase.RegisterHostRequest
		setupMocks    func(m onboardingMocks)
		expectedState entity.OnboardingState
		expectedErr   error
	}{
		{
			name: "Individual with names is profile complete",
			req: usecase.RegisterHostRequest{
				Email:     "Amy@Example.com",
				Type:      entity.HostTypeIndividual,
				FirstName: "Amy",
				LastName:  "Host",
			},
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("Create", mock.Anything, mock.MatchedBy(func(h *entity.Host) bool {
					return h.Email == "amy@example.com" && h.Country == entity.DefaultCountry
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Host).ID = 11
				}).Return(nil).Once()
			},
			expectedState: entity.StateProfileComplete,
		},
		{
			name: "Company without business name is registered",
			req: usecase.RegisterHostRequest{
				Email:   "biz@example.com",
				Type:    entity.HostTypeCompany,
				Country: "jp",
			},
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("Create", mock.Anything, mock.MatchedBy(func(h *entity.Host) bool {
					return h.Country == "JP"
				})).Return(nil).Once()
			},
			expectedState: entity.StateRegistered,
		},
		{
			name: "Duplicate email",
			req:  usecase.RegisterHostRequest{Email: "amy@example.com"},
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateRecord).Once()
			},
			expectedErr: errs.ErrDuplicateRecord,
		},
		{
			name:        "Invalid email never reaches the repository",
			req:         usecase.RegisterHostRequest{Email: "nope"},
			setupMocks:  func(m onboardingMocks) {},
			expectedErr: errs.ErrValidation,
		},
		{
			name: "Company host cannot carry personal names",
			req: usecase.RegisterHostRequest{
				Email:     "biz@example.com",
				Type:      entity.HostTypeCompany,
				FirstName: "Amy",
			},
			setupMocks:  func(m onboardingMocks) {},
			expectedErr: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setupMocks(m)

			host, err := svc.RegisterHost(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, host)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, host.OnboardingState())
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, m := newTestService(t)

	host := &entity.Host{ID: 3, Email: "h@example.com", Type: entity.HostTypeIndividual, Country: "US"}
	m.hosts.On("GetByID", mock.Anything, uint64(3)).Return(host, nil).Once()
	m.hosts.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(h *entity.Host) bool {
		return h.Type == entity.HostTypeCompany && h.BusinessName == "Rooms Inc" && h.FirstName == ""
	})).Return(nil).Once()

	updated, err := svc.UpdateProfile(context.Background(), 3, entity.HostProfile{
		Type:         entity.HostTypeCompany,
		BusinessName: "Rooms Inc",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StateProfileComplete, updated.OnboardingState())
	m.metrics.AssertCalled(t, "OnboardingTransition", string(entity.StateProfileComplete))
}

func TestUpdateProfile_LockedHost(t *testing.T) {
	hosts := mockpersistence.NewMockHostRepository(t)
	locks := mockpersistence.NewMockLockRepository(t)
	locks.On("AcquireLock", mock.Anything, "host:3", time.Second).Return("", errs.ErrResourceLocked).Once()

	svc := NewService(hosts, locks, mockprocessor.NewMockPaymentProcessor(t), coremocks.NewMockTimeProvider(t),
		logger.NewNoopLogger(), coremocks.NewMockMetrics(t), Config{LockTimeout: time.Second})
	defer svc.Shutdown()

	_, err := svc.UpdateProfile(context.Background(), 3, entity.HostProfile{FirstName: "A"})

	assert.ErrorIs(t, err, errs.ErrResourceLocked)
	hosts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestStartOnboarding(t *testing.T) {
	link := &processor.Link{URL: "https://connect.example.com/setup/abc", ExpiresAt: fixedTime.Add(5 * time.Minute)}
	expectLink := func(m onboardingMocks, accountID string) {
		m.processor.On("CreateAccountLink", mock.Anything, processor.AccountLinkRequest{
			AccountID:  accountID,
			RefreshURL: publicDomain + RefreshPath,
			ReturnURL:  publicDomain + ReturnPath,
		}).Return(link, nil).Once()
	}

	tests := []struct {
		name            string
		setupMocks      func(m onboardingMocks)
		expectedAccount string
		expectedCreated bool
		expectedErr     error
	}{
		{
			name: "Creates the account on first call",
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(individualHost(1), nil).Once()
				m.processor.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req processor.AccountRequest) bool {
					return req.HostID == 1 && req.Type == entity.HostTypeIndividual && req.Country == "US"
				})).Return(&processor.Account{ID: "acct_1"}, nil).Once()
				m.hosts.On("SetProcessorAccount", mock.Anything, uint64(1), "acct_1").Return(nil).Once()
				expectLink(m, "acct_1")
			},
			expectedAccount: "acct_1",
			expectedCreated: true,
		},
		{
			name: "Reuses a linked account",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(1)
				host.ProcessorAccountID = "acct_existing"
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(host, nil).Once()
				expectLink(m, "acct_existing")
			},
			expectedAccount: "acct_existing",
		},
		{
			name: "Concurrent link keeps the first stored account",
			setupMocks: func(m onboardingMocks) {
				linked := individualHost(1)
				linked.ProcessorAccountID = "acct_winner"
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(individualHost(1), nil).Once()
				m.processor.On("CreateAccount", mock.Anything, mock.Anything).Return(&processor.Account{ID: "acct_loser"}, nil).Once()
				m.hosts.On("SetProcessorAccount", mock.Anything, uint64(1), "acct_loser").Return(errs.ErrStaleRecord).Once()
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(linked, nil).Once()
				expectLink(m, "acct_winner")
			},
			expectedAccount: "acct_winner",
		},
		{
			name: "Incomplete profile",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(1)
				host.LastName = ""
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(host, nil).Once()
			},
			expectedErr: errs.ErrValidation,
		},
		{
			name: "Already onboarded",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(1)
				host.ProcessorAccountID = "acct_1"
				host.OnboardingComplete = true
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(host, nil).Once()
			},
			expectedErr: errs.ErrAlreadyOnboarded,
		},
		{
			name: "Processor rejects the account",
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(individualHost(1), nil).Once()
				m.processor.On("CreateAccount", mock.Anything, mock.Anything).
					Return(nil, errs.NewUpstreamProcessorError(processor.OpCreateAccount, errs.Permanent, "invalid_request_error", "bad country", nil)).Once()
			},
			expectedErr: errs.ErrUpstreamProcessor,
		},
		{
			name: "Unknown host",
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("GetByID", mock.Anything, uint64(1)).Return(nil, errs.ErrHostNotFound).Once()
			},
			expectedErr: errs.ErrHostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setupMocks(m)

			result, err := svc.StartOnboarding(context.Background(), 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				m.processor.AssertNotCalled(t, "CreateAccountLink", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAccount, result.AccountID)
			assert.Equal(t, tt.expectedCreated, result.AccountCreated)
			assert.Equal(t, link.URL, result.URL)
			assert.Equal(t, entity.StateProcessorAccountLinked, result.State)
		})
	}
}

func TestConfirmOnboarding(t *testing.T) {
	tests := []struct {
		name             string
		setupMocks       func(m onboardingMocks)
		expectedState    entity.OnboardingState
		expectedAdvanced bool
		expectedErr      error
	}{
		{
			name: "No account makes no processor call",
			setupMocks: func(m onboardingMocks) {
				m.hosts.On("GetByID", mock.Anything, uint64(2)).Return(individualHost(2), nil).Once()
			},
			expectedState: entity.StateProfileComplete,
		},
		{
			name: "Submitted details complete onboarding",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(2)
				host.ProcessorAccountID = "acct_2"
				m.hosts.On("GetByID", mock.Anything, uint64(2)).Return(host, nil).Once()
				m.processor.On("RetrieveAccount", mock.Anything, "acct_2").
					Return(&processor.Account{ID: "acct_2", DetailsSubmitted: true, PayoutsEnabled: true}, nil).Once()
				m.hosts.On("MarkOnboardingComplete", mock.Anything, uint64(2)).Return(nil).Once()
			},
			expectedState:    entity.StateOnboarded,
			expectedAdvanced: true,
		},
		{
			name: "Details still missing",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(2)
				host.ProcessorAccountID = "acct_2"
				m.hosts.On("GetByID", mock.Anything, uint64(2)).Return(host, nil).Once()
				m.processor.On("RetrieveAccount", mock.Anything, "acct_2").
					Return(&processor.Account{ID: "acct_2"}, nil).Once()
			},
			expectedState: entity.StateProcessorAccountLinked,
		},
		{
			name: "Already onboarded makes no processor call",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(2)
				host.ProcessorAccountID = "acct_2"
				host.OnboardingComplete = true
				m.hosts.On("GetByID", mock.Anything, uint64(2)).Return(host, nil).Once()
			},
			expectedState: entity.StateOnboarded,
		},
		{
			name: "Processor unavailable",
			setupMocks: func(m onboardingMocks) {
				host := individualHost(2)
				host.ProcessorAccountID = "acct_2"
				m.hosts.On("GetByID", mock.Anything, uint64(2)).Return(host, nil).Once()
				m.processor.On("RetrieveAccount", mock.Anything, "acct_2").
					Return(nil, errs.NewUpstreamProcessorError(processor.OpRetrieveAccount, errs.Transient, "", "timeout", nil)).Once()
			},
			expectedErr: errs.ErrUpstreamProcessor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setupMocks(m)

			status, err := svc.ConfirmOnboarding(context.Background(), 2)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				m.hosts.AssertNotCalled(t, "MarkOnboardingComplete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, status.State)
			assert.Equal(t, tt.expectedAdvanced, status.Advanced)
		})
	}
}

func TestDashboardLink(t *testing.T) {
	t.Run("Onboarded host", func(t *testing.T) {
		svc, m := newTestService(t)
		host := individualHost(4)
		host.ProcessorAccountID = "acct_4"
		host.OnboardingComplete = true
		m.hosts.On("GetByID", mock.Anything, uint64(4)).Return(host, nil).Once()
		m.processor.On("CreateLoginLink", mock.Anything, "acct_4").
			Return(&processor.Link{URL: "https://connect.example.com/express/acct_4"}, nil).Once()

		link, err := svc.DashboardLink(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, "https://connect.example.com/express/acct_4", link.URL)
	})

	t.Run("Host without completed onboarding", func(t *testing.T) {
		svc, m := newTestService(t)
		host := individualHost(4)
		host.ProcessorAccountID = "acct_4"
		m.hosts.On("GetByID", mock.Anything, uint64(4)).Return(host, nil).Once()

		_, err := svc.DashboardLink(context.Background(), 4)

		assert.True(t, errs.IsNotOnboardedError(err))
		m.processor.AssertNotCalled(t, "CreateLoginLink", mock.Anything, mock.Anything)
	})
}
