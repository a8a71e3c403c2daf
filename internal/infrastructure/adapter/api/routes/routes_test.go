package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	applogger "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/settlement-engine/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

type testServer struct {
	router     *gin.Engine
	authority  *middleware.TokenAuthority
	onboarding *usecasemocks.MockOnboardingUseCase
	payouts    *usecasemocks.MockPayoutUseCase
	settlement *usecasemocks.MockSettlementUseCase
	guests     *usecasemocks.MockGuestUseCase
}

func newTestServer(t *testing.T, pinger handler.Pinger) *testServer {
	t.Helper()
	logger := applogger.NewNoopLogger()
	s := &testServer{
		router:     gin.New(),
		authority:  middleware.NewTokenAuthority("test-secret", "settlement-engine", timeprovider.NewRealTimeProvider()),
		onboarding: usecasemocks.NewMockOnboardingUseCase(t),
		payouts:    usecasemocks.NewMockPayoutUseCase(t),
		settlement: usecasemocks.NewMockSettlementUseCase(t),
		guests:     usecasemocks.NewMockGuestUseCase(t),
	}

	SetupMiddlewares(s.router, []string{"*"}, logger)
	SetupRoutes(s.router, Handlers{
		Host:        handler.NewHostHandler(s.onboarding, s.authority, logger),
		Payout:      handler.NewPayoutHandler(s.payouts, logger),
		Transaction: handler.NewTransactionHandler(s.settlement, logger),
		Guest:       handler.NewGuestHandler(s.guests, s.authority, logger),
		Health:      handler.NewHealthHandler(pinger, logger),
	}, s.authority, &MetricsEndpoint{
		Path: "/metrics",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("settlement_up 1\n"))
		}),
	}, logger)
	return s
}

func (s *testServer) token(t *testing.T, role middleware.Role, id uint64) string {
	t.Helper()
	token, err := s.authority.Issue(role, id, time.Hour)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func onboardedHost() *entity.Host {
	return &entity.Host{
		ID:                 7,
		Email:              "pilot@example.com",
		Type:               entity.HostTypeIndividual,
		Country:            "US",
		FirstName:          "Amelia",
		LastName:           "Earhart",
		ProcessorAccountID: "acct_7",
		OnboardingComplete: true,
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	w := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "up", decode[dto.HealthResponse](t, w).Database)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "settlement_up 1")

	down := newTestServer(t, stubPinger{err: errors.New("connection refused")})
	w = down.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegisterHost(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(s *testServer)
		expectedStatus int
		expectedCode   int
	}{
		{
			name: "Registers and returns a host token",
			body: dto.RegisterHostRequest{Email: "pilot@example.com", Type: "individual", Country: "US", FirstName: "Amelia", LastName: "Earhart"},
			setupMocks: func(s *testServer) {
				s.onboarding.On("RegisterHost", mock.Anything, usecase.RegisterHostRequest{
					Email:     "pilot@example.com",
					Type:      entity.HostTypeIndividual,
					Country:   "US",
					FirstName: "Amelia",
					LastName:  "Earhart",
				}).Return(&entity.Host{
					ID:        7,
					Email:     "pilot@example.com",
					Type:      entity.HostTypeIndividual,
					Country:   "US",
					FirstName: "Amelia",
					LastName:  "Earhart",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Rejects malformed email before the use case",
			body:           map[string]any{"email": "not-an-email"},
			setupMocks:     func(s *testServer) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeInvalidRequest,
		},
		{
			name: "Duplicate email",
			body: dto.RegisterHostRequest{Email: "pilot@example.com"},
			setupMocks: func(s *testServer) {
				s.onboarding.On("RegisterHost", mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateRecord)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   errs.CodeDuplicateRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, stubPinger{})
			tt.setupMocks(s)

			w := s.do(t, http.MethodPost, "/hosts", "", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != 0 {
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Code)
				return
			}
			resp := decode[dto.RegisteredHostResponse](t, w)
			assert.Equal(t, uint64(7), resp.ID)
			assert.Equal(t, "Amelia Earhart", resp.DisplayName)
			assert.Equal(t, string(entity.StateProfileComplete), resp.OnboardingState)
			assert.Equal(t, string(entity.IndirectSettlement), resp.SettlementProtocol)

			principal, err := s.authority.Verify(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, middleware.Principal{Role: middleware.RoleHost, ID: 7}, principal)
		})
	}
}

func TestOnboardingRoutes(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	token := s.token(t, middleware.RoleHost, 7)

	s.onboarding.On("StartOnboarding", mock.Anything, uint64(7)).Return(&usecase.OnboardingLink{
		HostID:         7,
		AccountID:      "acct_7",
		URL:            "https://connect.example.com/setup/acct_7",
		State:          entity.StateProcessorAccountLinked,
		AccountCreated: true,
	}, nil).Once()
	w := s.do(t, http.MethodPost, "/accounts/7/onboarding-link", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	link := decode[dto.LinkResponse](t, w)
	assert.Equal(t, "https://connect.example.com/setup/acct_7", link.URL)
	assert.Nil(t, link.ExpiresAt)

	s.onboarding.On("ConfirmOnboarding", mock.Anything, uint64(7)).Return(&usecase.OnboardingStatus{
		HostID:           7,
		State:            entity.StateOnboarded,
		DetailsSubmitted: true,
		Advanced:         true,
	}, nil).Once()
	w = s.do(t, http.MethodGet, "/accounts/7/onboarding-status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[dto.OnboardingStatusResponse](t, w)
	assert.True(t, status.Advanced)
	assert.Equal(t, string(entity.StateOnboarded), status.OnboardingState)

	s.onboarding.On("StartOnboarding", mock.Anything, uint64(7)).Return(nil, errs.ErrAlreadyOnboarded).Once()
	w = s.do(t, http.MethodPost, "/accounts/7/onboarding-link", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, errs.CodeAlreadyOnboarded, decode[dto.ErrorResponse](t, w).Code)

	// another host cannot touch host 7
	w = s.do(t, http.MethodPost, "/accounts/7/onboarding-link", s.token(t, middleware.RoleHost, 8), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	token := s.token(t, middleware.RoleHost, 7)

	s.onboarding.On("UpdateProfile", mock.Anything, uint64(7), entity.HostProfile{
		Type:         entity.HostTypeCompany,
		Country:      "JP",
		BusinessName: "Rocket Co",
	}).Return(&entity.Host{
		ID:           7,
		Email:        "pilot@example.com",
		Type:         entity.HostTypeCompany,
		Country:      "JP",
		BusinessName: "Rocket Co",
	}, nil)

	w := s.do(t, http.MethodPut, "/accounts/7/profile", token, dto.UpdateProfileRequest{
		Type:         "company",
		Country:      "JP",
		BusinessName: "Rocket Co",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.HostResponse](t, w)
	assert.Equal(t, "Rocket Co", resp.DisplayName)
	assert.Equal(t, string(entity.DirectSettlement), resp.SettlementProtocol)

	w = s.do(t, http.MethodPut, "/accounts/7/profile", token, map[string]any{"type": "partnership", "country": "JP"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitTransaction(t *testing.T) {
	settled := &usecase.SettlementResult{
		TransactionID:   "txn-1",
		HostID:          7,
		HostDisplayName: "Amelia Earhart",
		GuestID:         3,
		Amount:          1000,
		Currency:        "usd",
		HostShare:       800,
		PlatformFee:     200,
		Protocol:        entity.IndirectSettlement,
		Status:          entity.StatusSettled,
		ChargeRef:       "ch_1",
		TransferRef:     "tr_1",
		Reference:       "tr_1",
	}
	charged := *settled
	charged.Status = entity.StatusCharged
	charged.TransferRef = ""
	charged.Reference = "ch_1"

	tests := []struct {
		name           string
		role           middleware.Role
		callerID       uint64
		body           dto.SubmitTransactionRequest
		setupMocks     func(s *testServer)
		expectedStatus int
		expectedCode   int
		expectedRef    string
	}{
		{
			name:     "Guest pays as itself",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd", GuestID: 99},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, usecase.SubmitTransactionRequest{
					Amount:   1000,
					Currency: "usd",
					GuestID:  3,
				}).Return(settled, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedRef:    "tr_1",
		},
		{
			name:     "Operator names both parties",
			role:     middleware.RoleOperator,
			callerID: 1,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd", HostID: 7, GuestID: 3},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, usecase.SubmitTransactionRequest{
					Amount:   1000,
					Currency: "usd",
					HostID:   7,
					GuestID:  3,
				}).Return(settled, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedRef:    "tr_1",
		},
		{
			name:           "Host may not pay",
			role:           middleware.RoleHost,
			callerID:       7,
			body:           dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd"},
			setupMocks:     func(s *testServer) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   errs.CodeForbidden,
		},
		{
			name:     "Invalid amount",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: -5, Currency: "usd"},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, mock.Anything).
					Return(nil, errs.NewValidationError("amount", "must be a positive integer"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeValidation,
		},
		{
			name:     "Host not onboarded",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd"},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, mock.Anything).
					Return(nil, errs.NewNotOnboardedError(7, string(entity.StateProfileComplete)))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   errs.CodeNotOnboarded,
		},
		{
			name:     "Processor declined",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd"},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, mock.Anything).
					Return(nil, errs.NewUpstreamProcessorError("platform_charge", errs.Permanent, "card_declined", "Your card was declined.", nil))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   errs.CodeUpstreamPermanent,
		},
		{
			name:     "Processor unavailable",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd"},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, mock.Anything).
					Return(nil, errs.NewUpstreamProcessorError("platform_charge", errs.Transient, "", "timeout", nil))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   errs.CodeUpstreamTransient,
		},
		{
			name:     "Partial settlement keeps the charged transaction in the body",
			role:     middleware.RoleGuest,
			callerID: 3,
			body:     dto.SubmitTransactionRequest{Amount: 1000, Currency: "usd"},
			setupMocks: func(s *testServer) {
				s.settlement.On("SubmitTransaction", mock.Anything, mock.Anything).
					Return(&charged, errs.NewPartialSettlementError("txn-1", "ch_1",
						errs.NewUpstreamProcessorError("transfer", errs.Transient, "", "timeout", nil)))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   errs.CodePartialSettlement,
			expectedRef:    "ch_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, stubPinger{})
			tt.setupMocks(s)

			w := s.do(t, http.MethodPost, "/transactions", s.token(t, tt.role, tt.callerID), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			switch {
			case tt.expectedCode == errs.CodePartialSettlement:
				resp := decode[dto.PartialSettlementResponse](t, w)
				assert.Equal(t, tt.expectedCode, resp.Code)
				assert.Equal(t, string(entity.StatusCharged), resp.Transaction.Status)
				assert.Equal(t, tt.expectedRef, resp.Transaction.Reference)
			case tt.expectedCode != 0:
				assert.Equal(t, tt.expectedCode, decode[dto.ErrorResponse](t, w).Code)
			default:
				resp := decode[dto.SettlementResponse](t, w)
				assert.Equal(t, "Amelia Earhart", resp.HostDisplayName)
				assert.Equal(t, tt.expectedRef, resp.Reference)
				assert.Equal(t, int64(800), resp.HostShare)
			}
		})
	}
}

func TestGetTransaction(t *testing.T) {
	txn := &entity.Transaction{
		ID:       "txn-1",
		HostID:   7,
		GuestID:  3,
		Amount:   1000,
		Currency: "usd",
		Status:   entity.StatusSettled,
	}

	tests := []struct {
		name           string
		role           middleware.Role
		callerID       uint64
		expectedStatus int
	}{
		{name: "Host of the transaction", role: middleware.RoleHost, callerID: 7, expectedStatus: http.StatusOK},
		{name: "Guest of the transaction", role: middleware.RoleGuest, callerID: 3, expectedStatus: http.StatusOK},
		{name: "Operator", role: middleware.RoleOperator, callerID: 1, expectedStatus: http.StatusOK},
		{name: "Other guest", role: middleware.RoleGuest, callerID: 4, expectedStatus: http.StatusForbidden},
		{name: "Other host", role: middleware.RoleHost, callerID: 3, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, stubPinger{})
			s.settlement.On("GetTransaction", mock.Anything, "txn-1").Return(txn, nil)

			w := s.do(t, http.MethodGet, "/transactions/txn-1", s.token(t, tt.role, tt.callerID), nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "txn-1", decode[dto.TransactionResponse](t, w).ID)
			}
		})
	}

	s := newTestServer(t, stubPinger{})
	s.settlement.On("GetTransaction", mock.Anything, "missing").Return(nil, errs.ErrTransactionNotFound)
	w := s.do(t, http.MethodGet, "/transactions/missing", s.token(t, middleware.RoleOperator, 1), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRetryTransaction(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	operator := s.token(t, middleware.RoleOperator, 1)

	s.settlement.On("Settle", mock.Anything, "txn-1").Return(&usecase.SettlementResult{
		TransactionID: "txn-1",
		Status:        entity.StatusSettled,
		Reference:     "tr_1",
	}, nil).Once()
	w := s.do(t, http.MethodPost, "/transactions/txn-1/retry", operator, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tr_1", decode[dto.SettlementResponse](t, w).Reference)

	s.settlement.On("Settle", mock.Anything, "txn-1").
		Return(nil, errs.NewDuplicateOperationError("txn-1", "settle", "tr_1")).Once()
	w = s.do(t, http.MethodPost, "/transactions/txn-1/retry", operator, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, errs.CodeDuplicateOperation, decode[dto.ErrorResponse](t, w).Code)

	s.settlement.On("Settle", mock.Anything, "txn-2").Return(nil, errs.ErrResourceLocked).Once()
	w = s.do(t, http.MethodPost, "/transactions/txn-2/retry", operator, nil)
	assert.Equal(t, http.StatusLocked, w.Code)

	w = s.do(t, http.MethodPost, "/transactions/txn-1/retry", s.token(t, middleware.RoleGuest, 3), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListHostTransactions(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	token := s.token(t, middleware.RoleHost, 7)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	s.settlement.On("ListHostTransactions", mock.Anything, uint64(7), mock.MatchedBy(func(ts time.Time) bool {
		return ts.Equal(since)
	})).Return([]*entity.Transaction{
		{ID: "txn-2", HostID: 7, Amount: 500, Status: entity.StatusSettled},
		{ID: "txn-1", HostID: 7, Amount: 1000, Status: entity.StatusCharged},
	}, nil).Once()
	w := s.do(t, http.MethodGet, "/accounts/7/transactions?since=2026-03-01T00:00:00Z", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.TransactionListResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "txn-2", resp.Transactions[0].ID)

	s.settlement.On("ListHostTransactions", mock.Anything, uint64(7), time.Time{}).
		Return([]*entity.Transaction{}, nil).Once()
	w = s.do(t, http.MethodGet, "/accounts/7/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[dto.TransactionListResponse](t, w).Count)

	w = s.do(t, http.MethodGet, "/accounts/7/transactions?since=yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayoutRoutes(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	token := s.token(t, middleware.RoleHost, 7)

	s.payouts.On("Payout", mock.Anything, uint64(7), "").Return(&usecase.PayoutResult{
		HostID:   7,
		PayoutID: "po_1",
		Amount:   800,
		Currency: "usd",
		Status:   "pending",
	}, nil).Once()
	w := s.do(t, http.MethodPost, "/accounts/7/payout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(800), decode[dto.PayoutResponse](t, w).Amount)

	s.payouts.On("Payout", mock.Anything, uint64(7), "eur").Return(&usecase.PayoutResult{
		HostID:   7,
		Currency: "eur",
		Skipped:  true,
	}, nil).Once()
	w = s.do(t, http.MethodPost, "/accounts/7/payout", token, dto.PayoutRequest{Currency: "eur"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.PayoutResponse](t, w).Skipped)

	s.payouts.On("Payout", mock.Anything, uint64(7), "").
		Return(nil, errs.NewNotOnboardedError(7, string(entity.StateProcessorAccountLinked))).Once()
	w = s.do(t, http.MethodPost, "/accounts/7/payout", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	s.payouts.On("Summary", mock.Anything, uint64(7)).Return(&usecase.BalanceSummary{
		HostID:      7,
		DisplayName: "Amelia Earhart",
		Currency:    "usd",
		Available:   800,
		Pending:     160,
		TotalEarned: 960,
	}, nil).Once()
	w = s.do(t, http.MethodGet, "/accounts/7/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(960), decode[dto.DashboardResponse](t, w).TotalEarned)

	s.onboarding.On("DashboardLink", mock.Anything, uint64(7)).Return(&usecase.DashboardLink{
		HostID: 7,
		URL:    "https://connect.example.com/express/acct_7",
	}, nil).Once()
	w = s.do(t, http.MethodPost, "/accounts/7/dashboard-link", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://connect.example.com/express/acct_7", decode[dto.LinkResponse](t, w).URL)

	s.onboarding.On("GetHost", mock.Anything, uint64(7)).Return(onboardedHost(), nil).Once()
	w = s.do(t, http.MethodGet, "/accounts/7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(entity.StateOnboarded), decode[dto.HostResponse](t, w).OnboardingState)
}

func TestGuestRoutes(t *testing.T) {
	s := newTestServer(t, stubPinger{})

	s.guests.On("RegisterGuest", mock.Anything, usecase.RegisterGuestRequest{
		Email:     "jenny.rosen@example.com",
		FirstName: "Jenny",
		LastName:  "Rosen",
	}).Return(&entity.Guest{
		ID:                  3,
		Email:               "jenny.rosen@example.com",
		FirstName:           "Jenny",
		LastName:            "Rosen",
		ProcessorCustomerID: "cus_3",
	}, nil).Once()
	w := s.do(t, http.MethodPost, "/guests", "", dto.RegisterGuestRequest{
		Email:     "jenny.rosen@example.com",
		FirstName: "Jenny",
		LastName:  "Rosen",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	registered := decode[dto.RegisteredGuestResponse](t, w)
	assert.Equal(t, "Jenny R.", registered.DisplayName)
	assert.Equal(t, "cus_3", registered.ProcessorCustomerID)

	guestToken := registered.Token
	raw := []byte(`{"id":"ephkey_1","secret":"ek_test_1","associated_objects":[{"id":"cus_3","type":"customer"}]}`)
	s.guests.On("IssueEphemeralCredential", mock.Anything, uint64(3), "2023-10-16").Return(&usecase.EphemeralCredential{
		GuestID:    3,
		CustomerID: "cus_3",
		APIVersion: "2023-10-16",
		Secret:     "ek_test_1",
		RawJSON:    raw,
	}, nil).Once()
	w = s.do(t, http.MethodPost, "/guests/3/ephemeral-credentials", guestToken, dto.EphemeralCredentialRequest{APIVersion: "2023-10-16"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(raw), w.Body.String())

	s.guests.On("IssueEphemeralCredential", mock.Anything, uint64(3), "").
		Return(nil, errs.NewValidationError("apiVersion", "is required")).Once()
	w = s.do(t, http.MethodPost, "/guests/3/ephemeral-credentials", guestToken, dto.EphemeralCredentialRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a guest can only mint credentials for its own customer
	w = s.do(t, http.MethodPost, "/guests/4/ephemeral-credentials", guestToken, dto.EphemeralCredentialRequest{APIVersion: "2023-10-16"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/guests/3/ephemeral-credentials", "", dto.EphemeralCredentialRequest{APIVersion: "2023-10-16"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	s := newTestServer(t, stubPinger{})
	s.onboarding.On("GetHost", mock.Anything, uint64(7)).
		Return(nil, errors.New("pq: relation \"hosts\" does not exist"))

	w := s.do(t, http.MethodGet, "/accounts/7", s.token(t, middleware.RoleHost, 7), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, errs.CodeInternalServer, resp.Code)
	assert.Equal(t, "Internal server error", resp.Message)
}
