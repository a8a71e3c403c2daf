package processor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	applogger "github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestClassifyStripeError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind errs.FailureKind
		expectedCode string
	}{
		{
			name:         "Network failure",
			err:          errors.New("dial tcp: connection refused"),
			expectedKind: errs.Transient,
		},
		{
			name: "Card declined",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusPaymentRequired,
				Type:           stripe.ErrorTypeCard,
				Code:           stripe.ErrorCode("card_declined"),
				Msg:            "Your card was declined.",
			},
			expectedKind: errs.Permanent,
			expectedCode: "card_declined",
		},
		{
			name: "Rate limited",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusTooManyRequests,
				Type:           stripe.ErrorTypeInvalidRequest,
				Code:           stripe.ErrorCode("rate_limit"),
			},
			expectedKind: errs.Transient,
			expectedCode: "rate_limit",
		},
		{
			name: "Processor outage",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusServiceUnavailable,
				Type:           stripe.ErrorTypeAPI,
			},
			expectedKind: errs.Transient,
			expectedCode: "api_error",
		},
		{
			name: "Same idempotency key still in flight",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusConflict,
				Type:           stripe.ErrorTypeIdempotency,
			},
			expectedKind: errs.Transient,
			expectedCode: "idempotency_error",
		},
		{
			name: "Object locked by a concurrent request",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusTooManyRequests,
				Type:           stripe.ErrorTypeInvalidRequest,
				Code:           stripe.ErrorCodeLockTimeout,
			},
			expectedKind: errs.Transient,
			expectedCode: "lock_timeout",
		},
		{
			name: "Invalid request",
			err: &stripe.Error{
				HTTPStatusCode: http.StatusBadRequest,
				Type:           stripe.ErrorTypeInvalidRequest,
				Code:           stripe.ErrorCode("resource_missing"),
			},
			expectedKind: errs.Permanent,
			expectedCode: "resource_missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStripeError(processorport.OpPlatformCharge, tt.err)

			var upstream *errs.UpstreamProcessorError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, processorport.OpPlatformCharge, upstream.Operation)
			assert.Equal(t, tt.expectedKind, upstream.Kind)
			assert.Equal(t, tt.expectedCode, upstream.Code)
			assert.ErrorIs(t, err, errs.ErrUpstreamProcessor)
		})
	}
}

// stripeStub answers the card lookup and hands payment intent creation to intent
func stripeStub(t *testing.T, cards string, intent http.HandlerFunc) *StripeProcessor {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/payment_methods":
			assert.Equal(t, "cus_1", r.URL.Query().Get("customer"))
			assert.Equal(t, "card", r.URL.Query().Get("type"))
			_, _ = w.Write([]byte(`{"object":"list","url":"/v1/payment_methods","has_more":false,"data":[` + cards + `]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents":
			intent(w, r)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	p, err := NewStripeProcessor(StripeConfig{
		SecretKey:  "sk_test_123",
		URL:        server.URL,
		HTTPClient: server.Client(),
	}, applogger.NewNoopLogger())
	require.NoError(t, err)
	return p
}

const cardOnFile = `{"id":"pm_1","object":"payment_method","type":"card"}`

func TestStripeProcessor_CreatePlatformCharge(t *testing.T) {
	var (
		gotIdempotencyKey string
		gotForm           url.Values
	)
	p := stripeStub(t, cardOnFile, func(w http.ResponseWriter, r *http.Request) {
		gotIdempotencyKey = r.Header.Get("Idempotency-Key")
		_ = r.ParseForm()
		gotForm = r.PostForm
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded","amount":1000,"currency":"usd","latest_charge":"ch_123"}`))
	})

	charge, err := p.CreatePlatformCharge(context.Background(), processorport.PlatformChargeRequest{
		Amount:         1000,
		Currency:       "usd",
		CustomerID:     "cus_1",
		TransferGroup:  "txn-1",
		Description:    "Jenny R. for Rocket Rides",
		IdempotencyKey: "txn-1:charge:0",
	})
	require.NoError(t, err)

	assert.Equal(t, "ch_123", charge.ID)
	assert.Equal(t, "pi_1", charge.PaymentIntentID)
	assert.Equal(t, int64(1000), charge.Amount)
	assert.Equal(t, "txn-1:charge:0", gotIdempotencyKey)
	assert.Equal(t, "txn-1", gotForm.Get("transfer_group"))
	assert.Equal(t, "pm_1", gotForm.Get("payment_method"))
	assert.Equal(t, "cus_1", gotForm.Get("customer"))
	assert.Equal(t, "true", gotForm.Get("confirm"))
	assert.Empty(t, gotForm.Get("transfer_data[destination]"))
}

func TestStripeProcessor_CreateDestinationCharge(t *testing.T) {
	var gotForm url.Values
	p := stripeStub(t, cardOnFile, func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotForm = r.PostForm
		_, _ = w.Write([]byte(`{"id":"pi_2","object":"payment_intent","status":"succeeded","amount":5000,"currency":"usd","latest_charge":"ch_2"}`))
	})

	charge, err := p.CreateDestinationCharge(context.Background(), processorport.DestinationChargeRequest{
		Amount:               5000,
		Currency:             "usd",
		CustomerID:           "cus_1",
		DestinationAccountID: "acct_1",
		TransferAmount:       4000,
		IdempotencyKey:       "txn-2:charge:0",
	})
	require.NoError(t, err)

	assert.Equal(t, "ch_2", charge.ID)
	assert.Equal(t, "acct_1", gotForm.Get("on_behalf_of"))
	assert.Equal(t, "acct_1", gotForm.Get("transfer_data[destination]"))
	assert.Equal(t, "4000", gotForm.Get("transfer_data[amount]"))
	assert.Equal(t, "pm_1", gotForm.Get("payment_method"))
}

func TestStripeProcessor_ChargeFailures(t *testing.T) {
	tests := []struct {
		name         string
		cards        string
		intent       http.HandlerFunc
		expectedCode string
	}{
		{
			name:  "Card declined",
			cards: cardOnFile,
			intent: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
			},
			expectedCode: "card_declined",
		},
		{
			name:  "No card on file",
			cards: "",
			intent: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no payment intent may be created without a card")
			},
			expectedCode: "no_payment_method",
		},
		{
			name:  "Card requires authentication",
			cards: cardOnFile,
			intent: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"pi_3","object":"payment_intent","status":"requires_action","amount":1000,"currency":"usd"}`))
			},
			expectedCode: "payment_intent_requires_action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := stripeStub(t, tt.cards, tt.intent)

			_, err := p.CreatePlatformCharge(context.Background(), processorport.PlatformChargeRequest{
				Amount:         1000,
				Currency:       "usd",
				CustomerID:     "cus_1",
				IdempotencyKey: "txn-1:charge:0",
			})

			assert.True(t, errs.IsPermanentProcessorError(err))
			var upstream *errs.UpstreamProcessorError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, tt.expectedCode, upstream.Code)
		})
	}
}

func TestStripeProcessor_FailedCallsAreNotRetried(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"Service unavailable"}}`))
	}))
	defer server.Close()

	p, err := NewStripeProcessor(StripeConfig{
		SecretKey:  "sk_test_123",
		URL:        server.URL,
		HTTPClient: server.Client(),
	}, applogger.NewNoopLogger())
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "Payout",
			call: func() error {
				_, err := p.CreatePayout(context.Background(), processorport.PayoutRequest{AccountID: "acct_1", Amount: 1000, Currency: "usd"})
				return err
			},
		},
		{
			name: "Transfer",
			call: func() error {
				_, err := p.CreateTransfer(context.Background(), processorport.TransferRequest{
					Amount:               1000,
					Currency:             "usd",
					DestinationAccountID: "acct_1",
					TransferGroup:        "txn-1",
					IdempotencyKey:       "txn-1:transfer",
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests.Store(0)

			err := tt.call()

			assert.True(t, errs.IsTransientProcessorError(err))
			assert.Equal(t, int32(1), requests.Load())
		})
	}
}

func TestNewStripeProcessor_RequiresKey(t *testing.T) {
	_, err := NewStripeProcessor(StripeConfig{}, applogger.NewNoopLogger())
	assert.Error(t, err)
}
