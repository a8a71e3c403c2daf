package processor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeConfig holds the Stripe connection settings
type StripeConfig struct {
	SecretKey         string
	URL               string // overrides the API base URL, used by tests
	HTTPClient        *http.Client
	MaxNetworkRetries int64
}

// StripeProcessor implements the payment processor port with the Stripe Connect API
type StripeProcessor struct {
	api    *client.API
	logger coreport.Logger
}

// NewStripeProcessor creates a Stripe client that logs through logger
func NewStripeProcessor(config StripeConfig, logger coreport.Logger) (*StripeProcessor, error) {
	if config.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}

	backendConfig := &stripe.BackendConfig{
		LeveledLogger:     &stripeLogger{logger: logger},
		MaxNetworkRetries: stripe.Int64(config.MaxNetworkRetries),
	}
	if config.URL != "" {
		backendConfig.URL = stripe.String(config.URL)
	}
	if config.HTTPClient != nil {
		backendConfig.HTTPClient = config.HTTPClient
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	}

	return &StripeProcessor{
		api:    client.New(config.SecretKey, backends),
		logger: logger,
	}, nil
}

// CreateAccount creates an Express connected account
func (p *StripeProcessor) CreateAccount(ctx context.Context, req processorport.AccountRequest) (*processorport.Account, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		Country:      stripe.String(req.Country),
		Email:        stripe.String(req.Email),
		BusinessType: stripe.String(string(req.Type)),
	}
	if req.Type == entity.HostTypeCompany {
		params.Company = &stripe.AccountCompanyParams{
			Name: stripe.String(req.BusinessName),
		}
	} else {
		params.Individual = &stripe.PersonParams{
			FirstName: stripe.String(req.FirstName),
			LastName:  stripe.String(req.LastName),
			Email:     stripe.String(req.Email),
		}
	}
	params.Context = ctx
	params.SetIdempotencyKey(fmt.Sprintf("host:%d:account", req.HostID))
	params.AddMetadata("host_id", fmt.Sprintf("%d", req.HostID))

	account, err := p.api.Accounts.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateAccount, err)
	}
	return toAccount(account), nil
}

// RetrieveAccount reads a connected account
func (p *StripeProcessor) RetrieveAccount(ctx context.Context, accountID string) (*processorport.Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := p.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpRetrieveAccount, err)
	}
	return toAccount(account), nil
}

// CreateAccountLink issues a hosted onboarding URL
func (p *StripeProcessor) CreateAccountLink(ctx context.Context, req processorport.AccountLinkRequest) (*processorport.Link, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(req.AccountID),
		RefreshURL: stripe.String(req.RefreshURL),
		ReturnURL:  stripe.String(req.ReturnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := p.api.AccountLinks.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateAccountLink, err)
	}
	return &processorport.Link{
		URL:       link.URL,
		ExpiresAt: time.Unix(link.ExpiresAt, 0).UTC(),
	}, nil
}

// CreateLoginLink issues a login URL to the Express dashboard
func (p *StripeProcessor) CreateLoginLink(ctx context.Context, accountID string) (*processorport.Link, error) {
	params := &stripe.LoginLinkParams{
		Account: stripe.String(accountID),
	}
	params.Context = ctx

	link, err := p.api.LoginLinks.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateLoginLink, err)
	}
	return &processorport.Link{URL: link.URL}, nil
}

// CreateCustomer creates the customer that carries a guest's funding source
func (p *StripeProcessor) CreateCustomer(ctx context.Context, req processorport.CustomerRequest) (*processorport.Customer, error) {
	params := &stripe.CustomerParams{
		Email:       stripe.String(req.Email),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx

	customer, err := p.api.Customers.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateCustomer, err)
	}
	return &processorport.Customer{ID: customer.ID}, nil
}

// CreateDestinationCharge charges the guest on behalf of the host account and moves the host share in the same call
func (p *StripeProcessor) CreateDestinationCharge(ctx context.Context, req processorport.DestinationChargeRequest) (*processorport.Charge, error) {
	paymentMethod, err := p.latestCard(ctx, processorport.OpDestinationCharge, req.CustomerID)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		Customer:           stripe.String(req.CustomerID),
		PaymentMethod:      stripe.String(paymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String(req.Description),
		OnBehalfOf:         stripe.String(req.DestinationAccountID),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Amount:      stripe.Int64(req.TransferAmount),
			Destination: stripe.String(req.DestinationAccountID),
		},
	}
	if req.StatementDescriptor != "" {
		params.StatementDescriptor = stripe.String(req.StatementDescriptor)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return p.confirmPaymentIntent(processorport.OpDestinationCharge, params)
}

// CreatePlatformCharge charges the guest to the platform account, tagged with the transfer group
func (p *StripeProcessor) CreatePlatformCharge(ctx context.Context, req processorport.PlatformChargeRequest) (*processorport.Charge, error) {
	paymentMethod, err := p.latestCard(ctx, processorport.OpPlatformCharge, req.CustomerID)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		Customer:           stripe.String(req.CustomerID),
		PaymentMethod:      stripe.String(paymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String(req.Description),
		TransferGroup:      stripe.String(req.TransferGroup),
	}
	if req.StatementDescriptor != "" {
		params.StatementDescriptor = stripe.String(req.StatementDescriptor)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return p.confirmPaymentIntent(processorport.OpPlatformCharge, params)
}

// latestCard returns the most recently attached card of a customer.
// Guests attach cards as payment methods through their ephemeral key.
func (p *StripeProcessor) latestCard(ctx context.Context, operation, customerID string) (string, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := p.api.PaymentMethods.List(params)
	if iter.Next() {
		return iter.PaymentMethod().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", classifyStripeError(operation, err)
	}
	return "", errs.NewUpstreamProcessorError(operation, errs.Permanent, "no_payment_method",
		fmt.Sprintf("customer %s has no card on file", customerID), nil)
}

func (p *StripeProcessor) confirmPaymentIntent(operation string, params *stripe.PaymentIntentParams) (*processorport.Charge, error) {
	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, classifyStripeError(operation, err)
	}
	// Cards that need a further customer action cannot be completed server side
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, errs.NewUpstreamProcessorError(operation, errs.Permanent,
			"payment_intent_"+string(intent.Status),
			fmt.Sprintf("payment intent %s ended in status %s", intent.ID, intent.Status), nil)
	}
	return toCharge(intent), nil
}

// CreateTransfer moves the host share from the platform to the connected account
func (p *StripeProcessor) CreateTransfer(ctx context.Context, req processorport.TransferRequest) (*processorport.Transfer, error) {
	params := &stripe.TransferParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		Destination:   stripe.String(req.DestinationAccountID),
		TransferGroup: stripe.String(req.TransferGroup),
	}
	if req.SourceTransaction != "" {
		params.SourceTransaction = stripe.String(req.SourceTransaction)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	transfer, err := p.api.Transfers.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateTransfer, err)
	}
	return &processorport.Transfer{
		ID:            transfer.ID,
		Amount:        transfer.Amount,
		TransferGroup: transfer.TransferGroup,
	}, nil
}

// RetrieveBalance reads the balance of a connected account
func (p *StripeProcessor) RetrieveBalance(ctx context.Context, accountID string) (*processorport.Balance, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	balance, err := p.api.Balance.Get(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpRetrieveBalance, err)
	}
	return &processorport.Balance{
		Available: toMoney(balance.Available),
		Pending:   toMoney(balance.Pending),
	}, nil
}

// CreatePayout sweeps funds from a connected account to its bank account
func (p *StripeProcessor) CreatePayout(ctx context.Context, req processorport.PayoutRequest) (*processorport.Payout, error) {
	params := &stripe.PayoutParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	if req.StatementDescriptor != "" {
		params.StatementDescriptor = stripe.String(req.StatementDescriptor)
	}
	params.Context = ctx
	params.SetStripeAccount(req.AccountID)

	payout, err := p.api.Payouts.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreatePayout, err)
	}
	return &processorport.Payout{
		ID:          payout.ID,
		Amount:      payout.Amount,
		Currency:    string(payout.Currency),
		Status:      string(payout.Status),
		ArrivalDate: time.Unix(payout.ArrivalDate, 0).UTC(),
	}, nil
}

// CreateEphemeralKey issues a client credential for one customer, bound to the client's API version
func (p *StripeProcessor) CreateEphemeralKey(ctx context.Context, req processorport.EphemeralKeyRequest) (*processorport.EphemeralKey, error) {
	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(req.CustomerID),
		StripeVersion: stripe.String(req.APIVersion),
	}
	params.Context = ctx

	key, err := p.api.EphemeralKeys.New(params)
	if err != nil {
		return nil, classifyStripeError(processorport.OpCreateEphemeralKey, err)
	}
	return &processorport.EphemeralKey{
		ID:         key.ID,
		Secret:     key.Secret,
		CustomerID: req.CustomerID,
		APIVersion: req.APIVersion,
		ExpiresAt:  time.Unix(key.Expires, 0).UTC(),
		RawJSON:    key.RawJSON,
	}, nil
}

func toAccount(account *stripe.Account) *processorport.Account {
	return &processorport.Account{
		ID:               account.ID,
		DetailsSubmitted: account.DetailsSubmitted,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
	}
}

func toCharge(intent *stripe.PaymentIntent) *processorport.Charge {
	charge := &processorport.Charge{
		ID:              intent.ID,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        string(intent.Currency),
	}
	if intent.LatestCharge != nil && intent.LatestCharge.ID != "" {
		charge.ID = intent.LatestCharge.ID
	}
	return charge
}

func toMoney(amounts []*stripe.Amount) []processorport.Money {
	money := make([]processorport.Money, 0, len(amounts))
	for _, a := range amounts {
		if a == nil {
			continue
		}
		money = append(money, processorport.Money{Amount: a.Amount, Currency: string(a.Currency)})
	}
	return money
}

// classifyStripeError turns a Stripe failure into an UpstreamProcessorError.
// Rate limits, 5xx answers, api errors, in-flight conflicts and network failures are
// transient. Anything the API rejected outright, such as a card decline, is permanent.
func classifyStripeError(operation string, err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return errs.NewUpstreamProcessorError(operation, errs.Transient, "", err.Error(), err)
	}

	kind := errs.Permanent
	switch {
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests,
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError,
		stripeErr.Type == stripe.ErrorTypeAPI:
		kind = errs.Transient
	// Another request with the same idempotency key or on the same object is still
	// in flight; its outcome is unknown, so the key must be kept for the retry.
	case stripeErr.HTTPStatusCode == http.StatusConflict,
		stripeErr.Type == stripe.ErrorTypeIdempotency,
		stripeErr.Code == stripe.ErrorCodeLockTimeout:
		kind = errs.Transient
	}

	code := string(stripeErr.Code)
	if code == "" {
		code = string(stripeErr.Type)
	}
	return errs.NewUpstreamProcessorError(operation, kind, code, stripeErr.Msg, err)
}

// stripeLogger forwards the Stripe client's own logging to the service logger
type stripeLogger struct {
	logger coreport.Logger
}

func (l *stripeLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), map[string]any{"component": "stripe"})
}

func (l *stripeLogger) Infof(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), map[string]any{"component": "stripe"})
}

func (l *stripeLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), map[string]any{"component": "stripe"})
}

func (l *stripeLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), map[string]any{"component": "stripe"})
}
