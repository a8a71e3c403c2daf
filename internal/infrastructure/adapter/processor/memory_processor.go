package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	processorport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/google/uuid"
)

// MemoryProcessor is an in-process payment processor for local runs and tests.
// It honours idempotency keys the same way the real processor does: a repeated
// key returns the first result without moving money twice.
type MemoryProcessor struct {
	mu           sync.Mutex
	timeProvider coreport.TimeProvider
	publicDomain string

	accounts    map[string]*processorport.Account
	customers   map[string]struct{}
	balances    map[string]map[string]int64 // account id -> currency -> available
	charges     map[string]*processorport.Charge
	transfers   map[string]*processorport.Transfer
	idempotency map[string]any
	failures    map[string][]error
	calls       map[string]int
}

// NewMemoryProcessor creates an empty in-memory processor
func NewMemoryProcessor(timeProvider coreport.TimeProvider, publicDomain string) *MemoryProcessor {
	return &MemoryProcessor{
		timeProvider: timeProvider,
		publicDomain: publicDomain,
		accounts:     make(map[string]*processorport.Account),
		customers:    make(map[string]struct{}),
		balances:     make(map[string]map[string]int64),
		charges:      make(map[string]*processorport.Charge),
		transfers:    make(map[string]*processorport.Transfer),
		idempotency:  make(map[string]any),
		failures:     make(map[string][]error),
		calls:        make(map[string]int),
	}
}

// FailNext makes the next call of operation return err
func (p *MemoryProcessor) FailNext(operation string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[operation] = append(p.failures[operation], err)
}

// SubmitDetails marks an account as having completed hosted onboarding
func (p *MemoryProcessor) SubmitDetails(accountID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if account, ok := p.accounts[accountID]; ok {
		account.DetailsSubmitted = true
		account.ChargesEnabled = true
		account.PayoutsEnabled = true
	}
}

// Calls returns how many times operation was invoked, including replays and failures
func (p *MemoryProcessor) Calls(operation string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[operation]
}

// Available returns the available balance of an account in currency
func (p *MemoryProcessor) Available(accountID, currency string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balances[accountID][currency]
}

// begin counts the call and pops a scheduled failure. Callers hold p.mu.
func (p *MemoryProcessor) begin(ctx context.Context, operation string) error {
	p.calls[operation]++
	if err := ctx.Err(); err != nil {
		return errs.NewUpstreamProcessorError(operation, errs.Transient, "", err.Error(), err)
	}
	if queued := p.failures[operation]; len(queued) > 0 {
		p.failures[operation] = queued[1:]
		return queued[0]
	}
	return nil
}

func (p *MemoryProcessor) replay(operation, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	v, ok := p.idempotency[operation+"|"+key]
	return v, ok
}

func (p *MemoryProcessor) remember(operation, key string, v any) {
	if key != "" {
		p.idempotency[operation+"|"+key] = v
	}
}

func (p *MemoryProcessor) requireAccount(operation, accountID string) error {
	if _, ok := p.accounts[accountID]; !ok {
		return errs.NewUpstreamProcessorError(operation, errs.Permanent, "resource_missing",
			fmt.Sprintf("no such account: %s", accountID), nil)
	}
	return nil
}

func (p *MemoryProcessor) requireCustomer(operation, customerID string) error {
	if _, ok := p.customers[customerID]; !ok {
		return errs.NewUpstreamProcessorError(operation, errs.Permanent, "resource_missing",
			fmt.Sprintf("no such customer: %s", customerID), nil)
	}
	return nil
}

func (p *MemoryProcessor) credit(accountID, currency string, amount int64) {
	if p.balances[accountID] == nil {
		p.balances[accountID] = make(map[string]int64)
	}
	p.balances[accountID][currency] += amount
}

func newRef(prefix string) string {
	return prefix + "_" + uuid.NewString()[:18]
}

// CreateAccount creates a connected account
func (p *MemoryProcessor) CreateAccount(ctx context.Context, req processorport.AccountRequest) (*processorport.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpCreateAccount); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("host:%d", req.HostID)
	if v, ok := p.replay(processorport.OpCreateAccount, key); ok {
		account := *v.(*processorport.Account)
		return &account, nil
	}

	account := &processorport.Account{ID: newRef("acct")}
	p.accounts[account.ID] = account
	p.remember(processorport.OpCreateAccount, key, account)

	out := *account
	return &out, nil
}

// RetrieveAccount reads a connected account
func (p *MemoryProcessor) RetrieveAccount(ctx context.Context, accountID string) (*processorport.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpRetrieveAccount); err != nil {
		return nil, err
	}
	if err := p.requireAccount(processorport.OpRetrieveAccount, accountID); err != nil {
		return nil, err
	}
	out := *p.accounts[accountID]
	return &out, nil
}

// CreateAccountLink returns a link back into the service that completes onboarding
func (p *MemoryProcessor) CreateAccountLink(ctx context.Context, req processorport.AccountLinkRequest) (*processorport.Link, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpCreateAccountLink); err != nil {
		return nil, err
	}
	if err := p.requireAccount(processorport.OpCreateAccountLink, req.AccountID); err != nil {
		return nil, err
	}
	return &processorport.Link{
		URL:       fmt.Sprintf("%s?account=%s", req.ReturnURL, req.AccountID),
		ExpiresAt: p.timeProvider.Now().Add(5 * time.Minute),
	}, nil
}

// CreateLoginLink returns a dashboard link for an account
func (p *MemoryProcessor) CreateLoginLink(ctx context.Context, accountID string) (*processorport.Link, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpCreateLoginLink); err != nil {
		return nil, err
	}
	if err := p.requireAccount(processorport.OpCreateLoginLink, accountID); err != nil {
		return nil, err
	}
	return &processorport.Link{
		URL: fmt.Sprintf("%s/dashboard/%s", p.publicDomain, accountID),
	}, nil
}

// CreateCustomer creates a customer
func (p *MemoryProcessor) CreateCustomer(ctx context.Context, _ processorport.CustomerRequest) (*processorport.Customer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpCreateCustomer); err != nil {
		return nil, err
	}
	id := newRef("cus")
	p.customers[id] = struct{}{}
	return &processorport.Customer{ID: id}, nil
}

// CreateDestinationCharge charges a customer and credits the transfer amount to the destination
func (p *MemoryProcessor) CreateDestinationCharge(ctx context.Context, req processorport.DestinationChargeRequest) (*processorport.Charge, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	op := processorport.OpDestinationCharge
	if err := p.begin(ctx, op); err != nil {
		return nil, err
	}
	if v, ok := p.replay(op, req.IdempotencyKey); ok {
		charge := *v.(*processorport.Charge)
		return &charge, nil
	}
	if err := p.requireCustomer(op, req.CustomerID); err != nil {
		return nil, err
	}
	if err := p.requireAccount(op, req.DestinationAccountID); err != nil {
		return nil, err
	}

	charge := &processorport.Charge{ID: newRef("ch"), PaymentIntentID: newRef("pi"), Amount: req.Amount, Currency: req.Currency}
	p.charges[charge.ID] = charge
	p.credit(req.DestinationAccountID, req.Currency, req.TransferAmount)
	p.remember(op, req.IdempotencyKey, charge)

	out := *charge
	return &out, nil
}

// CreatePlatformCharge charges a customer to the platform account
func (p *MemoryProcessor) CreatePlatformCharge(ctx context.Context, req processorport.PlatformChargeRequest) (*processorport.Charge, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	op := processorport.OpPlatformCharge
	if err := p.begin(ctx, op); err != nil {
		return nil, err
	}
	if v, ok := p.replay(op, req.IdempotencyKey); ok {
		charge := *v.(*processorport.Charge)
		return &charge, nil
	}
	if err := p.requireCustomer(op, req.CustomerID); err != nil {
		return nil, err
	}

	charge := &processorport.Charge{ID: newRef("ch"), PaymentIntentID: newRef("pi"), Amount: req.Amount, Currency: req.Currency}
	p.charges[charge.ID] = charge
	p.remember(op, req.IdempotencyKey, charge)

	out := *charge
	return &out, nil
}

// CreateTransfer credits a connected account
func (p *MemoryProcessor) CreateTransfer(ctx context.Context, req processorport.TransferRequest) (*processorport.Transfer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	op := processorport.OpCreateTransfer
	if err := p.begin(ctx, op); err != nil {
		return nil, err
	}
	if v, ok := p.replay(op, req.IdempotencyKey); ok {
		transfer := *v.(*processorport.Transfer)
		return &transfer, nil
	}
	if err := p.requireAccount(op, req.DestinationAccountID); err != nil {
		return nil, err
	}
	if req.SourceTransaction != "" {
		if _, ok := p.charges[req.SourceTransaction]; !ok {
			return nil, errs.NewUpstreamProcessorError(op, errs.Permanent, "resource_missing",
				fmt.Sprintf("no such charge: %s", req.SourceTransaction), nil)
		}
	}

	transfer := &processorport.Transfer{ID: newRef("tr"), Amount: req.Amount, TransferGroup: req.TransferGroup}
	p.transfers[transfer.ID] = transfer
	p.credit(req.DestinationAccountID, req.Currency, req.Amount)
	p.remember(op, req.IdempotencyKey, transfer)

	out := *transfer
	return &out, nil
}

// RetrieveBalance returns the available balance of an account; nothing is ever pending
func (p *MemoryProcessor) RetrieveBalance(ctx context.Context, accountID string) (*processorport.Balance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(ctx, processorport.OpRetrieveBalance); err != nil {
		return nil, err
	}
	if err := p.requireAccount(processorport.OpRetrieveBalance, accountID); err != nil {
		return nil, err
	}

	balance := &processorport.Balance{}
	for currency, amount := range p.balances[accountID] {
		balance.Available = append(balance.Available, processorport.Money{Amount: amount, Currency: currency})
	}
	return balance, nil
}

// CreatePayout debits the available balance of an account
func (p *MemoryProcessor) CreatePayout(ctx context.Context, req processorport.PayoutRequest) (*processorport.Payout, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	op := processorport.OpCreatePayout
	if err := p.begin(ctx, op); err != nil {
		return nil, err
	}
	if err := p.requireAccount(op, req.AccountID); err != nil {
		return nil, err
	}
	if p.balances[req.AccountID][req.Currency] < req.Amount {
		return nil, errs.NewUpstreamProcessorError(op, errs.Permanent, "balance_insufficient",
			"insufficient available balance", nil)
	}

	p.credit(req.AccountID, req.Currency, -req.Amount)
	return &processorport.Payout{
		ID:          newRef("po"),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      "pending",
		ArrivalDate: p.timeProvider.Now().Add(48 * time.Hour),
	}, nil
}

// CreateEphemeralKey issues a key for an existing customer
func (p *MemoryProcessor) CreateEphemeralKey(ctx context.Context, req processorport.EphemeralKeyRequest) (*processorport.EphemeralKey, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	op := processorport.OpCreateEphemeralKey
	if err := p.begin(ctx, op); err != nil {
		return nil, err
	}
	if err := p.requireCustomer(op, req.CustomerID); err != nil {
		return nil, err
	}

	key := &processorport.EphemeralKey{
		ID:         newRef("ephkey"),
		Secret:     newRef("ek_test"),
		CustomerID: req.CustomerID,
		APIVersion: req.APIVersion,
		ExpiresAt:  p.timeProvider.Now().Add(time.Hour),
	}
	key.RawJSON = []byte(fmt.Sprintf(
		`{"id":%q,"object":"ephemeral_key","secret":%q,"expires":%d,"associated_objects":[{"id":%q,"type":"customer"}]}`,
		key.ID, key.Secret, key.ExpiresAt.Unix(), key.CustomerID))
	return key, nil
}
