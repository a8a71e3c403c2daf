package processor

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// Operation names used in errors, logs and metrics
const (
	OpCreateAccount      = "create_account"
	OpRetrieveAccount    = "retrieve_account"
	OpCreateAccountLink  = "create_account_link"
	OpCreateLoginLink    = "create_login_link"
	OpCreateCustomer     = "create_customer"
	OpDestinationCharge  = "create_destination_charge"
	OpPlatformCharge     = "create_platform_charge"
	OpCreateTransfer     = "create_transfer"
	OpRetrieveBalance    = "retrieve_balance"
	OpCreatePayout       = "create_payout"
	OpCreateEphemeralKey = "create_ephemeral_key"
)

// AccountRequest holds the parameters a connected account is created with
type AccountRequest struct {
	HostID       uint64
	Type         entity.HostType
	Country      string
	Email        string
	FirstName    string
	LastName     string
	BusinessName string
}

// Account is the part of a connected account this service reads
type Account struct {
	ID               string
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

// AccountLinkRequest asks for a hosted onboarding URL
type AccountLinkRequest struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

// Link is a short lived URL issued by the processor
type Link struct {
	URL       string
	ExpiresAt time.Time
}

// CustomerRequest holds the parameters a customer is created with
type CustomerRequest struct {
	Email       string
	Description string
}

// Customer is a processor customer that carries a guest's funding source
type Customer struct {
	ID string
}

// DestinationChargeRequest is a single charge made on behalf of a connected account.
// The processor moves TransferAmount to DestinationAccountID as part of the same call.
type DestinationChargeRequest struct {
	Amount               int64
	Currency             string
	CustomerID           string
	DestinationAccountID string
	TransferAmount       int64
	Description          string
	StatementDescriptor  string
	IdempotencyKey       string
	Metadata             map[string]string
}

// PlatformChargeRequest is a charge against the platform account tagged with a transfer group
type PlatformChargeRequest struct {
	Amount              int64
	Currency            string
	CustomerID          string
	TransferGroup       string
	Description         string
	StatementDescriptor string
	IdempotencyKey      string
	Metadata            map[string]string
}

// Charge is the processor record of a successful charge
type Charge struct {
	ID              string // charge id, usable as a transfer source
	PaymentIntentID string
	Amount          int64
	Currency        string
}

// TransferRequest moves funds from the platform to a connected account.
// SourceTransaction ties the transfer to the charge that funded it, so it does not
// wait on the platform's available balance.
type TransferRequest struct {
	Amount               int64
	Currency             string
	DestinationAccountID string
	TransferGroup        string
	SourceTransaction    string
	IdempotencyKey       string
}

// Transfer is the processor record of a successful transfer
type Transfer struct {
	ID            string
	Amount        int64
	TransferGroup string
}

// Money is an amount in minor units of a currency
type Money struct {
	Amount   int64
	Currency string
}

// Balance of a connected account
type Balance struct {
	Available []Money
	Pending   []Money
}

// AvailableFor returns the available amount in currency, or zero
func (b *Balance) AvailableFor(currency string) int64 {
	return amountFor(b.Available, currency)
}

// PendingFor returns the pending amount in currency, or zero
func (b *Balance) PendingFor(currency string) int64 {
	return amountFor(b.Pending, currency)
}

func amountFor(entries []Money, currency string) int64 {
	var total int64
	for _, m := range entries {
		if m.Currency == currency {
			total += m.Amount
		}
	}
	return total
}

// PayoutRequest sweeps funds from a connected account to its external bank account
type PayoutRequest struct {
	AccountID           string
	Amount              int64
	Currency            string
	StatementDescriptor string
}

// Payout is the processor record of a payout
type Payout struct {
	ID          string
	Amount      int64
	Currency    string
	Status      string
	ArrivalDate time.Time
}

// EphemeralKeyRequest asks for a client credential scoped to one customer
type EphemeralKeyRequest struct {
	CustomerID string
	APIVersion string
}

// EphemeralKey is a short lived client credential
type EphemeralKey struct {
	ID         string
	Secret     string
	CustomerID string
	APIVersion string
	ExpiresAt  time.Time
	RawJSON    []byte
}

// PaymentProcessor is the third-party payment processor.
// Implementations return *errs.UpstreamProcessorError for every failed call.
type PaymentProcessor interface {
	CreateAccount(ctx context.Context, req AccountRequest) (*Account, error)
	RetrieveAccount(ctx context.Context, accountID string) (*Account, error)
	CreateAccountLink(ctx context.Context, req AccountLinkRequest) (*Link, error)
	CreateLoginLink(ctx context.Context, accountID string) (*Link, error)
	CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error)
	CreateDestinationCharge(ctx context.Context, req DestinationChargeRequest) (*Charge, error)
	CreatePlatformCharge(ctx context.Context, req PlatformChargeRequest) (*Charge, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error)
	RetrieveBalance(ctx context.Context, accountID string) (*Balance, error)
	CreatePayout(ctx context.Context, req PayoutRequest) (*Payout, error)
	CreateEphemeralKey(ctx context.Context, req EphemeralKeyRequest) (*EphemeralKey, error)
}
