package usecase

import (
	"context"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// CounterpartyQuery names the parties of a payment when the caller knows them
type CounterpartyQuery struct {
	HostID  uint64
	GuestID uint64
}

// Counterparty is the payee and payer of one transaction
type Counterparty struct {
	Host  *entity.Host
	Guest *entity.Guest
}

// CounterpartyResolver pairs a payer with a payee
type CounterpartyResolver interface {
	ResolveCounterparty(ctx context.Context, query CounterpartyQuery) (*Counterparty, error)
}
