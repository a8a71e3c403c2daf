// Package counterparty pairs the payer and payee of a payment request.
package counterparty

import (
	"context"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// PlaceholderResolver uses the ids given in the query. A missing host id falls back
// to the first onboarded host and a missing guest id to the most recently created guest.
// There is no matching by location or session.
type PlaceholderResolver struct {
	hosts  persistence.HostRepository
	guests persistence.GuestRepository
}

// NewPlaceholderResolver creates a new PlaceholderResolver
func NewPlaceholderResolver(hosts persistence.HostRepository, guests persistence.GuestRepository) *PlaceholderResolver {
	return &PlaceholderResolver{hosts: hosts, guests: guests}
}

// ResolveCounterparty implements usecase.CounterpartyResolver
func (r *PlaceholderResolver) ResolveCounterparty(ctx context.Context, query usecase.CounterpartyQuery) (*usecase.Counterparty, error) {
	host, err := r.host(ctx, query.HostID)
	if err != nil {
		return nil, err
	}

	guest, err := r.guest(ctx, query.GuestID)
	if err != nil {
		return nil, err
	}

	return &usecase.Counterparty{Host: host, Guest: guest}, nil
}

func (r *PlaceholderResolver) host(ctx context.Context, id uint64) (*entity.Host, error) {
	if id != 0 {
		return r.hosts.GetByID(ctx, id)
	}
	return r.hosts.FirstOnboarded(ctx)
}

func (r *PlaceholderResolver) guest(ctx context.Context, id uint64) (*entity.Guest, error) {
	if id != 0 {
		return r.guests.GetByID(ctx, id)
	}
	return r.guests.Latest(ctx)
}
