package persistence

import (
	"context"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// HostRepository defines methods to interact with host records.
// Every write touches exactly one record.
type HostRepository interface {
	// Create stores a new host and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a host with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, host *entity.Host) error

	// GetByID retrieves a host by ID
	//
	// Possible errors:
	// - ErrHostNotFound: If host with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Host, error)

	// GetByEmail retrieves a host by its unique email
	//
	// Possible errors:
	// - ErrHostNotFound: If no host uses the email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Host, error)

	// UpdateProfile persists type, country and name fields
	//
	// Possible errors:
	// - ErrHostNotFound: If host doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateProfile(ctx context.Context, host *entity.Host) error

	// SetProcessorAccount stores the account reference only if none is stored yet
	//
	// Possible errors:
	// - ErrStaleRecord: If another account reference was stored first
	// - ErrDatabaseConnection: If database connection fails
	SetProcessorAccount(ctx context.Context, id uint64, accountID string) error

	// MarkOnboardingComplete sets the completion flag on a host that has an account reference.
	// Marking an already complete host is a no-op.
	//
	// Possible errors:
	// - ErrStaleRecord: If the host has no account reference
	// - ErrDatabaseConnection: If database connection fails
	MarkOnboardingComplete(ctx context.Context, id uint64) error

	// FirstOnboarded returns the earliest created onboarded host
	//
	// Possible errors:
	// - ErrHostNotFound: If no host is onboarded
	// - ErrDatabaseConnection: If database connection fails
	FirstOnboarded(ctx context.Context) (*entity.Host, error)
}
