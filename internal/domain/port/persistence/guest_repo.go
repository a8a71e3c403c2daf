package persistence

import (
	"context"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
)

// GuestRepository defines methods to interact with guest records
type GuestRepository interface {
	// Create stores a new guest and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a guest with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, guest *entity.Guest) error

	// GetByID retrieves a guest by ID
	//
	// Possible errors:
	// - ErrGuestNotFound: If guest with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Guest, error)

	// GetByEmail retrieves a guest by its unique email
	//
	// Possible errors:
	// - ErrGuestNotFound: If no guest uses the email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Guest, error)

	// SetProcessorCustomer stores the customer reference only if none is stored yet
	//
	// Possible errors:
	// - ErrStaleRecord: If another customer reference was stored first
	// - ErrDatabaseConnection: If database connection fails
	SetProcessorCustomer(ctx context.Context, id uint64, customerID string) error

	// Latest returns the most recently created guest
	//
	// Possible errors:
	// - ErrGuestNotFound: If there are no guests
	// - ErrDatabaseConnection: If database connection fails
	Latest(ctx context.Context) (*entity.Guest, error)
}
