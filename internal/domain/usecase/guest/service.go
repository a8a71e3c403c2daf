package guest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// DefaultGuests are created by SeedDefaultGuests for demo environments
var DefaultGuests = []usecase.RegisterGuestRequest{
	{Email: "jenny.rosen@example.com", FirstName: "Jenny", LastName: "Rosen"},
	{Email: "kathleen.banks@example.com", FirstName: "Kathleen", LastName: "Banks"},
	{Email: "victoria.thompson@example.com", FirstName: "Victoria", LastName: "Thompson"},
	{Email: "ruth.hamilton@example.com", FirstName: "Ruth", LastName: "Hamilton"},
	{Email: "emma.lane@example.com", FirstName: "Emma", LastName: "Lane"},
}

// Service implements usecase.GuestUseCase
type Service struct {
	guests       persistence.GuestRepository
	processor    processor.PaymentProcessor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new guest service
func NewService(
	guests persistence.GuestRepository,
	paymentProcessor processor.PaymentProcessor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		guests:       guests,
		processor:    paymentProcessor,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RegisterGuest creates the processor customer and then stores the guest with its reference
func (s *Service) RegisterGuest(ctx context.Context, req usecase.RegisterGuestRequest) (*entity.Guest, error) {
	guest, err := entity.NewGuest(req.Email, req.FirstName, req.LastName, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// Checked first so a taken email does not leave an unused processor customer behind.
	if _, err := s.guests.GetByEmail(ctx, guest.Email); err == nil {
		return nil, fmt.Errorf("%w: guest %s already exists", errs.ErrDuplicateRecord, guest.Email)
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	customer, err := s.processor.CreateCustomer(ctx, processor.CustomerRequest{
		Email:       guest.Email,
		Description: guest.DisplayName(),
	})
	if err != nil {
		s.logger.Error("Failed to create processor customer", map[string]any{
			"email": guest.Email,
			"error": err.Error(),
		})
		return nil, err
	}
	guest.ProcessorCustomerID = customer.ID

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}

	s.logger.Info("Guest registered", map[string]any{
		"guest_id":    guest.ID,
		"customer_id": guest.ProcessorCustomerID,
	})
	return guest, nil
}

// GetGuest loads a guest
func (s *Service) GetGuest(ctx context.Context, guestID uint64) (*entity.Guest, error) {
	return s.guests.GetByID(ctx, guestID)
}

// SeedDefaultGuests registers the demo guests that don't exist yet
func (s *Service) SeedDefaultGuests(ctx context.Context) (int, error) {
	created := 0
	for _, req := range DefaultGuests {
		_, err := s.RegisterGuest(ctx, req)
		if errors.Is(err, errs.ErrDuplicateRecord) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}

	s.logger.Info("Default guests seeded", map[string]any{
		"created": created,
		"total":   len(DefaultGuests),
	})
	return created, nil
}

// IssueEphemeralCredential returns a client credential for the guest's own processor customer
func (s *Service) IssueEphemeralCredential(ctx context.Context, guestID uint64, apiVersion string) (*usecase.EphemeralCredential, error) {
	apiVersion = strings.TrimSpace(apiVersion)
	if apiVersion == "" {
		return nil, errs.NewValidationError("apiVersion", "is required")
	}

	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	if !guest.HasProcessorCustomer() {
		if err := s.ensureCustomer(ctx, guest); err != nil {
			return nil, err
		}
	}

	key, err := s.processor.CreateEphemeralKey(ctx, processor.EphemeralKeyRequest{
		CustomerID: guest.ProcessorCustomerID,
		APIVersion: apiVersion,
	})
	if err != nil {
		return nil, err
	}

	if key.CustomerID != "" && key.CustomerID != guest.ProcessorCustomerID {
		s.logger.Error("Ephemeral key issued for another customer", map[string]any{
			"guest_id":    guestID,
			"customer_id": guest.ProcessorCustomerID,
			"key_for":     key.CustomerID,
		})
		return nil, fmt.Errorf("%w: credential scope mismatch", errs.ErrInternalServer)
	}

	s.logger.Debug("Ephemeral credential issued", map[string]any{
		"guest_id":    guestID,
		"api_version": apiVersion,
	})

	return &usecase.EphemeralCredential{
		GuestID:    guestID,
		CustomerID: guest.ProcessorCustomerID,
		APIVersion: apiVersion,
		Secret:     key.Secret,
		ExpiresAt:  key.ExpiresAt,
		RawJSON:    key.RawJSON,
	}, nil
}

// ensureCustomer attaches a processor customer to a guest stored without one
func (s *Service) ensureCustomer(ctx context.Context, guest *entity.Guest) error {
	customer, err := s.processor.CreateCustomer(ctx, processor.CustomerRequest{
		Email:       guest.Email,
		Description: guest.DisplayName(),
	})
	if err != nil {
		return err
	}

	err = s.guests.SetProcessorCustomer(ctx, guest.ID, customer.ID)
	if errors.Is(err, errs.ErrStaleRecord) {
		current, getErr := s.guests.GetByID(ctx, guest.ID)
		if getErr != nil {
			return getErr
		}
		s.logger.Warn("Processor customer already attached by another request", map[string]any{
			"guest_id":           guest.ID,
			"customer_id":        current.ProcessorCustomerID,
			"orphan_customer_id": customer.ID,
		})
		guest.ProcessorCustomerID = current.ProcessorCustomerID
		return nil
	}
	if err != nil {
		return err
	}

	guest.ProcessorCustomerID = customer.ID
	return nil
}
