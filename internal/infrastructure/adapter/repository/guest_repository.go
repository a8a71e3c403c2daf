package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GuestRepository implements persistence.GuestRepository using GORM
type GuestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGuestRepository creates a new GuestRepository instance
func NewGuestRepository(db *gorm.DB, logger coreport.Logger) *GuestRepository {
	return &GuestRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func guestToEntity(m *model.Guest) *entity.Guest {
	return &entity.Guest{
		ID:                  m.ID,
		Email:               m.Email,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		ProcessorCustomerID: deref(m.ProcessorCustomerID),
		CreatedAt:           m.CreatedAt,
	}
}

// Create stores a new guest and assigns its ID
func (r *GuestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	guestModel := model.Guest{
		Email:               guest.Email,
		FirstName:           guest.FirstName,
		LastName:            guest.LastName,
		ProcessorCustomerID: nullable(guest.ProcessorCustomerID),
		CreatedAt:           guest.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&guestModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.ErrDuplicateRecord
		}
		return dbError(r.logger, "create guest", err, map[string]any{"email": guest.Email})
	}

	guest.ID = guestModel.ID
	return nil
}

// GetByID retrieves a guest by ID
func (r *GuestRepository) GetByID(ctx context.Context, id uint64) (*entity.Guest, error) {
	var guestModel model.Guest
	if err := r.db.WithContext(ctx).First(&guestModel, id).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrGuestNotFound, "get guest", err, map[string]any{"guest_id": id})
	}
	return guestToEntity(&guestModel), nil
}

// GetByEmail retrieves a guest by its unique email
func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*entity.Guest, error) {
	var guestModel model.Guest
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&guestModel).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrGuestNotFound, "get guest by email", err, map[string]any{"email": email})
	}
	return guestToEntity(&guestModel), nil
}

// SetProcessorCustomer stores the customer reference only if none is stored yet
func (r *GuestRepository) SetProcessorCustomer(ctx context.Context, id uint64, customerID string) error {
	result := r.db.WithContext(ctx).Model(&model.Guest{}).
		Where("id = ? AND processor_customer_id IS NULL", id).
		Update("processor_customer_id", customerID)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateRecord
		}
		return dbError(r.logger, "set processor customer", result.Error, map[string]any{"guest_id": id})
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, errs.ErrGuestNotFound) {
			return errs.ErrGuestNotFound
		}
		return err
	}
	r.logger.Warn("Processor customer already stored for guest", map[string]any{
		"guest_id": id,
	})
	return errs.ErrStaleRecord
}

// Latest returns the most recently created guest
func (r *GuestRepository) Latest(ctx context.Context) (*entity.Guest, error) {
	var guestModel model.Guest
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").First(&guestModel).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrGuestNotFound, "latest guest", err, nil)
	}
	return guestToEntity(&guestModel), nil
}
