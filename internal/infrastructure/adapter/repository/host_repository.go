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

// HostRepository implements persistence.HostRepository using GORM
type HostRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewHostRepository creates a new HostRepository instance
func NewHostRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *HostRepository {
	return &HostRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func hostToModel(host *entity.Host) model.Host {
	return model.Host{
		ID:                 host.ID,
		Email:              host.Email,
		Type:               string(host.Type),
		Country:            host.Country,
		FirstName:          host.FirstName,
		LastName:           host.LastName,
		BusinessName:       host.BusinessName,
		ProcessorAccountID: nullable(host.ProcessorAccountID),
		OnboardingComplete: host.OnboardingComplete,
		CreatedAt:          host.CreatedAt,
		UpdatedAt:          host.UpdatedAt,
	}
}

func hostToEntity(m *model.Host) *entity.Host {
	return &entity.Host{
		ID:                 m.ID,
		Email:              m.Email,
		Type:               entity.HostType(m.Type),
		Country:            m.Country,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		BusinessName:       m.BusinessName,
		ProcessorAccountID: deref(m.ProcessorAccountID),
		OnboardingComplete: m.OnboardingComplete,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// Create stores a new host and assigns its ID
func (r *HostRepository) Create(ctx context.Context, host *entity.Host) error {
	hostModel := hostToModel(host)

	if err := r.db.WithContext(ctx).Create(&hostModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Host email already registered", map[string]any{
				"email": host.Email,
			})
			return errs.ErrDuplicateRecord
		}
		return dbError(r.logger, "create host", err, map[string]any{"email": host.Email})
	}

	host.ID = hostModel.ID
	r.logger.Debug("Host created", map[string]any{
		"host_id": host.ID,
	})
	return nil
}

// GetByID retrieves a host by ID
func (r *HostRepository) GetByID(ctx context.Context, id uint64) (*entity.Host, error) {
	var hostModel model.Host
	if err := r.db.WithContext(ctx).First(&hostModel, id).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrHostNotFound, "get host", err, map[string]any{"host_id": id})
	}
	return hostToEntity(&hostModel), nil
}

// GetByEmail retrieves a host by its unique email
func (r *HostRepository) GetByEmail(ctx context.Context, email string) (*entity.Host, error) {
	var hostModel model.Host
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&hostModel).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrHostNotFound, "get host by email", err, map[string]any{"email": email})
	}
	return hostToEntity(&hostModel), nil
}

// UpdateProfile persists type, country and name fields
func (r *HostRepository) UpdateProfile(ctx context.Context, host *entity.Host) error {
	result := r.db.WithContext(ctx).Model(&model.Host{}).
		Where("id = ?", host.ID).
		Updates(map[string]any{
			"type":          string(host.Type),
			"country":       host.Country,
			"first_name":    host.FirstName,
			"last_name":     host.LastName,
			"business_name": host.BusinessName,
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return dbError(r.logger, "update host profile", result.Error, map[string]any{"host_id": host.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrHostNotFound
	}
	return nil
}

// SetProcessorAccount stores the account reference only if none is stored yet
func (r *HostRepository) SetProcessorAccount(ctx context.Context, id uint64, accountID string) error {
	result := r.db.WithContext(ctx).Model(&model.Host{}).
		Where("id = ? AND processor_account_id IS NULL", id).
		Updates(map[string]any{
			"processor_account_id": accountID,
			"updated_at":           r.timeProvider.Now(),
		})
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateRecord
		}
		return dbError(r.logger, "set processor account", result.Error, map[string]any{"host_id": id})
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, id, "Processor account already stored for host")
	}
	return nil
}

// MarkOnboardingComplete sets the completion flag on a host that has an account reference
func (r *HostRepository) MarkOnboardingComplete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Host{}).
		Where("id = ? AND processor_account_id IS NOT NULL", id).
		Updates(map[string]any{
			"onboarding_complete": true,
			"updated_at":          r.timeProvider.Now(),
		})
	if result.Error != nil {
		return dbError(r.logger, "mark onboarding complete", result.Error, map[string]any{"host_id": id})
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, id, "Onboarding completion refused, host has no processor account")
	}
	return nil
}

// FirstOnboarded returns the earliest created onboarded host
func (r *HostRepository) FirstOnboarded(ctx context.Context) (*entity.Host, error) {
	var hostModel model.Host
	err := r.db.WithContext(ctx).
		Where("onboarding_complete = ? AND processor_account_id IS NOT NULL", true).
		Order("created_at ASC, id ASC").
		First(&hostModel).Error
	if err != nil {
		return nil, notFoundOr(r.logger, errs.ErrHostNotFound, "first onboarded host", err, nil)
	}
	return hostToEntity(&hostModel), nil
}

// missingOrStale tells a missing host apart from a conditional update that lost its condition
func (r *HostRepository) missingOrStale(ctx context.Context, id uint64, message string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, errs.ErrHostNotFound) {
			return errs.ErrHostNotFound
		}
		return err
	}
	r.logger.Warn(message, map[string]any{
		"host_id": id,
	})
	return errs.ErrStaleRecord
}
