package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/processor"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/usecase/lease"
)

// Paths under the public domain the processor redirects hosts to
const (
	RefreshPath = "/hosts/onboarding/refresh"
	ReturnPath  = "/hosts/onboarding/complete"
)

// Config holds the onboarding settings
type Config struct {
	PublicDomain string
	LockTimeout  time.Duration
}

// Service implements usecase.OnboardingUseCase
type Service struct {
	hosts        persistence.HostRepository
	locks        persistence.LockRepository
	processor    processor.PaymentProcessor
	serializer   *HostSerializer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	config       Config
}

// NewService creates a new onboarding service
func NewService(
	hosts persistence.HostRepository,
	locks persistence.LockRepository,
	paymentProcessor processor.PaymentProcessor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	config Config,
) *Service {
	return &Service{
		hosts:        hosts,
		locks:        locks,
		processor:    paymentProcessor,
		serializer:   NewHostSerializer(logger),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		config:       config,
	}
}

// RegisterHost creates a host from its sign-up fields
func (s *Service) RegisterHost(ctx context.Context, req usecase.RegisterHostRequest) (*entity.Host, error) {
	host, err := entity.NewHost(req.Email, req.Type, req.Country, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = host.ApplyProfile(entity.HostProfile{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
	}, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.hosts.Create(ctx, host); err != nil {
		return nil, err
	}

	s.logger.Info("Host registered", map[string]any{
		"host_id": host.ID,
		"type":    string(host.Type),
		"country": host.Country,
		"state":   string(host.OnboardingState()),
	})
	s.metrics.OnboardingTransition(string(host.OnboardingState()))
	return host, nil
}

// GetHost loads a host
func (s *Service) GetHost(ctx context.Context, hostID uint64) (*entity.Host, error) {
	return s.hosts.GetByID(ctx, hostID)
}

// UpdateProfile applies profile changes to a host
func (s *Service) UpdateProfile(ctx context.Context, hostID uint64, profile entity.HostProfile) (*entity.Host, error) {
	var updated *entity.Host

	err := s.serialize(ctx, hostID, func(ctx context.Context) error {
		host, err := s.hosts.GetByID(ctx, hostID)
		if err != nil {
			return err
		}

		before := host.OnboardingState()
		if err := host.ApplyProfile(profile, s.timeProvider); err != nil {
			return err
		}
		if err := s.hosts.UpdateProfile(ctx, host); err != nil {
			return err
		}

		if after := host.OnboardingState(); after != before {
			s.logger.Info("Host onboarding state changed", map[string]any{
				"host_id": hostID,
				"from":    string(before),
				"to":      string(after),
			})
			s.metrics.OnboardingTransition(string(after))
		}
		updated = host
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// StartOnboarding returns an onboarding link, creating the processor account if the host has none
func (s *Service) StartOnboarding(ctx context.Context, hostID uint64) (*usecase.OnboardingLink, error) {
	var result *usecase.OnboardingLink

	err := s.serialize(ctx, hostID, func(ctx context.Context) error {
		host, err := s.hosts.GetByID(ctx, hostID)
		if err != nil {
			return err
		}

		switch host.OnboardingState() {
		case entity.StateOnboarded:
			return errs.ErrAlreadyOnboarded
		case entity.StateRegistered:
			return errs.NewValidationError("profile", "missing "+strings.Join(host.MissingProfileFields(), ", "))
		}

		created := false
		if !host.HasProcessorAccount() {
			accountID, err := s.linkProcessorAccount(ctx, host)
			if err != nil {
				return err
			}
			created = accountID != ""
		}

		link, err := s.processor.CreateAccountLink(ctx, processor.AccountLinkRequest{
			AccountID:  host.ProcessorAccountID,
			RefreshURL: s.config.PublicDomain + RefreshPath,
			ReturnURL:  s.config.PublicDomain + ReturnPath,
		})
		if err != nil {
			s.logger.Error("Failed to create onboarding link", map[string]any{
				"host_id":    hostID,
				"account_id": host.ProcessorAccountID,
				"error":      err.Error(),
			})
			return err
		}

		result = &usecase.OnboardingLink{
			HostID:         hostID,
			AccountID:      host.ProcessorAccountID,
			URL:            link.URL,
			ExpiresAt:      link.ExpiresAt,
			State:          host.OnboardingState(),
			AccountCreated: created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// linkProcessorAccount creates the processor account and stores its reference on host.
// If another request stored a reference first, host is reloaded and an empty ID is returned.
func (s *Service) linkProcessorAccount(ctx context.Context, host *entity.Host) (string, error) {
	account, err := s.processor.CreateAccount(ctx, processor.AccountRequest{
		HostID:       host.ID,
		Type:         host.Type,
		Country:      host.Country,
		Email:        host.Email,
		FirstName:    host.FirstName,
		LastName:     host.LastName,
		BusinessName: host.BusinessName,
	})
	if err != nil {
		s.logger.Error("Failed to create processor account", map[string]any{
			"host_id": host.ID,
			"error":   err.Error(),
		})
		return "", err
	}

	err = s.hosts.SetProcessorAccount(ctx, host.ID, account.ID)
	if errors.Is(err, errs.ErrStaleRecord) {
		current, getErr := s.hosts.GetByID(ctx, host.ID)
		if getErr != nil {
			return "", getErr
		}
		s.logger.Warn("Processor account already linked by another request", map[string]any{
			"host_id":           host.ID,
			"linked_account_id": current.ProcessorAccountID,
			"orphan_account_id": account.ID,
		})
		*host = *current
		return "", nil
	}
	if err != nil {
		return "", err
	}

	host.ProcessorAccountID = account.ID
	host.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Processor account linked", map[string]any{
		"host_id":    host.ID,
		"account_id": account.ID,
	})
	s.metrics.OnboardingTransition(string(entity.StateProcessorAccountLinked))
	return account.ID, nil
}

// ConfirmOnboarding checks with the processor whether the host finished onboarding
func (s *Service) ConfirmOnboarding(ctx context.Context, hostID uint64) (*usecase.OnboardingStatus, error) {
	var status *usecase.OnboardingStatus

	err := s.serialize(ctx, hostID, func(ctx context.Context) error {
		host, err := s.hosts.GetByID(ctx, hostID)
		if err != nil {
			return err
		}

		status = &usecase.OnboardingStatus{
			HostID: hostID,
			State:  host.OnboardingState(),
		}

		// Nothing to ask the processor about yet, or nothing left to confirm.
		if !host.HasProcessorAccount() || host.OnboardingComplete {
			status.DetailsSubmitted = host.OnboardingComplete
			return nil
		}

		account, err := s.processor.RetrieveAccount(ctx, host.ProcessorAccountID)
		if err != nil {
			s.logger.Error("Failed to retrieve processor account", map[string]any{
				"host_id":    hostID,
				"account_id": host.ProcessorAccountID,
				"error":      err.Error(),
			})
			return err
		}

		status.DetailsSubmitted = account.DetailsSubmitted
		status.PayoutsEnabled = account.PayoutsEnabled
		if !account.DetailsSubmitted {
			s.logger.Info("Host onboarding not yet complete", map[string]any{
				"host_id":    hostID,
				"account_id": host.ProcessorAccountID,
			})
			return nil
		}

		if err := s.hosts.MarkOnboardingComplete(ctx, hostID); err != nil {
			return err
		}

		host.OnboardingComplete = true
		status.State = host.OnboardingState()
		status.Advanced = true

		s.logger.Info("Host onboarded", map[string]any{
			"host_id":    hostID,
			"account_id": host.ProcessorAccountID,
		})
		s.metrics.OnboardingTransition(string(status.State))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// DashboardLink returns a login link to the processor dashboard
func (s *Service) DashboardLink(ctx context.Context, hostID uint64) (*usecase.DashboardLink, error) {
	host, err := s.hosts.GetByID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if err := host.RequireOnboarded(); err != nil {
		return nil, err
	}

	link, err := s.processor.CreateLoginLink(ctx, host.ProcessorAccountID)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardLink{
		HostID:    hostID,
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// Shutdown stops the per-host workers
func (s *Service) Shutdown() {
	s.serializer.Shutdown()
}

// serialize runs fn after earlier operations on the same host, under the host lease
func (s *Service) serialize(ctx context.Context, hostID uint64, fn func(ctx context.Context) error) error {
	return s.serializer.Do(ctx, hostID, func(ctx context.Context) error {
		err := lease.Run(ctx, s.locks, s.logger, lease.HostKey(hostID), s.config.LockTimeout, fn)
		if err != nil && !errs.IsNotFoundError(err) && !errs.IsValidationError(err) {
			s.logger.Warn("Host operation failed", map[string]any{
				"host_id": hostID,
				"error":   fmt.Sprintf("%v", err),
			})
		}
		return err
	})
}
