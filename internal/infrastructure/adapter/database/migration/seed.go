package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/usecase"
)

// SeedDefaultGuests creates the demo guests that do not exist yet
func SeedDefaultGuests(ctx context.Context, guests usecase.GuestUseCase, logger coreport.Logger) error {
	created, err := guests.SeedDefaultGuests(ctx)
	if err != nil {
		logger.Error("Failed to seed default guests", map[string]any{
			"created": created,
			"error":   err.Error(),
		})
		return err
	}

	logger.Info("Default guests seeded", map[string]any{
		"created": created,
	})
	return nil
}
