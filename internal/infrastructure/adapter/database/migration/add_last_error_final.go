package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddLastErrorFinal adds transactions.last_error_final to a 1.0.0 schema. Rows written
// before the column existed are treated as transient failures and become retryable.
type AddLastErrorFinal struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddLastErrorFinal creates a new migration instance
func NewAddLastErrorFinal(db *gorm.DB, logger coreport.Logger) *AddLastErrorFinal {
	return &AddLastErrorFinal{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddLastErrorFinal) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()

	if migrator.HasColumn(&model.Transaction{}, "LastErrorFinal") {
		m.logger.Debug("Column last_error_final already present", nil)
		return nil
	}

	m.logger.Info("Adding last_error_final column to transactions table", nil)
	if err := migrator.AddColumn(&model.Transaction{}, "LastErrorFinal"); err != nil {
		m.logger.Error("Failed to add last_error_final column", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added last_error_final column", nil)
	return nil
}
