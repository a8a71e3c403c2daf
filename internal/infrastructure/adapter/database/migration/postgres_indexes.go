package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// PostgresIndexManager creates the PostgreSQL-specific indexes. Other dialects only
// get the indexes declared on the models.
type PostgresIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPostgresIndexManager creates a new index manager
func NewPostgresIndexManager(db *gorm.DB, logger coreport.Logger) *PostgresIndexManager {
	return &PostgresIndexManager{
		db:     db,
		logger: logger,
	}
}

var postgresIndexes = []struct {
	name string
	sql  string
}{
	{
		// Reconciliation scans only the rows it may retry
		name: "idx_transactions_retryable",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_retryable
			ON transactions (updated_at)
			WHERE status = 'charged'
			   OR (status = 'pending' AND last_error <> '' AND NOT last_error_final)`,
	},
	{
		name: "idx_transactions_host_settled",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_host_settled
			ON transactions (host_id)
			INCLUDE (host_share)
			WHERE status = 'settled'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_hosts_first_onboarded",
		sql: `CREATE INDEX IF NOT EXISTS idx_hosts_first_onboarded
			ON hosts (created_at)
			WHERE onboarding_complete AND processor_account_id IS NOT NULL`,
	},
}

// CreateIndexes creates the partial and BRIN indexes when running on PostgreSQL
func (m *PostgresIndexManager) CreateIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Debug("Skipping PostgreSQL indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating PostgreSQL indexes", nil)

	for _, idx := range postgresIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	// Status and reference columns are updated in place
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}
