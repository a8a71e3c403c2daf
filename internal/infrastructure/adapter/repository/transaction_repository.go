package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements persistence.TransactionRepository using GORM.
// Status changes are conditional single-row updates, so two writers never both win.
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:             txn.ID,
		HostID:         txn.HostID,
		GuestID:        txn.GuestID,
		Amount:         txn.Amount,
		Currency:       txn.Currency,
		HostShare:      txn.HostShare,
		PlatformFee:    txn.PlatformFee,
		Protocol:       string(txn.Protocol),
		Status:         string(txn.Status),
		ChargeRef:      txn.ChargeRef,
		TransferRef:    txn.TransferRef,
		ChargeAttempts: txn.ChargeAttempts,
		LastError:      txn.LastError,
		LastErrorFinal: txn.LastErrorFinal,
		CreatedAt:      txn.CreatedAt,
		UpdatedAt:      txn.UpdatedAt,
		SettledAt:      txn.SettledAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		HostID:         m.HostID,
		GuestID:        m.GuestID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		HostShare:      m.HostShare,
		PlatformFee:    m.PlatformFee,
		Protocol:       entity.SettlementProtocol(m.Protocol),
		Status:         entity.SettlementStatus(m.Status),
		ChargeRef:      m.ChargeRef,
		TransferRef:    m.TransferRef,
		ChargeAttempts: m.ChargeAttempts,
		LastError:      m.LastError,
		LastErrorFinal: m.LastErrorFinal,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		SettledAt:      m.SettledAt,
	}
}

func (r *TransactionRepository) modelsToEntities(models []model.Transaction) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		txns = append(txns, r.modelToEntity(&models[i]))
	}
	return txns
}

// Create saves a new pending transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&txnModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"transaction_id": txn.ID,
			})
			return errs.ErrDuplicateRecord
		}
		return dbError(r.logger, "create transaction", err, map[string]any{
			"transaction_id": txn.ID,
			"host_id":        txn.HostID,
		})
	}

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": txn.ID,
		"host_id":        txn.HostID,
		"guest_id":       txn.GuestID,
	})
	return nil
}

// GetByID reads the current record
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel).Error; err != nil {
		return nil, notFoundOr(r.logger, errs.ErrTransactionNotFound, "get transaction", err, map[string]any{
			"transaction_id": id,
		})
	}
	return r.modelToEntity(&txnModel), nil
}

// RecordCharge stores the charge reference and moves a pending transaction to next
func (r *TransactionRepository) RecordCharge(ctx context.Context, id string, chargeRef string, next entity.SettlementStatus) error {
	now := r.timeProvider.Now()
	updates := map[string]any{
		"charge_ref":       chargeRef,
		"status":           string(next),
		"last_error":       "",
		"last_error_final": false,
		"updated_at":       now,
	}
	if next == entity.StatusSettled {
		updates["settled_at"] = now
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ? AND charge_ref = ''", id, string(entity.StatusPending)).
		Updates(updates)
	if result.Error != nil {
		return dbError(r.logger, "record charge", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, id, "charge")
	}

	r.logger.Debug("Charge recorded", map[string]any{
		"transaction_id": id,
		"charge_ref":     chargeRef,
		"status":         string(next),
	})
	return nil
}

// RecordTransfer stores the transfer reference and settles a charged transaction
func (r *TransactionRepository) RecordTransfer(ctx context.Context, id string, transferRef string) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ? AND transfer_ref = ''", id, string(entity.StatusCharged)).
		Updates(map[string]any{
			"transfer_ref":     transferRef,
			"status":           string(entity.StatusSettled),
			"last_error":       "",
			"last_error_final": false,
			"updated_at":       now,
			"settled_at":       now,
		})
	if result.Error != nil {
		return dbError(r.logger, "record transfer", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, id, "transfer")
	}

	r.logger.Debug("Transfer recorded", map[string]any{
		"transaction_id": id,
		"transfer_ref":   transferRef,
	})
	return nil
}

// RecordFailure stores the last processor failure
func (r *TransactionRepository) RecordFailure(ctx context.Context, id string, message string, permanent bool) error {
	updates := map[string]any{
		"last_error":       message,
		"last_error_final": permanent,
		"updated_at":       r.timeProvider.Now(),
	}
	if permanent {
		updates["charge_attempts"] = gorm.Expr(
			"charge_attempts + CASE WHEN status = ? THEN 1 ELSE 0 END", string(entity.StatusPending))
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return dbError(r.logger, "record failure", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListRetryable returns settlement candidates for the reconciler, oldest first.
// A stale pending row is a candidate unless its last charge was declined: a charge
// that succeeded but was never recorded leaves the row pending with no error at all.
func (r *TransactionRepository) ListRetryable(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("updated_at < ?", olderThan).
		Where("(status = ? OR (status = ? AND last_error_final = ?))",
			string(entity.StatusCharged), string(entity.StatusPending), false).
		Order("updated_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, dbError(r.logger, "list retryable transactions", err, map[string]any{"limit": limit})
	}
	return r.modelsToEntities(models), nil
}

// ListByHost returns a host's transactions created at or after since, newest first
func (r *TransactionRepository) ListByHost(ctx context.Context, hostID uint64, since time.Time) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("host_id = ? AND created_at >= ?", hostID, since).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, dbError(r.logger, "list host transactions", err, map[string]any{"host_id": hostID})
	}
	return r.modelsToEntities(models), nil
}

// SumHostShares returns the total host share of a host's settled transactions
func (r *TransactionRepository) SumHostShares(ctx context.Context, hostID uint64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(host_share), 0)").
		Where("host_id = ? AND status = ?", hostID, string(entity.StatusSettled)).
		Scan(&total).Error
	if err != nil {
		return 0, dbError(r.logger, "sum host shares", err, map[string]any{"host_id": hostID})
	}
	return total, nil
}

// missingOrStale tells a missing transaction apart from a conditional update that lost its condition
func (r *TransactionRepository) missingOrStale(ctx context.Context, id string, step string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return errs.ErrTransactionNotFound
		}
		return err
	}
	r.logger.Warn("Transaction changed before the reference was stored", map[string]any{
		"transaction_id": id,
		"step":           step,
		"status":         string(current.Status),
	})
	return errs.ErrStaleRecord
}
