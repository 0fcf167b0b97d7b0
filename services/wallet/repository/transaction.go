package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proxline/proxline/internal/pkg/models"
)

// TransactionRepo implements wallet.TransactionRepo on PostgreSQL
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// CreatePending records the intent of a balance mutation before any
// external call is made, so a crash mid-saga still leaves an
// explanatory ledger entry.
func (r *TransactionRepo) CreatePending(ctx context.Context, tx *models.Transaction) (uuid.UUID, error) {
	tx.ID = uuid.New()
	tx.Status = models.TransactionStatusPending
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, user_id, amount, balance_after, type,
			status, provider, external_id, related_id, comment, created_at, updated_at
		) VALUES (:id, :user_id, :amount, :balance_after, :type,
			:status, :provider, NULLIF(:external_id, ''), :related_id, :comment, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create pending transaction: %w", err)
	}

	return tx.ID, nil
}

// CreateRefund records the compensating credit for a failed saga,
// linked to the original transaction.
func (r *TransactionRepo) CreateRefund(ctx context.Context, userID uuid.UUID, amount, balanceAfter float64, relatedID uuid.UUID, comment string) (uuid.UUID, error) {
	refund := models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Type:         models.TransactionTypeRefund,
		Status:       models.TransactionStatusPaid,
		RelatedID:    &relatedID,
		Comment:      comment,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	query := `
		INSERT INTO transactions (id, user_id, amount, balance_after, type,
			status, provider, external_id, related_id, comment, created_at, updated_at
		) VALUES (:id, :user_id, :amount, :balance_after, :type,
			:status, :provider, NULLIF(:external_id, ''), :related_id, :comment, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, refund); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create refund transaction: %w", err)
	}

	return refund.ID, nil
}

// UpdateStatus moves a transaction to a new status and appends to the
// comment trail. Sagas that own the row use this; callback-driven
// terminal transitions go through MarkTerminal instead.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error {
	query := `
		UPDATE transactions
		SET status = $1,
			comment = CASE WHEN comment = '' THEN $2 ELSE comment || ' | ' || $2 END,
			updated_at = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, status, comment, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	return nil
}

// MarkTerminal moves a still-pending transaction into a terminal status
// and appends to the comment trail. The WHERE clause makes concurrent
// callbacks for the same invoice race on the row itself: exactly one
// transition wins, the rest see zero rows and get ErrDuplicateCallback.
// Callers fetch the row before calling, so zero rows means lost race,
// not missing row.
func (r *TransactionRepo) MarkTerminal(ctx context.Context, id uuid.UUID, status, comment string) error {
	query := `
		UPDATE transactions
		SET status = $1,
			comment = CASE WHEN comment = '' THEN $2 ELSE comment || ' | ' || $2 END,
			updated_at = $3
		WHERE id = $4 AND status = $5
	`

	res, err := r.db.ExecContext(ctx, query, status, comment, time.Now(), id, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark transaction terminal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrDuplicateCallback
	}

	return nil
}

// UpdateExternalID binds a pending top-up to a provider invoice id
func (r *TransactionRepo) UpdateExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	query := `UPDATE transactions SET external_id = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, externalID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update external id: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	return nil
}

// GetByID retrieves a transaction by primary key
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, balance_after, type, status,
			COALESCE(provider, '') AS provider,
			COALESCE(external_id, '') AS external_id,
			related_id, comment, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// GetByExternalID retrieves a transaction by its provider invoice id.
// The column carries a unique constraint, making this the idempotency
// anchor for payment reconciliation.
func (r *TransactionRepo) GetByExternalID(ctx context.Context, externalID string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, balance_after, type, status,
			COALESCE(provider, '') AS provider,
			COALESCE(external_id, '') AS external_id,
			related_id, comment, created_at, updated_at
		FROM transactions
		WHERE external_id = $1
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by external id: %w", err)
	}

	return &tx, nil
}
