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

// LedgerRepo implements wallet.LedgerRepo on PostgreSQL
type LedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepo creates a new ledger repository instance
func NewLedgerRepo(db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// GetBalance retrieves the balance row for a user
func (r *LedgerRepo) GetBalance(ctx context.Context, userID uuid.UUID) (*models.Balance, error) {
	query := `SELECT id, user_id, amount, updated_at FROM balances WHERE user_id = $1`

	var balance models.Balance
	err := r.db.GetContext(ctx, &balance, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &balance, nil
}

// AddMoney credits the balance and returns the new amount
func (r *LedgerRepo) AddMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE balances
		SET amount = amount + $1, updated_at = $2
		WHERE user_id = $3
		RETURNING amount
	`

	var newAmount float64
	err := r.db.QueryRowContext(ctx, query, amount, time.Now(), userID).Scan(&newAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		return 0, fmt.Errorf("failed to add money: %w", err)
	}

	return newAmount, nil
}

// SubtractMoney debits the balance, re-validating sufficiency inside the
// statement so a concurrent change can never drive the amount negative.
func (r *LedgerRepo) SubtractMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE balances
		SET amount = amount - $1, updated_at = $2
		WHERE user_id = $3 AND amount >= $1
		RETURNING amount
	`

	var newAmount float64
	err := r.db.QueryRowContext(ctx, query, amount, time.Now(), userID).Scan(&newAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the row is missing or the guard rejected the debit.
			if _, berr := r.GetBalance(ctx, userID); errors.Is(berr, models.ErrNotFound) {
				return 0, models.ErrNotFound
			}
			return 0, models.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to subtract money: %w", err)
	}

	return newAmount, nil
}
