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

// UserRepo implements wallet.UserRepo on PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID retrieves a user by primary key
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, telegram_id, username, first_name, language, chat_id,
			active, banned, notification, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByTelegramID retrieves a user by their external Telegram identity
func (r *UserRepo) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	query := `
		SELECT id, telegram_id, username, first_name, language, chat_id,
			active, banned, notification, created_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Upsert creates or refreshes a user keyed by telegram_id. The first
// insert also creates the zero balance row so later ledger operations
// never have to special-case a missing balance.
func (r *UserRepo) Upsert(ctx context.Context, req *models.UserUpsertRequest) (*models.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	user := models.User{
		ID:           uuid.New(),
		TelegramID:   req.TelegramID,
		Username:     req.Username,
		FirstName:    req.FirstName,
		Language:     req.Language,
		ChatID:       req.ChatID,
		Active:       true,
		Notification: req.Notification,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Language == "" {
		user.Language = "en"
	}

	query := `
		INSERT INTO users (id, telegram_id, username, first_name, language,
			chat_id, active, banned, notification, created_at, updated_at
		) VALUES (:id, :telegram_id, :username, :first_name, :language,
			:chat_id, :active, :banned, :notification, :created_at, :updated_at)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			language = EXCLUDED.language,
			chat_id = EXCLUDED.chat_id,
			notification = EXCLUDED.notification,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	rows, err := tx.NamedQuery(query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	if rows.Next() {
		if err := rows.Scan(&user.ID, &user.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan upserted user: %w", err)
		}
	}
	rows.Close()

	balanceQuery := `
		INSERT INTO balances (id, user_id, amount, updated_at)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, balanceQuery, uuid.New(), user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to create balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &user, nil
}
