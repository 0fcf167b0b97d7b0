package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proxline/proxline/internal/pkg/models"
)

// NotificationRepo implements notify.NotificationRepo on PostgreSQL
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository instance
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create inserts a pending reminder
func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, user_id, type, scheduled_at, sent,
			sent_at, payload, created_at
		) VALUES (:id, :user_id, :type, :scheduled_at, :sent,
			:sent_at, :payload, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListDue returns unsent reminders whose scheduled time has passed
func (r *NotificationRepo) ListDue(ctx context.Context, now time.Time) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, scheduled_at, sent, sent_at, payload, created_at
		FROM notifications
		WHERE sent = false AND scheduled_at <= $1
		ORDER BY scheduled_at ASC
	`

	var notifications []models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, now); err != nil {
		return nil, fmt.Errorf("failed to list due notifications: %w", err)
	}

	return notifications, nil
}

// MarkSent flags a reminder as delivered
func (r *NotificationRepo) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `UPDATE notifications SET sent = true, sent_at = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	return nil
}
