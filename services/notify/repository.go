package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/proxline/proxline/services/notify NotificationRepo,UserRepo

// NotificationRepo handles scheduled reminders
type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	ListDue(ctx context.Context, now time.Time) ([]models.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}

// UserRepo is the slice of the wallet user repository the scheduler needs
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
