package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/proxline/proxline/services/notify NotifyUC

// NotifyUC represents the notification scheduler interface
type NotifyUC interface {
	Schedule(ctx context.Context, userID uuid.UUID, notifType string, when time.Time, payload string) error
	ProcessPending(ctx context.Context) (int, error)
}
