package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/notify"
)

// NotifyUC implements the notification scheduler
type NotifyUC struct {
	notificationRepo notify.NotificationRepo
	userRepo         notify.UserRepo
	telegramGW       notify.TelegramGW
	cfg              *models.Config
}

// NewNotifyUC creates a new notification scheduler instance
func NewNotifyUC(
	notificationRepo notify.NotificationRepo,
	userRepo notify.UserRepo,
	telegramGW notify.TelegramGW,
	cfg *models.Config,
) *NotifyUC {
	return &NotifyUC{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		telegramGW:       telegramGW,
		cfg:              cfg,
	}
}

// Schedule inserts a pending reminder
func (uc *NotifyUC) Schedule(ctx context.Context, userID uuid.UUID, notifType string, when time.Time, payload string) error {
	return uc.notificationRepo.Create(ctx, &models.Notification{
		UserID:      userID,
		Type:        notifType,
		ScheduledAt: when,
		Payload:     payload,
	})
}

// ProcessPending flushes all due unsent reminders and returns how many
// were delivered. One dispatch failure never blocks the rest; the
// failed reminder stays unsent and is retried on the next tick.
func (uc *NotifyUC) ProcessPending(ctx context.Context) (int, error) {
	due, err := uc.notificationRepo.ListDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, n := range due {
		user, err := uc.userRepo.GetByID(ctx, n.UserID)
		if err != nil {
			logger.Error("Notification owner lookup failed",
				logger.String("notification_id", n.ID.String()),
				logger.Err(err))
			continue
		}
		if !user.Notification || user.Banned {
			// Opted out; mark sent so the row stops coming back.
			if err := uc.notificationRepo.MarkSent(ctx, n.ID, time.Now()); err != nil {
				logger.Error("Failed to retire muted notification",
					logger.String("notification_id", n.ID.String()),
					logger.Err(err))
			}
			continue
		}

		text := renderText(&n, user.Language)
		if err := uc.telegramGW.Send(ctx, user.TelegramID, text); err != nil {
			logger.Error("Notification delivery failed",
				logger.String("notification_id", n.ID.String()),
				logger.String("telegram_id", user.TelegramID),
				logger.Err(err))
			continue
		}

		if err := uc.notificationRepo.MarkSent(ctx, n.ID, time.Now()); err != nil {
			logger.Error("Failed to mark notification sent",
				logger.String("notification_id", n.ID.String()),
				logger.Err(err))
			continue
		}
		sent++
	}

	if len(due) > 0 {
		logger.Info("Notification flush finished",
			logger.Int("due", len(due)),
			logger.Int("sent", sent))
	}
	return sent, nil
}

type expiryPayload struct {
	ItemID  string    `json:"item_id"`
	Host    string    `json:"host"`
	Port    int       `json:"port"`
	DateEnd time.Time `json:"date_end"`
}

// renderText builds the outgoing message in the owner's language
func renderText(n *models.Notification, language string) string {
	switch n.Type {
	case models.NotificationTypeProxyExpiring:
		var p expiryPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			return n.Payload
		}
		if language == "ru" {
			return fmt.Sprintf("Прокси %s:%d истекает %s", p.Host, p.Port, p.DateEnd.Format("2006-01-02 15:04"))
		}
		return fmt.Sprintf("Proxy %s:%d expires at %s", p.Host, p.Port, p.DateEnd.Format("2006-01-02 15:04"))
	case models.NotificationTypeBalanceLow:
		if language == "ru" {
			return "Баланс заканчивается, пополните счёт"
		}
		return "Your balance is running low, please top up"
	default:
		return n.Payload
	}
}
