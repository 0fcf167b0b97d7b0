package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationTypeProxyExpiring = "proxy_expiring"
	NotificationTypeBalanceLow    = "balance_low"
)

// Notification is a scheduled reminder. The purchase saga creates one
// per persisted non-auto-renew lease; the scheduler flushes due rows.
type Notification struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Type        string     `json:"type" db:"type"`
	ScheduledAt time.Time  `json:"scheduled_at" db:"scheduled_at"`
	Sent        bool       `json:"sent" db:"sent"`
	SentAt      *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	Payload     string     `json:"payload" db:"payload"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
