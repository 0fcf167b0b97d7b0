package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer of the proxy store. Users are identified
// externally by their Telegram id; the balance row is created lazily on
// the first upsert.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TelegramID   string    `json:"telegram_id" db:"telegram_id"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"first_name" db:"first_name"`
	Language     string    `json:"language" db:"language"`
	ChatID       string    `json:"chat_id" db:"chat_id"`
	Active       bool      `json:"active" db:"active"`
	Banned       bool      `json:"banned" db:"banned"`
	Notification bool      `json:"notification" db:"notification"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Balance *Balance `json:"balance,omitempty" db:"-"`
}

// UserUpsertRequest is the payload for creating or refreshing a user.
type UserUpsertRequest struct {
	TelegramID   string `json:"telegram_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	Language     string `json:"language"`
	ChatID       string `json:"chat_id"`
	Notification bool   `json:"notification"`
}
