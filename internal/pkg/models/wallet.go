package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeProxy  = "proxy"
	TransactionTypeTopUp  = "topup"
	TransactionTypeRefund = "refund"
)

// Transaction statuses. Terminal states are never re-entered.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusSuccess   = "success"
	TransactionStatusPaid      = "paid"
)

// Balance holds the single mutable amount per user.
type Balance struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Transaction is a ledger entry recording the intent and outcome of a
// balance mutation. ExternalID is the idempotency key for payment
// reconciliation; RelatedID links a refund to its original transaction.
type Transaction struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	Amount       float64    `json:"amount" db:"amount"`
	BalanceAfter float64    `json:"balance_after" db:"balance_after"`
	Type         string     `json:"type" db:"type"`
	Status       string     `json:"status" db:"status"`
	Provider     string     `json:"provider,omitempty" db:"provider"`
	ExternalID   string     `json:"external_id,omitempty" db:"external_id"`
	RelatedID    *uuid.UUID `json:"related_id,omitempty" db:"related_id"`
	Comment      string     `json:"comment,omitempty" db:"comment"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the transaction already reached a final state.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusFailed,
		TransactionStatusCancelled, TransactionStatusSuccess, TransactionStatusPaid:
		return true
	}
	return false
}

// TopUpRequest is the payload for generating a payment link.
type TopUpRequest struct {
	TelegramID string  `json:"telegram_id"`
	Provider   string  `json:"provider"`
	Amount     float64 `json:"amount"`
}

// TopUpResponse carries the provider payment link back to the caller.
type TopUpResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Link          string    `json:"topup_url"`
	InvoiceID     string    `json:"invoice_id"`
}

// PaymentLink is the normalized result of a provider link generation call.
type PaymentLink struct {
	Link      string `json:"link"`
	InvoiceID string `json:"invoice_id"`
}

// Callback statuses after provider normalization.
const (
	CallbackStatusSuccess   = "success"
	CallbackStatusFailed    = "failed"
	CallbackStatusCancelled = "cancelled"
	CallbackStatusPending   = "pending"
)

// PaymentCallback is the canonical view of a provider payment
// notification, produced by a provider strategy before reconciliation.
type PaymentCallback struct {
	Provider     string  `json:"provider"`
	Status       string  `json:"status"`
	ExternalID   string  `json:"external_id"`
	Amount       float64 `json:"amount"`
	ProviderTxID string  `json:"provider_txid"`
}

// TopUpSettledEvent is published after a callback is applied to the ledger.
type TopUpSettledEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	TelegramID    string    `json:"telegram_id"`
	Amount        float64   `json:"amount"`
	NewBalance    float64   `json:"new_balance"`
	Provider      string    `json:"provider"`
	Timestamp     time.Time `json:"timestamp"`
}
