package models

import (
	"time"

	"github.com/google/uuid"
)

// Proxy versions accepted from clients; mapped to upstream codes by the
// market gateway.
const (
	ProxyVersionIPv4       = "ipv4"
	ProxyVersionIPv6       = "ipv6"
	ProxyVersionIPv4Shared = "ipv4shared"
)

// Proxy is a purchased lease. Rows are created once per upstream line
// item and never deleted; renewal moves the expiry fields in place and
// the expiry sweep flips Active off.
type Proxy struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`
	ItemID        string    `json:"item_id" db:"item_id"`
	IP            string    `json:"ip" db:"ip"`
	Host          string    `json:"host" db:"host"`
	Port          int       `json:"port" db:"port"`
	Version       string    `json:"version" db:"version"`
	Type          string    `json:"type" db:"type"`
	Country       string    `json:"country" db:"country"`
	Descr         string    `json:"descr" db:"descr"`
	DateStart     time.Time `json:"date_start" db:"date_start"`
	DateEnd       time.Time `json:"date_end" db:"date_end"`
	Unixtime      int64     `json:"unixtime" db:"unixtime"`
	UnixtimeEnd   int64     `json:"unixtime_end" db:"unixtime_end"`
	Days          int       `json:"days" db:"days"`
	Active        bool      `json:"active" db:"active"`
	AutoRenew     bool      `json:"auto_renew" db:"auto_renew"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// PurchaseRequest is the payload for the purchase saga.
type PurchaseRequest struct {
	TelegramID string `json:"telegram_id"`
	Version    string `json:"version"`
	Type       string `json:"type"`
	Country    string `json:"country"`
	Days       int    `json:"days"`
	Quantity   int    `json:"quantity"`
	AutoRenew  bool   `json:"auto_renew"`
}

// PurchaseResponse is returned once the saga fully committed.
type PurchaseResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"price"`
	Days          int       `json:"days"`
	Country       string    `json:"country"`
	Proxies       []Proxy   `json:"proxies"`
}

// ProlongTally summarizes one prolongation batch run.
type ProlongTally struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// ProxyPurchasedEvent is published after a purchase saga commits.
type ProxyPurchasedEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	TelegramID    string    `json:"telegram_id"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	Country       string    `json:"country"`
	Timestamp     time.Time `json:"timestamp"`
}

// ProxyProlongedEvent is published for each successfully renewed lease.
type ProxyProlongedEvent struct {
	ProxyID     uuid.UUID `json:"proxy_id"`
	UserID      uuid.UUID `json:"user_id"`
	ItemID      string    `json:"item_id"`
	UnixtimeEnd int64     `json:"unixtime_end"`
	Price       float64   `json:"price"`
	Timestamp   time.Time `json:"timestamp"`
}
