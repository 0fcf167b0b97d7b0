package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/proxline/proxline/internal/pkg/models"
)

// TelegramGW posts rendered reminders to the bot notifier endpoint.
// The endpoint is an internal collaborator guarded by the shared API
// key.
type TelegramGW struct {
	cfg    models.NotifyConfig
	client *http.Client
}

// NewTelegramGW creates a new telegram delivery gateway
func NewTelegramGW(cfg models.NotifyConfig) *TelegramGW {
	return &TelegramGW{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	TelegramID string `json:"telegram_id"`
	Text       string `json:"text"`
}

// Send delivers one message. Failures come back as errors; the caller
// decides whether to retry on the next scheduler tick.
func (g *TelegramGW) Send(ctx context.Context, telegramID, text string) error {
	body, err := json.Marshal(sendRequest{TelegramID: telegramID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TelegramNotifyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", g.cfg.InternalAPIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notifier returned %d", resp.StatusCode)
	}

	return nil
}
