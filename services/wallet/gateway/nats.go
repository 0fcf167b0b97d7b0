package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/proxline/proxline/internal/pkg/constants"
	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
	natspkg "github.com/proxline/proxline/internal/pkg/nats"
)

// WalletGW implements the NATS gateway operations for the wallet service
type WalletGW struct {
	client *natspkg.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(client *natspkg.Client) *WalletGW {
	return &WalletGW{client: client}
}

// PublishTopUpSettled publishes a settled top-up event
func (g *WalletGW) PublishTopUpSettled(ctx context.Context, event *models.TopUpSettledEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal topup settled event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectTopUpSettled, data); err != nil {
		logger.Error("Failed to publish topup settled event",
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish topup settled event: %w", err)
	}

	logger.Info("Published topup settled event",
		logger.String("transaction_id", event.TransactionID.String()),
		logger.Float64("amount", event.Amount))
	return nil
}
