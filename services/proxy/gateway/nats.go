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

// ProxyGW implements the NATS gateway operations for the proxy service
type ProxyGW struct {
	client *natspkg.Client
}

// NewProxyGW creates a new proxy gateway
func NewProxyGW(client *natspkg.Client) *ProxyGW {
	return &ProxyGW{client: client}
}

// PublishProxyPurchased publishes a committed purchase event
func (g *ProxyGW) PublishProxyPurchased(ctx context.Context, event *models.ProxyPurchasedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectProxyPurchased, data); err != nil {
		logger.Error("Failed to publish purchase event",
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish purchase event: %w", err)
	}

	return nil
}

// PublishProxyProlonged publishes a renewal event for one lease
func (g *ProxyGW) PublishProxyProlonged(ctx context.Context, event *models.ProxyProlongedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal prolong event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectProxyProlonged, data); err != nil {
		logger.Error("Failed to publish prolong event",
			logger.String("proxy_id", event.ProxyID.String()),
			logger.Err(err))
		return fmt.Errorf("failed to publish prolong event: %w", err)
	}

	return nil
}
