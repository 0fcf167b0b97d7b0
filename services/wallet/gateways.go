package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/proxline/proxline/services/wallet WalletGW,PaymentProvider,UserLocker

// WalletGW defines the wallet gateway interface
type WalletGW interface {
	// NATS Gateway
	PublishTopUpSettled(ctx context.Context, event *models.TopUpSettledEvent) error
}

// UserLocker serializes balance-mutating work per user. Implemented by
// internal/pkg/userlock over Redis; both api and scheduler processes
// share the same lock keyspace.
type UserLocker interface {
	WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error
}

// PaymentProvider is the capability set a payment provider must offer.
// Adding a provider means implementing link generation and callback
// normalization; reconciliation itself is shared.
type PaymentProvider interface {
	Name() string
	GenerateLink(ctx context.Context, user *models.User, amount float64, transactionID string) (*models.PaymentLink, error)
	NormalizeCallback(rawPayload []byte) (*models.PaymentCallback, error)
}
