package proxy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/proxline/proxline/services/proxy MarketGW,ProxyGW,Scheduler,UserLocker

// MarketGW is the upstream reseller adapter. All calls run under a
// bounded timeout; a timeout or a well-formed non-success answer both
// surface as ErrUpstreamFailure.
type MarketGW interface {
	Quote(ctx context.Context, version string, quantity, days int) (*models.Quote, error)
	Buy(ctx context.Context, version string, quantity, days int, country, proxyType string) (*models.MarketOrder, error)
	Prolong(ctx context.Context, itemID string, period int) (*models.MarketOrder, error)
	Check(ctx context.Context, itemID string) (bool, error)
}

// ProxyGW defines the proxy service gateway interface
type ProxyGW interface {
	// NATS Gateway
	PublishProxyPurchased(ctx context.Context, event *models.ProxyPurchasedEvent) error
	PublishProxyProlonged(ctx context.Context, event *models.ProxyProlongedEvent) error
}

// Scheduler schedules expiry reminders; satisfied by the notify usecase
type Scheduler interface {
	Schedule(ctx context.Context, userID uuid.UUID, notifType string, when time.Time, payload string) error
}

// UserLocker serializes balance-mutating work per user and guards the
// prolongation batch against overlapping runs
type UserLocker interface {
	WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
