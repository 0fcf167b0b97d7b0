package proxy

import (
	"context"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/proxline/proxline/services/proxy ProxyUC

// ProxyUC represents the proxy usecase interface
type ProxyUC interface {
	GetQuote(ctx context.Context, version string, quantity, days int) (*models.Quote, error)
	Purchase(ctx context.Context, req *models.PurchaseRequest) (*models.PurchaseResponse, error)
	ListUserProxies(ctx context.Context, telegramID string) ([]models.Proxy, error)

	// background sagas
	ProlongDue(ctx context.Context) (*models.ProlongTally, error)
	DeactivateExpired(ctx context.Context) (int, error)
}
