package usecase

import (
	"context"

	"github.com/proxline/proxline/internal/pkg/models"
)

// GetQuote prices a prospective purchase without touching funds
func (uc *ProxyUC) GetQuote(ctx context.Context, version string, quantity, days int) (*models.Quote, error) {
	if quantity <= 0 || days <= 0 {
		return nil, models.ErrValidation
	}
	return uc.marketGW.Quote(ctx, version, quantity, days)
}

// ListUserProxies returns all leases owned by the user behind a
// telegram id
func (uc *ProxyUC) ListUserProxies(ctx context.Context, telegramID string) ([]models.Proxy, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	return uc.proxyRepo.ListByUser(ctx, user.ID)
}
