package wallet

import (
	"context"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/proxline/proxline/services/wallet WalletUC

// WalletUC represents the wallet usecase interface
type WalletUC interface {
	UpsertUser(ctx context.Context, req *models.UserUpsertRequest) (*models.User, error)
	GetBalance(ctx context.Context, telegramID string) (*models.Balance, error)

	// top-up orchestration
	TopUp(ctx context.Context, req *models.TopUpRequest) (*models.TopUpResponse, error)

	// payment callback reconciliation
	Reconcile(ctx context.Context, providerName string, rawPayload []byte) error
}
