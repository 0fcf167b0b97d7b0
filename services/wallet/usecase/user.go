package usecase

import (
	"context"
	"fmt"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// UpsertUser creates or refreshes a user record. The first upsert also
// creates the zero balance row.
func (uc *WalletUC) UpsertUser(ctx context.Context, req *models.UserUpsertRequest) (*models.User, error) {
	if req.TelegramID == "" {
		return nil, fmt.Errorf("%w: telegram_id is required", models.ErrValidation)
	}

	user, err := uc.userRepo.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	logger.Info("User upserted",
		logger.String("user_id", user.ID.String()),
		logger.String("telegram_id", user.TelegramID))
	return user, nil
}

// GetBalance returns a user's balance looked up by telegram id
func (uc *WalletUC) GetBalance(ctx context.Context, telegramID string) (*models.Balance, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	return uc.ledgerRepo.GetBalance(ctx, user.ID)
}
