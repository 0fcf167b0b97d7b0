package usecase

import (
	"context"
	"fmt"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// TopUp creates a pending top-up transaction and returns a provider
// payment link. The ledger entry records the projected balance before
// any provider call so an interrupted flow stays explainable.
func (uc *WalletUC) TopUp(ctx context.Context, req *models.TopUpRequest) (*models.TopUpResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}

	provider, err := uc.providers.Get(req.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	user, err := uc.userRepo.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.ledgerRepo.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	txID, err := uc.txRepo.CreatePending(ctx, &models.Transaction{
		UserID:       user.ID,
		Amount:       req.Amount,
		BalanceAfter: balance.Amount + req.Amount,
		Type:         models.TransactionTypeTopUp,
		Provider:     provider.Name(),
		Comment:      fmt.Sprintf("Top-up via %s", provider.Name()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pending top-up: %w", err)
	}

	link, err := provider.GenerateLink(ctx, user, req.Amount, txID.String())
	if err != nil {
		if uerr := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusFailed, "Link generation failed"); uerr != nil {
			logger.Error("Failed to mark top-up transaction failed",
				logger.String("transaction_id", txID.String()),
				logger.Err(uerr))
		}
		return nil, fmt.Errorf("failed to generate payment link: %w", err)
	}

	if err := uc.txRepo.UpdateExternalID(ctx, txID, link.InvoiceID); err != nil {
		return nil, fmt.Errorf("failed to bind invoice id: %w", err)
	}

	logger.Info("Top-up link generated",
		logger.String("transaction_id", txID.String()),
		logger.String("provider", provider.Name()),
		logger.Float64("amount", req.Amount))

	return &models.TopUpResponse{
		TransactionID: txID,
		Link:          link.Link,
		InvoiceID:     link.InvoiceID,
	}, nil
}
