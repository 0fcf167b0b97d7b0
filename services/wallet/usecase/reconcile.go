package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// Reconcile applies a provider payment callback to the ledger exactly
// once. The provider strategy normalizes the raw payload; the shared
// routine below keys everything on the unique external id and credits
// the amount recorded locally at top-up creation, never the amount the
// callback claims.
func (uc *WalletUC) Reconcile(ctx context.Context, providerName string, rawPayload []byte) error {
	provider, err := uc.providers.Get(providerName)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	callback, err := provider.NormalizeCallback(rawPayload)
	if err != nil {
		return err
	}

	logger.Info("Payment callback received",
		logger.String("provider", providerName),
		logger.String("external_id", callback.ExternalID),
		logger.String("status", callback.Status))

	tx, err := uc.txRepo.GetByExternalID(ctx, callback.ExternalID)
	if err != nil {
		return fmt.Errorf("callback for unknown invoice %s: %w", callback.ExternalID, err)
	}

	switch callback.Status {
	case models.CallbackStatusFailed, models.CallbackStatusCancelled:
		return uc.applyTerminalFailure(ctx, tx, callback.Status)
	case models.CallbackStatusSuccess:
		// fall through to the credit path
	default:
		return fmt.Errorf("%w: callback status %q is not settleable", models.ErrValidation, callback.Status)
	}

	if tx.IsTerminal() {
		return fmt.Errorf("transaction %s already settled: %w", tx.ID, models.ErrDuplicateCallback)
	}

	if callback.Amount > 0 && callback.Amount != tx.Amount {
		// Credit still uses the recorded amount; surface the mismatch
		// so partial provider-side payments do not pass unnoticed.
		logger.Warn("Callback amount differs from recorded top-up",
			logger.String("transaction_id", tx.ID.String()),
			logger.Float64("callback_amount", callback.Amount),
			logger.Float64("recorded_amount", tx.Amount))
	}

	user, err := uc.userRepo.GetByID(ctx, tx.UserID)
	if err != nil {
		if uerr := uc.txRepo.MarkTerminal(ctx, tx.ID, models.TransactionStatusFailed, "Owner not found during reconciliation"); uerr != nil {
			logger.Error("Failed to mark orphaned transaction failed",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(uerr))
		}
		return fmt.Errorf("owner of transaction %s not found: %w", tx.ID, err)
	}

	return uc.locker.WithUserLock(ctx, user.ID, func(ctx context.Context) error {
		// The pending guard above ran on a read that may be stale by
		// the time the lock is held. The conditional transition is the
		// arbiter: the credit happens only when this call wins the
		// pending row, so a replayed or racing callback cannot credit
		// a second time.
		comment := fmt.Sprintf("Settled via %s", providerName)
		if err := uc.txRepo.MarkTerminal(ctx, tx.ID, models.TransactionStatusSuccess, comment); err != nil {
			if errors.Is(err, models.ErrDuplicateCallback) {
				return fmt.Errorf("transaction %s already settled: %w", tx.ID, models.ErrDuplicateCallback)
			}
			return fmt.Errorf("failed to mark transaction settled: %w", err)
		}

		newBalance, err := uc.ledgerRepo.AddMoney(ctx, user.ID, tx.Amount)
		if err != nil {
			logger.Error("Credit failed after settlement transition, transaction needs manual review",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
			return fmt.Errorf("failed to credit balance: %w", err)
		}

		if err := uc.walletGW.PublishTopUpSettled(ctx, &models.TopUpSettledEvent{
			TransactionID: tx.ID,
			UserID:        user.ID,
			TelegramID:    user.TelegramID,
			Amount:        tx.Amount,
			NewBalance:    newBalance,
			Provider:      providerName,
			Timestamp:     time.Now(),
		}); err != nil {
			// The ledger already committed; event delivery is best effort.
			logger.Warn("Top-up settled event not published",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
		}

		logger.Info("Top-up reconciled",
			logger.String("transaction_id", tx.ID.String()),
			logger.Float64("amount", tx.Amount),
			logger.Float64("new_balance", newBalance))
		return nil
	})
}

// applyTerminalFailure moves a pending top-up to the callback's failure
// state. A replay of the same failure is a no-op but still reported as
// an error to the caller. The conditional transition also rejects a
// failure racing a success callback for the same invoice after the
// success already claimed the row.
func (uc *WalletUC) applyTerminalFailure(ctx context.Context, tx *models.Transaction, status string) error {
	if tx.IsTerminal() {
		return fmt.Errorf("transaction %s already terminal: %w", tx.ID, models.ErrDuplicateCallback)
	}

	mapped := models.TransactionStatusFailed
	if status == models.CallbackStatusCancelled {
		mapped = models.TransactionStatusCancelled
	}

	if err := uc.txRepo.MarkTerminal(ctx, tx.ID, mapped, fmt.Sprintf("Provider reported %s", status)); err != nil {
		if errors.Is(err, models.ErrDuplicateCallback) {
			return fmt.Errorf("transaction %s already terminal: %w", tx.ID, models.ErrDuplicateCallback)
		}
		return fmt.Errorf("failed to apply terminal callback: %w", err)
	}

	return fmt.Errorf("%w: invoice %s reported %s", models.ErrValidation, tx.ExternalID, status)
}
