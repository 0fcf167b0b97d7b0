package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/constants"
	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// ProlongDue renews every active auto-renewing lease whose expiry
// falls inside the lookahead horizon. Candidates are processed
// sequentially and independently; one failure never aborts the batch.
// A run lock keeps overlapping scheduler executions from
// double-processing the same candidates.
func (uc *ProxyUC) ProlongDue(ctx context.Context) (*models.ProlongTally, error) {
	tally := &models.ProlongTally{}

	err := uc.locker.WithLock(ctx, constants.KeyProlongRun, func(ctx context.Context) error {
		lookahead := time.Duration(uc.cfg.Scheduler.ProlongLookahead) * time.Second
		deadline := time.Now().Add(lookahead).Unix()

		candidates, err := uc.proxyRepo.GetAutoRenewDue(ctx, deadline)
		if err != nil {
			return err
		}
		tally.Total = len(candidates)

		// One user read per batch, however many leases they hold.
		users := make(map[uuid.UUID]*models.User)

		for i := range candidates {
			p := &candidates[i]
			if err := uc.prolongOne(ctx, p, users); err != nil {
				tally.Failed++
				logger.Error("Prolongation candidate failed",
					logger.String("proxy_id", p.ID.String()),
					logger.String("item_id", p.ItemID),
					logger.Err(err))
				continue
			}
			tally.Succeeded++
		}

		logger.Info("Prolongation batch finished",
			logger.Int("total", tally.Total),
			logger.Int("succeeded", tally.Succeeded),
			logger.Int("failed", tally.Failed))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("prolongation batch: %w", err)
	}

	return tally, nil
}

func (uc *ProxyUC) prolongOne(ctx context.Context, p *models.Proxy, users map[uuid.UUID]*models.User) error {
	user, ok := users[p.UserID]
	if !ok {
		var err error
		user, err = uc.userRepo.GetByID(ctx, p.UserID)
		if err != nil {
			return fmt.Errorf("owner lookup: %w", err)
		}
		users[p.UserID] = user
	}

	return uc.locker.WithUserLock(ctx, user.ID, func(ctx context.Context) error {
		quote, err := uc.marketGW.Quote(ctx, p.Version, 1, p.Days)
		if err != nil {
			return err
		}

		balance, err := uc.ledger.GetBalance(ctx, user.ID)
		if err != nil {
			return err
		}
		if balance.Amount < quote.TotalPrice {
			return fmt.Errorf("%w: renewal needs %.2f, have %.2f", models.ErrInsufficientFunds, quote.TotalPrice, balance.Amount)
		}

		txID, err := uc.txRepo.CreatePending(ctx, &models.Transaction{
			UserID:       user.ID,
			Amount:       quote.TotalPrice,
			BalanceAfter: balance.Amount - quote.TotalPrice,
			Type:         models.TransactionTypeProxy,
			Comment:      fmt.Sprintf("Auto-renewal of item %s for %d days", p.ItemID, p.Days),
		})
		if err != nil {
			return fmt.Errorf("failed to create pending transaction: %w", err)
		}

		if _, err := uc.ledger.SubtractMoney(ctx, user.ID, quote.TotalPrice); err != nil {
			if uerr := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusFailed, "Debit failed"); uerr != nil {
				logger.Error("Failed to mark renewal transaction failed",
					logger.String("transaction_id", txID.String()),
					logger.Err(uerr))
			}
			return err
		}

		order, err := uc.marketGW.Prolong(ctx, p.ItemID, p.Days)
		if err != nil {
			uc.compensate(ctx, user.ID, txID, quote.TotalPrice, "Upstream prolong failed")
			return err
		}

		item, ok := order.Items[p.ItemID]
		if !ok {
			uc.compensate(ctx, user.ID, txID, quote.TotalPrice, "Upstream prolong answer missing item")
			return fmt.Errorf("%w: prolong answer missing item %s", models.ErrUpstreamFailure, p.ItemID)
		}

		// The renewal is already real upstream; a local write failure
		// is logged and skipped, never refunded.
		if err := uc.proxyRepo.UpdateExpiry(ctx, p.ID, time.Unix(item.UnixtimeEnd, 0), item.UnixtimeEnd); err != nil {
			logger.Error("Renewed lease expiry not persisted",
				logger.String("proxy_id", p.ID.String()),
				logger.String("item_id", p.ItemID),
				logger.Err(err))
		}

		if err := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusCompleted, "Renewal completed"); err != nil {
			logger.Error("Failed to mark renewal transaction completed",
				logger.String("transaction_id", txID.String()),
				logger.Err(err))
		}

		if err := uc.proxyGW.PublishProxyProlonged(ctx, &models.ProxyProlongedEvent{
			ProxyID:     p.ID,
			UserID:      user.ID,
			ItemID:      p.ItemID,
			UnixtimeEnd: item.UnixtimeEnd,
			Price:       quote.TotalPrice,
			Timestamp:   time.Now(),
		}); err != nil {
			logger.Warn("Prolong event not published",
				logger.String("proxy_id", p.ID.String()),
				logger.Err(err))
		}

		return nil
	})
}
