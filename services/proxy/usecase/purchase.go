package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// Purchase runs the purchase saga under the per-user lock: quote,
// fund check, pending ledger row, debit, upstream buy, persist,
// notification scheduling. An upstream failure after the debit is
// compensated synchronously with a credit and a linked refund before
// the error surfaces; the caller never sees a partial state.
func (uc *ProxyUC) Purchase(ctx context.Context, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	if req.Quantity <= 0 || req.Days <= 0 {
		return nil, fmt.Errorf("%w: quantity and days must be positive", models.ErrValidation)
	}

	user, err := uc.userRepo.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, err
	}

	var resp *models.PurchaseResponse
	err = uc.locker.WithUserLock(ctx, user.ID, func(ctx context.Context) error {
		resp, err = uc.purchaseLocked(ctx, user, req)
		return err
	})
	return resp, err
}

func (uc *ProxyUC) purchaseLocked(ctx context.Context, user *models.User, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	balance, err := uc.ledger.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	quote, err := uc.marketGW.Quote(ctx, req.Version, req.Quantity, req.Days)
	if err != nil {
		return nil, err
	}

	if balance.Amount < quote.TotalPrice {
		return nil, fmt.Errorf("%w: need %.2f, have %.2f", models.ErrInsufficientFunds, quote.TotalPrice, balance.Amount)
	}

	// The pending row goes in before the debit so a crash mid-saga
	// still leaves an explanatory ledger entry.
	txID, err := uc.txRepo.CreatePending(ctx, &models.Transaction{
		UserID:       user.ID,
		Amount:       quote.TotalPrice,
		BalanceAfter: balance.Amount - quote.TotalPrice,
		Type:         models.TransactionTypeProxy,
		Comment:      fmt.Sprintf("Purchase %dx %s for %d days", req.Quantity, req.Version, req.Days),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pending transaction: %w", err)
	}

	if _, err := uc.ledger.SubtractMoney(ctx, user.ID, quote.TotalPrice); err != nil {
		if uerr := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusFailed, "Debit failed"); uerr != nil {
			logger.Error("Failed to mark purchase transaction failed",
				logger.String("transaction_id", txID.String()),
				logger.Err(uerr))
		}
		return nil, err
	}

	order, err := uc.marketGW.Buy(ctx, req.Version, req.Quantity, req.Days, req.Country, req.Type)
	if err != nil {
		uc.compensate(ctx, user.ID, txID, quote.TotalPrice, "Upstream purchase failed")
		return nil, err
	}

	proxies := uc.persistItems(ctx, user, txID, req, order)

	comment := fmt.Sprintf("Purchase completed, %d of %d items persisted", len(proxies), len(order.Items))
	if err := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusCompleted, comment); err != nil {
		logger.Error("Failed to mark purchase transaction completed",
			logger.String("transaction_id", txID.String()),
			logger.Err(err))
	}

	if err := uc.proxyGW.PublishProxyPurchased(ctx, &models.ProxyPurchasedEvent{
		TransactionID: txID,
		UserID:        user.ID,
		TelegramID:    user.TelegramID,
		Quantity:      len(proxies),
		TotalPrice:    quote.TotalPrice,
		Country:       order.Country,
		Timestamp:     time.Now(),
	}); err != nil {
		logger.Warn("Purchase event not published",
			logger.String("transaction_id", txID.String()),
			logger.Err(err))
	}

	return &models.PurchaseResponse{
		TransactionID: txID,
		Quantity:      len(proxies),
		TotalPrice:    quote.TotalPrice,
		Days:          quote.Days,
		Country:       order.Country,
		Proxies:       proxies,
	}, nil
}

// persistItems writes one inventory row per upstream item. A per-item
// write failure is logged and skipped; the purchase already happened
// upstream, so it never triggers a refund.
func (uc *ProxyUC) persistItems(ctx context.Context, user *models.User, txID uuid.UUID, req *models.PurchaseRequest, order *models.MarketOrder) []models.Proxy {
	proxies := make([]models.Proxy, 0, len(order.Items))
	for itemID, item := range order.Items {
		p := models.Proxy{
			UserID:        user.ID,
			TransactionID: txID,
			ItemID:        itemID,
			IP:            item.IP,
			Host:          item.Host,
			Port:          item.Port,
			Version:       req.Version,
			Type:          item.Type,
			Country:       item.Country,
			Descr:         item.Descr,
			DateStart:     time.Unix(item.Unixtime, 0),
			DateEnd:       time.Unix(item.UnixtimeEnd, 0),
			Unixtime:      item.Unixtime,
			UnixtimeEnd:   item.UnixtimeEnd,
			Days:          order.Period,
			Active:        true,
			AutoRenew:     req.AutoRenew,
		}

		if err := uc.proxyRepo.CreateProxy(ctx, &p); err != nil {
			logger.Error("Purchased item not persisted",
				logger.String("item_id", itemID),
				logger.String("transaction_id", txID.String()),
				logger.Err(err))
			continue
		}
		proxies = append(proxies, p)

		if !req.AutoRenew {
			uc.scheduleExpiryReminder(ctx, user, &p)
		}
	}
	return proxies
}

func (uc *ProxyUC) scheduleExpiryReminder(ctx context.Context, user *models.User, p *models.Proxy) {
	lead := time.Duration(uc.cfg.Notify.ExpiryLeadHours) * time.Hour
	when := p.DateEnd.Add(-lead)

	payload, _ := json.Marshal(map[string]interface{}{
		"item_id":  p.ItemID,
		"host":     p.Host,
		"port":     p.Port,
		"date_end": p.DateEnd,
	})

	if err := uc.scheduler.Schedule(ctx, user.ID, models.NotificationTypeProxyExpiring, when, string(payload)); err != nil {
		logger.Warn("Expiry reminder not scheduled",
			logger.String("item_id", p.ItemID),
			logger.Err(err))
	}
}

// compensate reverses a debit after an upstream failure: the original
// transaction is marked failed, the amount is credited back, and a
// linked refund row records the correction.
func (uc *ProxyUC) compensate(ctx context.Context, userID uuid.UUID, txID uuid.UUID, amount float64, reason string) {
	if err := uc.txRepo.UpdateStatus(ctx, txID, models.TransactionStatusFailed, reason); err != nil {
		logger.Error("Compensation: failed to mark transaction failed",
			logger.String("transaction_id", txID.String()),
			logger.Err(err))
	}

	newBalance, err := uc.ledger.AddMoney(ctx, userID, amount)
	if err != nil {
		logger.Error("Compensation: failed to credit balance back",
			logger.String("transaction_id", txID.String()),
			logger.Float64("amount", amount),
			logger.Err(err))
		return
	}

	if _, err := uc.txRepo.CreateRefund(ctx, userID, amount, newBalance, txID, "Refund: "+reason); err != nil {
		logger.Error("Compensation: failed to create refund transaction",
			logger.String("transaction_id", txID.String()),
			logger.Err(err))
	}
}
