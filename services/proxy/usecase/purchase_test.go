package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/proxy/mocks"
)

type proxyMocks struct {
	proxyRepo *mocks.MockProxyRepo
	userRepo  *mocks.MockUserRepo
	ledger    *mocks.MockLedgerRepo
	txRepo    *mocks.MockTransactionRepo
	marketGW  *mocks.MockMarketGW
	proxyGW   *mocks.MockProxyGW
	scheduler *mocks.MockScheduler
	locker    *mocks.MockUserLocker
}

func newProxyUC(ctrl *gomock.Controller) (*ProxyUC, *proxyMocks) {
	m := &proxyMocks{
		proxyRepo: mocks.NewMockProxyRepo(ctrl),
		userRepo:  mocks.NewMockUserRepo(ctrl),
		ledger:    mocks.NewMockLedgerRepo(ctrl),
		txRepo:    mocks.NewMockTransactionRepo(ctrl),
		marketGW:  mocks.NewMockMarketGW(ctrl),
		proxyGW:   mocks.NewMockProxyGW(ctrl),
		scheduler: mocks.NewMockScheduler(ctrl),
		locker:    mocks.NewMockUserLocker(ctrl),
	}
	cfg := &models.Config{
		Notify:    models.NotifyConfig{ExpiryLeadHours: 6},
		Scheduler: models.SchedulerConfig{ProlongLookahead: 4500},
	}
	uc := NewProxyUC(m.proxyRepo, m.userRepo, m.ledger, m.txRepo,
		m.marketGW, m.proxyGW, m.scheduler, m.locker, cfg)
	return uc, m
}

func passthroughUserLock(m *mocks.MockUserLocker, userID uuid.UUID) {
	m.EXPECT().
		WithUserLock(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func passthroughLock(m *mocks.MockUserLocker, key string) {
	m.EXPECT().
		WithLock(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(ctx context.Context, k string, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestProxyUC_Purchase_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}
	end := time.Now().Add(30 * 24 * time.Hour).Unix()

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 100.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 1, 30).Return(&models.Quote{
		TotalPrice:  10.0,
		PriceSingle: 10.0,
		Days:        30,
		Quantity:    1,
	}, nil)
	m.txRepo.EXPECT().
		CreatePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx *models.Transaction) (uuid.UUID, error) {
			assert.Equal(t, 10.0, tx.Amount)
			assert.Equal(t, 90.0, tx.BalanceAfter)
			assert.Equal(t, models.TransactionTypeProxy, tx.Type)
			return txID, nil
		})
	m.ledger.EXPECT().SubtractMoney(gomock.Any(), userID, 10.0).Return(90.0, nil)
	m.marketGW.EXPECT().Buy(gomock.Any(), "ipv4", 1, 30, "ru", "http").Return(&models.MarketOrder{
		Items: map[string]models.MarketItem{
			"9001": {
				ID:          "9001",
				IP:          "203.0.113.10",
				Host:        "203.0.113.10",
				Port:        8080,
				Type:        "http",
				Country:     "ru",
				Unixtime:    time.Now().Unix(),
				UnixtimeEnd: end,
			},
		},
		Period:  30,
		Country: "ru",
	}, nil)
	m.proxyRepo.EXPECT().
		CreateProxy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Proxy) error {
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, txID, p.TransactionID)
			assert.Equal(t, "9001", p.ItemID)
			assert.True(t, p.Active)
			assert.False(t, p.AutoRenew)
			return nil
		})
	// Non-renewing leases get a reminder at expiry minus the lead time.
	m.scheduler.EXPECT().
		Schedule(gomock.Any(), userID, models.NotificationTypeProxyExpiring, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, notifType string, when time.Time, payload string) error {
			assert.WithinDuration(t, time.Unix(end, 0).Add(-6*time.Hour), when, time.Second)
			assert.Contains(t, payload, `"item_id":"9001"`)
			return nil
		})
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), txID, models.TransactionStatusCompleted, "Purchase completed, 1 of 1 items persisted").
		Return(nil)
	m.proxyGW.EXPECT().PublishProxyPurchased(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Type:       "http",
		Country:    "ru",
		Days:       30,
		Quantity:   1,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, txID, resp.TransactionID)
	assert.Equal(t, 1, resp.Quantity)
	assert.Equal(t, 10.0, resp.TotalPrice)
	assert.Len(t, resp.Proxies, 1)
}

func TestProxyUC_Purchase_UpstreamFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 100.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 2, 30).Return(&models.Quote{TotalPrice: 20.0, Days: 30, Quantity: 2}, nil)
	m.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(txID, nil)
	m.ledger.EXPECT().SubtractMoney(gomock.Any(), userID, 20.0).Return(80.0, nil)
	m.marketGW.EXPECT().Buy(gomock.Any(), "ipv4", 2, 30, "", "").Return(nil, models.ErrUpstreamFailure)

	// Compensation: failed mark, credit back, linked refund.
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), txID, models.TransactionStatusFailed, "Upstream purchase failed").
		Return(nil)
	m.ledger.EXPECT().AddMoney(gomock.Any(), userID, 20.0).Return(100.0, nil)
	m.txRepo.EXPECT().
		CreateRefund(gomock.Any(), userID, 20.0, 100.0, txID, "Refund: Upstream purchase failed").
		Return(uuid.New(), nil)

	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Days:       30,
		Quantity:   2,
	})

	assert.ErrorIs(t, err, models.ErrUpstreamFailure)
	assert.Nil(t, resp)
}

func TestProxyUC_Purchase_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 5.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 1, 30).Return(&models.Quote{TotalPrice: 10.0}, nil)
	// No transaction row and no debit when funds are short.

	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Days:       30,
		Quantity:   1,
	})

	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Nil(t, resp)
}

func TestProxyUC_Purchase_DebitFailureMarksTransactionFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 100.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 1, 30).Return(&models.Quote{TotalPrice: 10.0}, nil)
	m.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(txID, nil)
	m.ledger.EXPECT().SubtractMoney(gomock.Any(), userID, 10.0).Return(0.0, models.ErrInsufficientFunds)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), txID, models.TransactionStatusFailed, "Debit failed").
		Return(nil)

	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Days:       30,
		Quantity:   1,
	})

	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Nil(t, resp)
}

func TestProxyUC_Purchase_PersistFailureSkipsItemWithoutRefund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}
	end := time.Now().Add(30 * 24 * time.Hour).Unix()

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 100.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 2, 30).Return(&models.Quote{TotalPrice: 20.0, Days: 30, Quantity: 2}, nil)
	m.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(txID, nil)
	m.ledger.EXPECT().SubtractMoney(gomock.Any(), userID, 20.0).Return(80.0, nil)
	m.marketGW.EXPECT().Buy(gomock.Any(), "ipv4", 2, 30, "", "").Return(&models.MarketOrder{
		Items: map[string]models.MarketItem{
			"9001": {ID: "9001", Host: "203.0.113.10", Port: 8080, UnixtimeEnd: end},
			"9002": {ID: "9002", Host: "203.0.113.11", Port: 8080, UnixtimeEnd: end},
		},
		Period: 30,
	}, nil)
	// One row fails to persist; the item is skipped, never refunded.
	persisted := 0
	m.proxyRepo.EXPECT().
		CreateProxy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Proxy) error {
			if p.ItemID == "9002" {
				return errors.New("insert failed")
			}
			persisted++
			return nil
		}).
		Times(2)
	m.scheduler.EXPECT().
		Schedule(gomock.Any(), userID, models.NotificationTypeProxyExpiring, gomock.Any(), gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), txID, models.TransactionStatusCompleted, "Purchase completed, 1 of 2 items persisted").
		Return(nil)
	m.proxyGW.EXPECT().PublishProxyPurchased(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Days:       30,
		Quantity:   2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Quantity)
	assert.Equal(t, 1, persisted)
}

func TestProxyUC_Purchase_AutoRenewSkipsReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newProxyUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	passthroughUserLock(m.locker, userID)
	m.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID, Amount: 100.0}, nil)
	m.marketGW.EXPECT().Quote(gomock.Any(), "ipv4", 1, 30).Return(&models.Quote{TotalPrice: 10.0, Days: 30}, nil)
	m.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(txID, nil)
	m.ledger.EXPECT().SubtractMoney(gomock.Any(), userID, 10.0).Return(90.0, nil)
	m.marketGW.EXPECT().Buy(gomock.Any(), "ipv4", 1, 30, "", "").Return(&models.MarketOrder{
		Items:  map[string]models.MarketItem{"9001": {ID: "9001"}},
		Period: 30,
	}, nil)
	m.proxyRepo.EXPECT().CreateProxy(gomock.Any(), gomock.Any()).Return(nil)
	// No Schedule expectation: auto-renewing leases get no expiry reminder.
	m.txRepo.EXPECT().UpdateStatus(gomock.Any(), txID, models.TransactionStatusCompleted, gomock.Any()).Return(nil)
	m.proxyGW.EXPECT().PublishProxyPurchased(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.Purchase(context.Background(), &models.PurchaseRequest{
		TelegramID: "421337",
		Version:    "ipv4",
		Days:       30,
		Quantity:   1,
		AutoRenew:  true,
	})

	assert.NoError(t, err)
	assert.True(t, resp.Proxies[0].AutoRenew)
}

func TestProxyUC_Purchase_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newProxyUC(ctrl)

	tests := []struct {
		name string
		req  *models.PurchaseRequest
	}{
		{"zero quantity", &models.PurchaseRequest{TelegramID: "1", Version: "ipv4", Days: 30, Quantity: 0}},
		{"zero days", &models.PurchaseRequest{TelegramID: "1", Version: "ipv4", Days: 0, Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Purchase(context.Background(), tt.req)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Nil(t, resp)
		})
	}
}
