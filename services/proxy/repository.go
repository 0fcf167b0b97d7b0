package proxy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/proxline/proxline/services/proxy ProxyRepo,UserRepo,LedgerRepo,TransactionRepo

// ProxyRepo handles the persisted proxy inventory
type ProxyRepo interface {
	CreateProxy(ctx context.Context, proxy *models.Proxy) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Proxy, error)
	GetAutoRenewDue(ctx context.Context, deadline int64) ([]models.Proxy, error)
	UpdateExpiry(ctx context.Context, id uuid.UUID, dateEnd time.Time, unixtimeEnd int64) error
	ListActiveExpired(ctx context.Context, now int64) ([]models.Proxy, error)
	Deactivate(ctx context.Context, ids []uuid.UUID) (int, error)
}

// UserRepo is the slice of the wallet user repository the sagas need
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
}

// LedgerRepo is the slice of the wallet ledger the sagas need
type LedgerRepo interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.Balance, error)
	AddMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
	SubtractMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// TransactionRepo is the slice of the wallet transaction log the sagas need
type TransactionRepo interface {
	CreatePending(ctx context.Context, tx *models.Transaction) (uuid.UUID, error)
	CreateRefund(ctx context.Context, userID uuid.UUID, amount, balanceAfter float64, relatedID uuid.UUID, comment string) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error
}
