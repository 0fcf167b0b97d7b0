package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/proxline/proxline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/proxline/proxline/services/wallet UserRepo,LedgerRepo,TransactionRepo

// UserRepo handles user identity lookups and upserts
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	Upsert(ctx context.Context, req *models.UserUpsertRequest) (*models.User, error)
}

// LedgerRepo mutates the single per-user balance. Sufficiency is
// re-validated inside the mutation itself, never at quote time.
type LedgerRepo interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.Balance, error)
	AddMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
	SubtractMoney(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// TransactionRepo is the append-mostly ledger of balance-affecting events
type TransactionRepo interface {
	CreatePending(ctx context.Context, tx *models.Transaction) (uuid.UUID, error)
	CreateRefund(ctx context.Context, userID uuid.UUID, amount, balanceAfter float64, relatedID uuid.UUID, comment string) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error
	MarkTerminal(ctx context.Context, id uuid.UUID, status, comment string) error
	UpdateExternalID(ctx context.Context, id uuid.UUID, externalID string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Transaction, error)
}
