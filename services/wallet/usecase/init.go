package usecase

import (
	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/wallet"
)

// ProviderRegistry resolves payment providers by name
type ProviderRegistry interface {
	Get(name string) (wallet.PaymentProvider, error)
}

// WalletUC implements the wallet usecase
type WalletUC struct {
	userRepo   wallet.UserRepo
	ledgerRepo wallet.LedgerRepo
	txRepo     wallet.TransactionRepo
	providers  ProviderRegistry
	walletGW   wallet.WalletGW
	locker     wallet.UserLocker
	cfg        *models.Config
}

// NewWalletUC creates a new wallet usecase instance
func NewWalletUC(
	userRepo wallet.UserRepo,
	ledgerRepo wallet.LedgerRepo,
	txRepo wallet.TransactionRepo,
	providers ProviderRegistry,
	walletGW wallet.WalletGW,
	locker wallet.UserLocker,
	cfg *models.Config,
) *WalletUC {
	return &WalletUC{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		txRepo:     txRepo,
		providers:  providers,
		walletGW:   walletGW,
		locker:     locker,
		cfg:        cfg,
	}
}
