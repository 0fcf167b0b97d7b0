package usecase

import (
	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/proxy"
)

// ProxyUC implements the proxy usecase
type ProxyUC struct {
	proxyRepo proxy.ProxyRepo
	userRepo  proxy.UserRepo
	ledger    proxy.LedgerRepo
	txRepo    proxy.TransactionRepo
	marketGW  proxy.MarketGW
	proxyGW   proxy.ProxyGW
	scheduler proxy.Scheduler
	locker    proxy.UserLocker
	cfg       *models.Config
}

// NewProxyUC creates a new proxy usecase instance
func NewProxyUC(
	proxyRepo proxy.ProxyRepo,
	userRepo proxy.UserRepo,
	ledger proxy.LedgerRepo,
	txRepo proxy.TransactionRepo,
	marketGW proxy.MarketGW,
	proxyGW proxy.ProxyGW,
	scheduler proxy.Scheduler,
	locker proxy.UserLocker,
	cfg *models.Config,
) *ProxyUC {
	return &ProxyUC{
		proxyRepo: proxyRepo,
		userRepo:  userRepo,
		ledger:    ledger,
		txRepo:    txRepo,
		marketGW:  marketGW,
		proxyGW:   proxyGW,
		scheduler: scheduler,
		locker:    locker,
		cfg:       cfg,
	}
}
