package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/proxline/proxline/internal/pkg/config"
	"github.com/proxline/proxline/internal/pkg/database"
	"github.com/proxline/proxline/internal/pkg/logger"
	natspkg "github.com/proxline/proxline/internal/pkg/nats"
	nrpkg "github.com/proxline/proxline/internal/pkg/newrelic"
	"github.com/proxline/proxline/internal/pkg/userlock"
	proxyGateway "github.com/proxline/proxline/services/proxy/gateway"
	"github.com/proxline/proxline/services/proxy/gateway/market"
	proxyRepository "github.com/proxline/proxline/services/proxy/repository"
	proxyUsecase "github.com/proxline/proxline/services/proxy/usecase"
	notifyGateway "github.com/proxline/proxline/services/notify/gateway"
	notifyRepository "github.com/proxline/proxline/services/notify/repository"
	notifyUsecase "github.com/proxline/proxline/services/notify/usecase"
	walletRepository "github.com/proxline/proxline/services/wallet/repository"
)

func main() {
	appName := "proxline-scheduler"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()
	locker := userlock.New(redisClient.GetClient(),
		time.Duration(configs.Scheduler.UserLockTTL)*time.Second,
		time.Duration(configs.Scheduler.BatchRunLockTTL)*time.Second)

	userRepo := walletRepository.NewUserRepo(db)
	ledgerRepo := walletRepository.NewLedgerRepo(db)
	txRepo := walletRepository.NewTransactionRepo(db)

	notificationRepo := notifyRepository.NewNotificationRepo(db)
	telegramGW := notifyGateway.NewTelegramGW(configs.Notify)
	notifyUC := notifyUsecase.NewNotifyUC(notificationRepo, userRepo, telegramGW, configs)

	proxyRepo := proxyRepository.NewProxyRepo(db)
	marketGW := market.NewMarketGW(configs.Market, redisClient, zapLogger)
	proxyGW := proxyGateway.NewProxyGW(natsClient)
	proxyUC := proxyUsecase.NewProxyUC(proxyRepo, userRepo, ledgerRepo, txRepo, marketGW, proxyGW, notifyUC, locker, configs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prolongTicker := time.NewTicker(time.Duration(configs.Scheduler.ProlongInterval) * time.Second)
	expireTicker := time.NewTicker(time.Duration(configs.Scheduler.ExpireInterval) * time.Second)
	notifyTicker := time.NewTicker(time.Duration(configs.Scheduler.NotifyInterval) * time.Second)
	defer prolongTicker.Stop()
	defer expireTicker.Stop()
	defer notifyTicker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	zapLogger.Info("Scheduler running",
		zap.Int("prolong_interval_s", configs.Scheduler.ProlongInterval),
		zap.Int("expire_interval_s", configs.Scheduler.ExpireInterval),
		zap.Int("notify_interval_s", configs.Scheduler.NotifyInterval),
	)

	for {
		select {
		case <-prolongTicker.C:
			tally, err := proxyUC.ProlongDue(ctx)
			if err != nil {
				zapLogger.Error("Prolongation batch failed", zap.Error(err))
				continue
			}
			zapLogger.Info("Prolongation batch done",
				zap.Int("total", tally.Total),
				zap.Int("succeeded", tally.Succeeded),
				zap.Int("failed", tally.Failed),
			)

		case <-expireTicker.C:
			n, err := proxyUC.DeactivateExpired(ctx)
			if err != nil {
				zapLogger.Error("Expiry sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				zapLogger.Info("Expiry sweep done", zap.Int("deactivated", n))
			}

		case <-notifyTicker.C:
			if _, err := notifyUC.ProcessPending(ctx); err != nil {
				zapLogger.Error("Notification flush failed", zap.Error(err))
			}

		case sig := <-quit:
			zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
			return
		}
	}
}
