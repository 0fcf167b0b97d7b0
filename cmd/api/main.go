package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/proxline/proxline/internal/pkg/config"
	"github.com/proxline/proxline/internal/pkg/database"
	"github.com/proxline/proxline/internal/pkg/health"
	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/middleware"
	natspkg "github.com/proxline/proxline/internal/pkg/nats"
	nrpkg "github.com/proxline/proxline/internal/pkg/newrelic"
	"github.com/proxline/proxline/internal/pkg/server"
	"github.com/proxline/proxline/internal/pkg/userlock"
	proxyGateway "github.com/proxline/proxline/services/proxy/gateway"
	"github.com/proxline/proxline/services/proxy/gateway/market"
	proxyHandlerPkg "github.com/proxline/proxline/services/proxy/handler"
	proxyHTTP "github.com/proxline/proxline/services/proxy/handler/http"
	proxyRepository "github.com/proxline/proxline/services/proxy/repository"
	proxyUsecase "github.com/proxline/proxline/services/proxy/usecase"
	notifyGateway "github.com/proxline/proxline/services/notify/gateway"
	notifyRepository "github.com/proxline/proxline/services/notify/repository"
	notifyUsecase "github.com/proxline/proxline/services/notify/usecase"
	walletGateway "github.com/proxline/proxline/services/wallet/gateway"
	"github.com/proxline/proxline/services/wallet/gateway/provider"
	walletHandlerPkg "github.com/proxline/proxline/services/wallet/handler"
	walletHTTP "github.com/proxline/proxline/services/wallet/handler/http"
	walletRepository "github.com/proxline/proxline/services/wallet/repository"
	walletUsecase "github.com/proxline/proxline/services/wallet/usecase"
)

func main() {
	appName := "proxline-api"
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

	// Wallet service
	userRepo := walletRepository.NewUserRepo(db)
	ledgerRepo := walletRepository.NewLedgerRepo(db)
	txRepo := walletRepository.NewTransactionRepo(db)
	providers := provider.NewRegistry(
		provider.NewCryptoCloud(configs.Providers.CryptoCloud),
		provider.NewNowPayments(configs.Providers.NowPayments),
	)
	walletGW := walletGateway.NewWalletGW(natsClient)
	walletUC := walletUsecase.NewWalletUC(userRepo, ledgerRepo, txRepo, providers, walletGW, locker, configs)

	// Notify service (scheduling side only; flushing runs in cmd/scheduler)
	notificationRepo := notifyRepository.NewNotificationRepo(db)
	telegramGW := notifyGateway.NewTelegramGW(configs.Notify)
	notifyUC := notifyUsecase.NewNotifyUC(notificationRepo, userRepo, telegramGW, configs)

	// Proxy service
	proxyRepo := proxyRepository.NewProxyRepo(db)
	marketGW := market.NewMarketGW(configs.Market, redisClient, zapLogger)
	proxyGW := proxyGateway.NewProxyGW(natsClient)
	proxyUC := proxyUsecase.NewProxyUC(proxyRepo, userRepo, ledgerRepo, txRepo, marketGW, proxyGW, notifyUC, locker, configs)

	walletHandler := walletHandlerPkg.NewHandler(walletHTTP.NewWalletHandler(walletUC), configs)
	proxyHandler := proxyHandlerPkg.NewHandler(proxyHTTP.NewProxyHandler(proxyUC), configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		func(ctx context.Context) error { return db.PingContext(ctx) },
		func(ctx context.Context) error { return redisClient.GetClient().Ping(ctx).Err() },
	)
	walletHandler.RegisterRoutes(e)
	proxyHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
