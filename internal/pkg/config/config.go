package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/proxline/proxline/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Upstream market config
	configs.Market.BaseURL = GetEnv("MARKET_BASE_URL", "")
	configs.Market.APIKey = GetEnv("MARKET_API_KEY", "")
	configs.Market.MarkupPercent = GetEnvAsFloat("MARKET_MARKUP_PERCENT", 30.0)
	configs.Market.TimeoutSeconds = GetEnvAsInt("MARKET_TIMEOUT_SECONDS", 10)
	configs.Market.QuoteCacheTTL = GetEnvAsInt("MARKET_QUOTE_CACHE_TTL", 600)

	// Payment provider config
	configs.Providers.CryptoCloud.APIKey = GetEnv("CRYPTOCLOUD_API_KEY", "")
	configs.Providers.CryptoCloud.ShopID = GetEnv("CRYPTOCLOUD_SHOP_ID", "")
	configs.Providers.CryptoCloud.SecretKey = GetEnv("CRYPTOCLOUD_SECRET_KEY", "")
	configs.Providers.CryptoCloud.Currency = GetEnv("CRYPTOCLOUD_CURRENCY", "USD")
	configs.Providers.NowPayments.APIKey = GetEnv("NOWPAYMENTS_API_KEY", "")
	configs.Providers.NowPayments.CallbackURL = GetEnv("NOWPAYMENTS_CALLBACK_URL", "")
	configs.Providers.NowPayments.SuccessURL = GetEnv("NOWPAYMENTS_SUCCESS_URL", "")
	configs.Providers.NowPayments.CancelURL = GetEnv("NOWPAYMENTS_CANCEL_URL", "")
	configs.Providers.NowPayments.Currency = GetEnv("NOWPAYMENTS_CURRENCY", "usd")

	// Notification config
	configs.Notify.TelegramNotifyURL = GetEnv("TELEGRAM_NOTIFY_URL", "")
	configs.Notify.InternalAPIKey = GetEnv("INTERNAL_API_KEY", "")
	configs.Notify.ExpiryLeadHours = GetEnvAsInt("NOTIFY_EXPIRY_LEAD_HOURS", 6)

	// Scheduler config
	configs.Scheduler.ProlongInterval = GetEnvAsInt("SCHEDULER_PROLONG_INTERVAL", 1800)
	configs.Scheduler.ProlongLookahead = GetEnvAsInt("SCHEDULER_PROLONG_LOOKAHEAD", 4500)
	configs.Scheduler.ExpireInterval = GetEnvAsInt("SCHEDULER_EXPIRE_INTERVAL", 3600)
	configs.Scheduler.NotifyInterval = GetEnvAsInt("SCHEDULER_NOTIFY_INTERVAL", 60)
	configs.Scheduler.UserLockTTL = GetEnvAsInt("SCHEDULER_USER_LOCK_TTL", 60)
	configs.Scheduler.BatchRunLockTTL = GetEnvAsInt("SCHEDULER_BATCH_RUN_LOCK_TTL", 1500)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
