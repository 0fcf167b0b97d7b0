package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Market    MarketConfig
	Providers ProvidersConfig
	Notify    NotifyConfig
	Scheduler SchedulerConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// MarketConfig contains upstream proxy market configuration
type MarketConfig struct {
	BaseURL        string
	APIKey         string
	MarkupPercent  float64
	TimeoutSeconds int
	QuoteCacheTTL  int // seconds
}

// ProvidersConfig groups payment provider credentials
type ProvidersConfig struct {
	CryptoCloud CryptoCloudConfig
	NowPayments NowPaymentsConfig
}

// CryptoCloudConfig contains CryptoCloud API credentials
type CryptoCloudConfig struct {
	APIKey    string
	ShopID    string
	SecretKey string // verifies the postback JWT token
	Currency  string
}

// NowPaymentsConfig contains NOWPayments API credentials
type NowPaymentsConfig struct {
	APIKey      string
	CallbackURL string
	SuccessURL  string
	CancelURL   string
	Currency    string
}

// NotifyConfig contains notification delivery configuration
type NotifyConfig struct {
	TelegramNotifyURL string
	InternalAPIKey    string
	ExpiryLeadHours   int // reminder fires this many hours before expiry
}

// SchedulerConfig contains background job cadences (seconds)
type SchedulerConfig struct {
	ProlongInterval   int
	ProlongLookahead  int // renewal horizon, seconds before expiry
	ExpireInterval    int
	NotifyInterval    int
	UserLockTTL       int
	BatchRunLockTTL   int
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
