package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds the payment service settings that are not database specific
type ServiceConfig struct {
	Port              string
	TransactionPrefix string
	Currency          string
	SettlementBIC     string
	EventQueue        string
	CacheTTL          time.Duration
	AuthEnabled       bool
	JWTSecret         string
	TokenTTL          time.Duration
	ShutdownTimeout   time.Duration
}

// Init points viper at the .env file (or path) and binds environment overrides
func Init(path string) {
	if path == "" {
		path = ".env"
	}
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.url", "REDIS_URL")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("payment.transaction_prefix", "PAYMENT_TRANSACTION_PREFIX")
	viper.BindEnv("payment.currency", "PAYMENT_CURRENCY")
	viper.BindEnv("payment.settlement_bic", "PAYMENT_SETTLEMENT_BIC")
	viper.BindEnv("payment.event_queue", "PAYMENT_EVENT_QUEUE")
	viper.BindEnv("payment.cache_ttl", "PAYMENT_CACHE_TTL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}
}

// Load returns the service configuration with defaults
func Load() *ServiceConfig {
	viper.SetDefault("server.port", "3003")
	viper.SetDefault("server.shutdown_timeout", 30*time.Second)
	viper.SetDefault("payment.transaction_prefix", "TXN")
	viper.SetDefault("payment.currency", "USD")
	viper.SetDefault("payment.settlement_bic", "VOYAGRXX")
	viper.SetDefault("payment.event_queue", "payment_events")
	viper.SetDefault("payment.cache_ttl", 10*time.Minute)
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("jwt.expiry_hours", 24)

	return &ServiceConfig{
		Port:              viper.GetString("server.port"),
		TransactionPrefix: viper.GetString("payment.transaction_prefix"),
		Currency:          viper.GetString("payment.currency"),
		SettlementBIC:     viper.GetString("payment.settlement_bic"),
		EventQueue:        viper.GetString("payment.event_queue"),
		CacheTTL:          viper.GetDuration("payment.cache_ttl"),
		AuthEnabled:       viper.GetBool("auth.enabled"),
		JWTSecret:         viper.GetString("jwt.secret_key"),
		TokenTTL:          time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour,
		ShutdownTimeout:   viper.GetDuration("server.shutdown_timeout"),
	}
}
