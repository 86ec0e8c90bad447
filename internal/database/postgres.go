package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/viper"
)

// DBConfig holds database configuration
type DBConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// GetConfig returns database configuration with defaults
func GetConfig() *DBConfig {
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "paymentdb")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", time.Minute*5)

	return &DBConfig{
		URL:             viper.GetString("database.url"),
		Host:            viper.GetString("database.host"),
		Port:            viper.GetString("database.port"),
		User:            viper.GetString("database.user"),
		Password:        viper.GetString("database.password"),
		Name:            viper.GetString("database.name"),
		SSLMode:         viper.GetString("database.ssl_mode"),
		MaxOpenConns:    viper.GetInt("database.max_open_conns"),
		MaxIdleConns:    viper.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: viper.GetDuration("database.conn_max_lifetime"),
	}
}

// ConnString returns DATABASE_URL when set, otherwise a key/value DSN
func (c *DBConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Open connects to Postgres and configures the pool. The caller owns the handle.
func Open(ctx context.Context, config *DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test connection
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	log.Println("[DATABASE] Connection established")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS payments (
		id             BIGSERIAL PRIMARY KEY,
		user_id        VARCHAR(128) NOT NULL,
		booking_type   VARCHAR(64)  NOT NULL,
		booking_id     VARCHAR(128) NOT NULL,
		amount         BIGINT       NOT NULL CHECK (amount >= 0),
		payment_method VARCHAR(64)  NOT NULL,
		status         VARCHAR(16)  NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'completed', 'refunded')),
		transaction_id VARCHAR(64)  NOT NULL,
		created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		CONSTRAINT payments_transaction_id_key UNIQUE (transaction_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_user_created ON payments (user_id, created_at, id)`,
}

// Migrate creates the payments table and its indexes if they do not exist
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("[DATABASE] Schema up to date")
	return nil
}
