package database

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
)

// RedisConfig holds the connection settings shared by the payment cache
// and the event feed
type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// GetRedisConfig returns Redis configuration with defaults
func GetRedisConfig() *RedisConfig {
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	return &RedisConfig{
		URL:      viper.GetString("redis.url"),
		Host:     viper.GetString("redis.host"),
		Port:     viper.GetString("redis.port"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	}
}

// Options returns client options, parsed from REDIS_URL when it is set
func (c *RedisConfig) Options() (*redis.Options, error) {
	if c.URL != "" {
		opts, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     c.Host + ":" + c.Port,
		Password: c.Password,
		DB:       c.DB,
	}, nil
}

// OpenRedis connects to Redis. It returns nil when Redis is misconfigured or
// unreachable, which leaves the payment cache and event feed disabled.
func OpenRedis(ctx context.Context, config *RedisConfig) *redis.Client {
	opts, err := config.Options()
	if err != nil {
		log.Printf("[REDIS] %v, continuing without Redis", err)
		return nil
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Connection to %s failed, continuing without Redis: %v", opts.Addr, err)
		rdb.Close()
		return nil
	}

	log.Printf("[REDIS] Connection established (%s, db %d)", opts.Addr, opts.DB)
	return rdb
}
