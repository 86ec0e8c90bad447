package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/voyagr/payment-service/internal/models"
)

const DefaultPaymentCacheTTL = 10 * time.Minute

// PaymentCache keeps recently used payments in Redis keyed by transaction id.
// A nil cache or nil client turns every call into a no-op miss.
type PaymentCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewPaymentCache(redis *redis.Client, ttl time.Duration) *PaymentCache {
	if ttl <= 0 {
		ttl = DefaultPaymentCacheTTL
	}
	return &PaymentCache{
		redis: redis,
		ttl:   ttl,
	}
}

func paymentCacheKey(transactionID string) string {
	return fmt.Sprintf("payment:txn:%s", transactionID)
}

func (c *PaymentCache) enabled() bool {
	return c != nil && c.redis != nil
}

// Get returns nil without error on a miss
func (c *PaymentCache) Get(ctx context.Context, transactionID string) (*models.Payment, error) {
	if !c.enabled() {
		return nil, nil
	}

	data, err := c.redis.Get(ctx, paymentCacheKey(transactionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p models.Payment
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Fill stores a record read from the database. It never replaces an existing
// entry, so a slow reader cannot overwrite a newer Put.
func (c *PaymentCache) Fill(ctx context.Context, p *models.Payment) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.redis.SetNX(ctx, paymentCacheKey(p.TransactionID), data, c.ttl).Err()
}

// Put stores the record written by a ledger mutation
func (c *PaymentCache) Put(ctx context.Context, p *models.Payment) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, paymentCacheKey(p.TransactionID), data, c.ttl).Err()
}

// Invalidate drops a cached record
func (c *PaymentCache) Invalidate(ctx context.Context, transactionID string) error {
	if !c.enabled() {
		return nil
	}
	return c.redis.Del(ctx, paymentCacheKey(transactionID)).Err()
}
