package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/voyagr/payment-service/internal/models"
)

const (
	DefaultEventQueue = "payment_events"

	EventPaymentCompleted = "payment.completed"
	EventPaymentRefunded  = "payment.refunded"
)

type PaymentEvent struct {
	EventID    string         `json:"event_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payment    models.Payment `json:"payment"`
}

// EventPublisher pushes ledger events onto a Redis list for downstream
// consumers (booking, notifications). A nil client disables publishing.
type EventPublisher struct {
	redis *redis.Client
	queue string
	newID func() string
	now   func() time.Time
}

func NewEventPublisher(redis *redis.Client, queue string) *EventPublisher {
	if queue == "" {
		queue = DefaultEventQueue
	}
	return &EventPublisher{
		redis: redis,
		queue: queue,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
}

func (e *EventPublisher) Publish(ctx context.Context, eventType string, p *models.Payment) error {
	if e == nil || e.redis == nil {
		return nil
	}

	data, err := json.Marshal(PaymentEvent{
		EventID:    e.newID(),
		Type:       eventType,
		OccurredAt: e.now().UTC(),
		Payment:    *p,
	})
	if err != nil {
		return err
	}

	return e.redis.RPush(ctx, e.queue, data).Err()
}
