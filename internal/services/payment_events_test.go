package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	occurredAt := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	newPublisher := func() (*EventPublisher, redismock.ClientMock) {
		redisClient, mock := redismock.NewClientMock()
		publisher := NewEventPublisher(redisClient, "")
		publisher.newID = func() string { return "evt-1" }
		publisher.now = func() time.Time { return occurredAt }
		return publisher, mock
	}

	t.Run("pushes onto the default queue", func(t *testing.T) {
		publisher, mock := newPublisher()
		p := cachedPayment()

		data, err := json.Marshal(PaymentEvent{
			EventID:    "evt-1",
			Type:       EventPaymentCompleted,
			OccurredAt: occurredAt,
			Payment:    *p,
		})
		require.NoError(t, err)
		mock.ExpectRPush("payment_events", data).SetVal(1)

		assert.NoError(t, publisher.Publish(ctx, EventPaymentCompleted, p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		publisher, mock := newPublisher()
		p := cachedPayment()

		data, _ := json.Marshal(PaymentEvent{
			EventID:    "evt-1",
			Type:       EventPaymentRefunded,
			OccurredAt: occurredAt,
			Payment:    *p,
		})
		mock.ExpectRPush("payment_events", data).SetErr(errors.New("connection refused"))

		assert.Error(t, publisher.Publish(ctx, EventPaymentRefunded, p))
	})

	t.Run("disabled without a client", func(t *testing.T) {
		assert.NoError(t, NewEventPublisher(nil, "").Publish(ctx, EventPaymentCompleted, cachedPayment()))

		var publisher *EventPublisher
		assert.NoError(t, publisher.Publish(ctx, EventPaymentCompleted, cachedPayment()))
	})
}

func TestPaymentLedger_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	occurredAt := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	store := newMemPaymentStore()
	p := cachedPayment()
	store.put(*p)

	redisClient, mock := redismock.NewClientMock()
	publisher := NewEventPublisher(redisClient, "bookings")
	publisher.newID = func() string { return "evt-2" }
	publisher.now = func() time.Time { return occurredAt }

	ledger, _ := newTestLedger(store)
	ledger.events = publisher

	refunded := *p
	refunded.Status = "refunded"
	data, _ := json.Marshal(PaymentEvent{
		EventID:    "evt-2",
		Type:       EventPaymentRefunded,
		OccurredAt: occurredAt,
		Payment:    refunded,
	})
	mock.ExpectRPush("bookings", data).SetVal(1)

	_, err := ledger.Refund(ctx, p.ID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
