package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/voyagr/payment-service/internal/audit"
	"github.com/voyagr/payment-service/internal/models"
)

// PaymentLedger owns payment records and is the only writer of their status
type PaymentLedger struct {
	store  PaymentStore
	txIDs  TransactionIDGenerator
	cache  *PaymentCache
	events *EventPublisher
	audit  audit.Logger
}

type LedgerOption func(*PaymentLedger)

func WithPaymentCache(cache *PaymentCache) LedgerOption {
	return func(l *PaymentLedger) { l.cache = cache }
}

func WithEventPublisher(events *EventPublisher) LedgerOption {
	return func(l *PaymentLedger) { l.events = events }
}

func WithAuditLogger(logger audit.Logger) LedgerOption {
	return func(l *PaymentLedger) { l.audit = logger }
}

func NewPaymentLedger(store PaymentStore, txIDs TransactionIDGenerator, opts ...LedgerOption) *PaymentLedger {
	l := &PaymentLedger{
		store: store,
		txIDs: txIDs,
		audit: audit.NewAuditLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Create records a new payment. Authorization is simulated and always succeeds,
// so the returned payment is completed.
func (l *PaymentLedger) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", models.ErrInvalidAmount)
	}

	p := &models.Payment{
		UserID:        strings.TrimSpace(req.UserID),
		BookingType:   strings.TrimSpace(req.BookingType),
		BookingID:     strings.TrimSpace(req.BookingID),
		Amount:        *req.Amount,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Status:        models.PaymentStatusPending,
		TransactionID: l.txIDs.Generate(),
	}

	if err := l.authorize(p); err != nil {
		return nil, err
	}

	if err := l.store.Insert(ctx, p); err != nil {
		l.audit.LogError("create", p.TransactionID, err)
		if errors.Is(err, ErrDuplicateTransactionID) {
			log.Printf("[PAYMENT] Transaction id collision for %s, caller may retry", p.TransactionID)
		}
		return nil, err
	}

	log.Printf("[PAYMENT] Payment %d created: transaction %s, user %s, amount %s", p.ID, p.TransactionID, p.UserID, p.Amount)
	l.audit.LogPayment(p.ID, p.TransactionID, p.UserID, int64(p.Amount), string(p.Status))
	l.afterWrite(ctx, EventPaymentCompleted, p)

	return p, nil
}

// authorize resolves a pending payment. There is no gateway behind it.
func (l *PaymentLedger) authorize(p *models.Payment) error {
	return p.TransitionTo(models.PaymentStatusCompleted)
}

func (l *PaymentLedger) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	return l.store.FindByID(ctx, id)
}

func (l *PaymentLedger) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	if p, err := l.cache.Get(ctx, transactionID); err != nil {
		log.Printf("[PAYMENT] Cache read failed for %s: %v", transactionID, err)
	} else if p != nil {
		return p, nil
	}

	p, err := l.store.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Fill(ctx, p); err != nil {
		log.Printf("[PAYMENT] Cache fill failed for %s: %v", transactionID, err)
	}
	return p, nil
}

// ListByUser returns the user's payments in creation order, never nil
func (l *PaymentLedger) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	payments, err := l.store.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

// Refund moves a completed payment to refunded. Pending and already refunded
// payments are rejected with ErrRefundNotAllowed.
func (l *PaymentLedger) Refund(ctx context.Context, id int64) (*models.Payment, error) {
	p, err := l.store.UpdateStatus(ctx, id, func(p *models.Payment) error {
		if p.Status != models.PaymentStatusCompleted {
			return fmt.Errorf("%w: payment %d is %s", ErrRefundNotAllowed, p.ID, p.Status)
		}
		return p.TransitionTo(models.PaymentStatusRefunded)
	})
	if err != nil {
		if !errors.Is(err, ErrPaymentNotFound) && !errors.Is(err, ErrRefundNotAllowed) {
			l.audit.LogError("refund", strconv.FormatInt(id, 10), err)
		}
		return nil, err
	}

	log.Printf("[PAYMENT] Payment %d refunded: transaction %s", p.ID, p.TransactionID)
	l.audit.LogRefund(p.ID, p.TransactionID, p.UserID, int64(p.Amount))
	l.afterWrite(ctx, EventPaymentRefunded, p)

	return p, nil
}

func (l *PaymentLedger) afterWrite(ctx context.Context, eventType string, p *models.Payment) {
	if err := l.cache.Put(ctx, p); err != nil {
		log.Printf("[PAYMENT] Cache write failed for %s: %v", p.TransactionID, err)
		// A stale entry must not outlive the write
		if err := l.cache.Invalidate(ctx, p.TransactionID); err != nil {
			log.Printf("[PAYMENT] Cache invalidate failed for %s: %v", p.TransactionID, err)
		}
	}
	if err := l.events.Publish(ctx, eventType, p); err != nil {
		log.Printf("[PAYMENT] Failed to publish %s for %s: %v", eventType, p.TransactionID, err)
	}
}
