package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/voyagr/payment-service/internal/models"
)

type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentStore) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentStore) FindAllByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) UpdateStatus(ctx context.Context, id int64, check func(p *models.Payment) error) (*models.Payment, error) {
	args := m.Called(ctx, id, check)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) LogPayment(paymentID int64, transactionID, userID string, amount int64, status string) {
	m.Called(paymentID, transactionID, userID, amount, status)
}

func (m *MockAuditLogger) LogRefund(paymentID int64, transactionID, userID string, amount int64) {
	m.Called(paymentID, transactionID, userID, amount)
}

func (m *MockAuditLogger) LogError(operation, reference string, err error) {
	m.Called(operation, reference, err)
}

func amountOf(cents int64) *models.Amount {
	a := models.Amount(cents)
	return &a
}

type fixedTxIDs struct {
	ids []string
	mu  sync.Mutex
}

func (f *fixedTxIDs) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.ids[0]
	if len(f.ids) > 1 {
		f.ids = f.ids[1:]
	}
	return id
}

// memPaymentStore is an in-memory PaymentStore with the same uniqueness and
// locking guarantees as the Postgres store.
type memPaymentStore struct {
	mu       sync.Mutex
	nextID   int64
	byID     map[int64]models.Payment
	byTxID   map[string]int64
	clock    time.Time
	failNext error
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{
		byID:   make(map[int64]models.Payment),
		byTxID: make(map[string]int64),
		clock:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memPaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	if _, exists := s.byTxID[p.TransactionID]; exists {
		return ErrDuplicateTransactionID
	}

	s.nextID++
	s.clock = s.clock.Add(time.Millisecond)
	p.ID = s.nextID
	p.CreatedAt = s.clock
	s.byID[p.ID] = *p
	s.byTxID[p.TransactionID] = p.ID
	return nil
}

func (s *memPaymentStore) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return &p, nil
}

func (s *memPaymentStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byTxID[transactionID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	p := s.byID[id]
	return &p, nil
}

func (s *memPaymentStore) FindAllByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []models.Payment
	for _, p := range s.byID {
		if p.UserID == userID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].ID < payments[j].ID
		}
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
	return payments, nil
}

func (s *memPaymentStore) UpdateStatus(ctx context.Context, id int64, check func(p *models.Payment) error) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	if err := check(&p); err != nil {
		return nil, err
	}
	s.byID[id] = p
	return &p, nil
}

// put seeds a record directly, bypassing the ledger
func (s *memPaymentStore) put(p models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = p
	s.byTxID[p.TransactionID] = p.ID
	if p.ID > s.nextID {
		s.nextID = p.ID
	}
}
