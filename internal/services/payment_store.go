package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/voyagr/payment-service/internal/models"
)

const uniqueViolation = "23505"

// PaymentStore is the persistence the ledger needs
type PaymentStore interface {
	// Insert persists p and fills in ID and CreatedAt
	Insert(ctx context.Context, p *models.Payment) error
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	// FindAllByUser returns the user's payments oldest first
	FindAllByUser(ctx context.Context, userID string) ([]models.Payment, error)
	// UpdateStatus locks the payment, lets check mutate its status and persists the result.
	// If check returns an error nothing is written and the error is returned as is.
	UpdateStatus(ctx context.Context, id int64, check func(p *models.Payment) error) (*models.Payment, error)
}

type PostgresPaymentStore struct {
	db *sql.DB
}

func NewPostgresPaymentStore(db *sql.DB) *PostgresPaymentStore {
	return &PostgresPaymentStore{db: db}
}

const paymentColumns = `id, user_id, booking_type, booking_id, amount, payment_method, status, transaction_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.BookingType, &p.BookingID, &p.Amount,
		&p.PaymentMethod, &p.Status, &p.TransactionID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresPaymentStore) Insert(ctx context.Context, p *models.Payment) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO payments
		(user_id, booking_type, booking_id, amount, payment_method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		p.UserID, p.BookingType, p.BookingID, int64(p.Amount), p.PaymentMethod, string(p.Status), p.TransactionID,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateTransactionID, p.TransactionID)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *PostgresPaymentStore) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment %d: %w", id, err)
	}
	return p, nil
}

func (s *PostgresPaymentStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE transaction_id = $1`, transactionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment %s: %w", transactionID, err)
	}
	return p, nil
}

func (s *PostgresPaymentStore) FindAllByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *PostgresPaymentStore) UpdateStatus(ctx context.Context, id int64, check func(p *models.Payment) error) (*models.Payment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Row lock serializes concurrent transitions on the same payment
	p, err := scanPayment(tx.QueryRowContext(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1
		FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("lock payment %d: %w", id, err)
	}

	if err := check(p); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1
		WHERE id = $2`,
		string(p.Status), p.ID)
	if err != nil {
		return nil, fmt.Errorf("update payment %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrPaymentNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment %d: %w", id, err)
	}
	return p, nil
}
