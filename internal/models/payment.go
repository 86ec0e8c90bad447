package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// PaymentStatus represents the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

var (
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrInvalidAmount     = errors.New("amount must be a finite non-negative number")
)

// allowedTransitions lists every permitted status change. Anything not listed is rejected.
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:   {PaymentStatusCompleted},
	PaymentStatusCompleted: {PaymentStatusRefunded},
}

// Valid reports whether s is a known status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether a payment in status s may move to next
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Amount is a money value held in minor units (cents).
// It is encoded on the wire as a JSON number in major units.
type Amount int64

// NewAmountFromFloat converts a major-unit value into minor units
func NewAmountFromFloat(v float64) (Amount, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(v * 100)
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit
	if cents >= math.MaxInt64 {
		return 0, ErrInvalidAmount
	}
	return Amount(cents), nil
}

// Float64 returns the amount in major units
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

func (a Amount) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', 2, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(a.Float64(), 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	amt, err := NewAmountFromFloat(v)
	if err != nil {
		return err
	}
	*a = amt
	return nil
}

// Payment is a payment recorded against a booking
type Payment struct {
	ID            int64         `json:"id" db:"id"`
	UserID        string        `json:"user_id" db:"user_id"`
	BookingType   string        `json:"booking_type" db:"booking_type"`
	BookingID     string        `json:"booking_id" db:"booking_id"`
	Amount        Amount        `json:"amount" db:"amount"` // in cents
	PaymentMethod string        `json:"payment_method" db:"payment_method"`
	Status        PaymentStatus `json:"status" db:"status"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// TransitionTo moves the payment to next if the state table allows it
func (p *Payment) TransitionTo(next PaymentStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, next)
	}
	p.Status = next
	return nil
}

// CreatePaymentRequest is the payment intent submitted by a caller
type CreatePaymentRequest struct {
	UserID        string  `json:"user_id" validate:"required,notblank,max=128" example:"64b7f0c2a1e4d3f5b6c7d8e9"`
	BookingType   string  `json:"booking_type" validate:"required,notblank,max=64" example:"flight"`
	BookingID     string  `json:"booking_id" validate:"required,notblank,max=128" example:"b1"`
	Amount        *Amount `json:"amount" validate:"required,gte=0,lte=100000000" swaggertype:"number" example:"250.00"`
	PaymentMethod string  `json:"payment_method" validate:"required,notblank,max=64" example:"card"`
}

// RefundResult is returned to callers after a successful refund
type RefundResult struct {
	ID      int64         `json:"id"`
	Status  PaymentStatus `json:"status"`
	Message string        `json:"message"`
}
