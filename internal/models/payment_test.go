package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		allowed  bool
	}{
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusCompleted, PaymentStatusRefunded, true},
		{PaymentStatusPending, PaymentStatusRefunded, false},
		{PaymentStatusRefunded, PaymentStatusCompleted, false},
		{PaymentStatusRefunded, PaymentStatusRefunded, false},
		{PaymentStatusCompleted, PaymentStatusPending, false},
		{PaymentStatusCompleted, PaymentStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPayment_TransitionTo(t *testing.T) {
	t.Run("forward transition", func(t *testing.T) {
		p := &Payment{Status: PaymentStatusPending}
		require.NoError(t, p.TransitionTo(PaymentStatusCompleted))
		require.NoError(t, p.TransitionTo(PaymentStatusRefunded))
		assert.Equal(t, PaymentStatusRefunded, p.Status)
	})

	t.Run("rejected transition leaves status unchanged", func(t *testing.T) {
		p := &Payment{Status: PaymentStatusRefunded}
		err := p.TransitionTo(PaymentStatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, PaymentStatusRefunded, p.Status)
	})
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, PaymentStatusPending.Valid())
	assert.True(t, PaymentStatusCompleted.Valid())
	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("failed").Valid())
}

func TestAmount(t *testing.T) {
	t.Run("rounds to minor units", func(t *testing.T) {
		a, err := NewAmountFromFloat(19.999)
		require.NoError(t, err)
		assert.Equal(t, Amount(2000), a)

		a, err = NewAmountFromFloat(0.1 + 0.2)
		require.NoError(t, err)
		assert.Equal(t, Amount(30), a)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		for _, v := range []float64{-0.01, math.NaN(), math.Inf(1), math.Ldexp(1, 63) / 100, 1e17} {
			_, err := NewAmountFromFloat(v)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})

	t.Run("json keeps the major unit value", func(t *testing.T) {
		var req CreatePaymentRequest
		err := json.Unmarshal([]byte(`{"amount":250.0}`), &req)
		require.NoError(t, err)
		require.NotNil(t, req.Amount)
		assert.Equal(t, Amount(25000), *req.Amount)

		out, err := json.Marshal(req.Amount)
		require.NoError(t, err)
		assert.Equal(t, "250", string(out))

		out, err = json.Marshal(Amount(1999))
		require.NoError(t, err)
		assert.Equal(t, "19.99", string(out))
		assert.Equal(t, "19.99", Amount(1999).String())
	})

	t.Run("absent or null amount stays unset", func(t *testing.T) {
		var req CreatePaymentRequest
		require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u1"}`), &req))
		assert.Nil(t, req.Amount)

		require.NoError(t, json.Unmarshal([]byte(`{"amount":null}`), &req))
		assert.Nil(t, req.Amount)
	})

	t.Run("json rejects negative and non-numeric", func(t *testing.T) {
		var a Amount
		assert.ErrorIs(t, json.Unmarshal([]byte(`-5`), &a), ErrInvalidAmount)
		assert.Error(t, json.Unmarshal([]byte(`"ten"`), &a))
	})
}
