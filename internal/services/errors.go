package services

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrRefundNotAllowed is returned for both pending and already refunded payments.
	ErrRefundNotAllowed = errors.New("only completed payments can be refunded")

	// ErrDuplicateTransactionID means the insert lost a transaction id race.
	// Nothing was persisted; the caller may retry with a fresh id.
	ErrDuplicateTransactionID = errors.New("transaction id already exists")
)
