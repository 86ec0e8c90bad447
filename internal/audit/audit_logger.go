package audit

import (
	"encoding/json"
	"log"
	"time"
)

type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     string    `json:"event_type"`
	PaymentID     int64     `json:"payment_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Details       any       `json:"details,omitempty"`
}

// Logger records ledger mutations
type Logger interface {
	LogPayment(paymentID int64, transactionID, userID string, amount int64, status string)
	LogRefund(paymentID int64, transactionID, userID string, amount int64)
	LogError(operation, reference string, err error)
}

type AuditLogger struct {
	logger *log.Logger
}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{logger: log.Default()}
}

// NewAuditLoggerWith writes events to l instead of the default logger
func NewAuditLoggerWith(l *log.Logger) *AuditLogger {
	return &AuditLogger{logger: l}
}

func (a *AuditLogger) LogPayment(paymentID int64, transactionID, userID string, amount int64, status string) {
	a.log(Event{
		Timestamp:     time.Now(),
		EventType:     "PAYMENT",
		PaymentID:     paymentID,
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        amount,
		Status:        status,
	})
}

func (a *AuditLogger) LogRefund(paymentID int64, transactionID, userID string, amount int64) {
	a.log(Event{
		Timestamp:     time.Now(),
		EventType:     "REFUND",
		PaymentID:     paymentID,
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        amount,
		Status:        "SUCCESS",
	})
}

func (a *AuditLogger) LogError(operation, reference string, err error) {
	a.log(Event{
		Timestamp: time.Now(),
		EventType: "ERROR",
		Status:    "FAILED",
		Details: map[string]string{
			"operation": operation,
			"reference": reference,
			"error":     err.Error(),
		},
	})
}

func (a *AuditLogger) log(event Event) {
	data, _ := json.Marshal(event)
	a.logger.Printf("AUDIT: %s", string(data))
}
