package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/voyagr/payment-service/internal/models"
	"github.com/voyagr/payment-service/internal/services"
)

const refundMessage = "Payment refunded successfully"

// Ledger is the part of services.PaymentLedger the HTTP layer calls
type Ledger interface {
	Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error)
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Payment, error)
	Refund(ctx context.Context, id int64) (*models.Payment, error)
}

type PaymentHandler struct {
	ledger     Ledger
	receipts   *services.ReceiptService
	settlement *services.ISO20022Service
	validator  *services.ValidationHelper
}

func NewPaymentHandler(ledger Ledger, receipts *services.ReceiptService, settlement *services.ISO20022Service) *PaymentHandler {
	return &PaymentHandler{
		ledger:     ledger,
		receipts:   receipts,
		settlement: settlement,
		validator:  services.NewValidationHelper(),
	}
}

// CreatePayment records a new payment
// @Summary Create a payment
// @Description Record a payment against a booking. Authorization is simulated and always succeeds.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.CreatePaymentRequest true "Payment intent"
// @Success 201 {object} object{success=bool,data=models.Payment}
// @Failure 400 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	payment, err := h.ledger.Create(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    payment,
	})
}

// GetPayment retrieves a payment by its internal id
// @Summary Get payment by ID
// @Tags payments
// @Produce json
// @Param paymentId path int true "Payment ID"
// @Success 200 {object} object{success=bool,data=models.Payment}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /payments/{paymentId} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentIDParam(w, r)
	if !ok {
		return
	}

	payment, err := h.ledger.GetByID(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    payment,
	})
}

// GetPaymentByTransaction retrieves a payment by its transaction id
// @Summary Get payment by transaction ID
// @Tags payments
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} object{success=bool,data=models.Payment}
// @Failure 404 {object} services.ErrorResponse
// @Router /payments/transaction/{transactionId} [get]
func (h *PaymentHandler) GetPaymentByTransaction(w http.ResponseWriter, r *http.Request) {
	payment, err := h.ledger.GetByTransactionID(r.Context(), chi.URLParam(r, "transactionId"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    payment,
	})
}

// ListUserPayments lists a user's payments oldest first
// @Summary List payments for a user
// @Tags payments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} object{success=bool,data=[]models.Payment}
// @Failure 500 {object} services.ErrorResponse
// @Router /payments/user/{userId} [get]
func (h *PaymentHandler) ListUserPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.ledger.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    payments,
	})
}

// RefundPayment refunds a completed payment
// @Summary Refund a payment
// @Description Only completed payments can be refunded
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param paymentId path int true "Payment ID"
// @Success 200 {object} object{success=bool,data=models.RefundResult}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /payments/{paymentId}/refund [patch]
func (h *PaymentHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentIDParam(w, r)
	if !ok {
		return
	}

	payment, err := h.ledger.Refund(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": models.RefundResult{
			ID:      payment.ID,
			Status:  payment.Status,
			Message: refundMessage,
		},
	})
}

// GetReceipt returns a QR receipt for a payment
// @Summary Get payment receipt
// @Tags receipts
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} object{success=bool,receipt=services.Receipt,qrImage=string}
// @Failure 404 {object} services.ErrorResponse
// @Router /payments/transaction/{transactionId}/receipt [get]
func (h *PaymentHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	payment, err := h.ledger.GetByTransactionID(r.Context(), chi.URLParam(r, "transactionId"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	receipt, qrImage, err := h.receipts.GenerateReceipt(payment)
	if err != nil {
		log.Printf("[RECEIPT] Failed to render receipt for %s: %v", payment.TransactionID, err)
		services.SendErrorResponse(w, "Failed to generate receipt", http.StatusInternalServerError, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"receipt": receipt,
		"qrImage": qrImage,
	})
}

// GetSettlement returns ISO 20022 settlement documents for a payment
// @Summary Get settlement documents
// @Tags iso20022
// @Produce json
// @Param paymentId path int true "Payment ID"
// @Success 200 {object} object{success=bool,data=services.SettlementDocuments}
// @Failure 404 {object} services.ErrorResponse
// @Router /payments/{paymentId}/settlement [get]
func (h *PaymentHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentIDParam(w, r)
	if !ok {
		return
	}

	payment, err := h.ledger.GetByID(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	docs, err := h.settlement.SettlementDocuments(payment)
	if err != nil {
		log.Printf("[SETTLEMENT] Failed to build documents for payment %d: %v", id, err)
		services.SendErrorResponse(w, "Failed to build settlement documents", http.StatusInternalServerError, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    docs,
	})
}

func paymentIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "paymentId"), 10, 64)
	if err != nil || id <= 0 {
		services.SendErrorResponse(w, "Invalid payment id", http.StatusBadRequest, nil)
		return 0, false
	}
	return id, true
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
	case errors.Is(err, services.ErrPaymentNotFound):
		services.SendErrorResponse(w, "Payment not found", http.StatusNotFound, nil)
	case errors.Is(err, services.ErrRefundNotAllowed):
		services.SendErrorResponse(w, "Only completed payments can be refunded", http.StatusConflict, nil)
	case errors.Is(err, services.ErrDuplicateTransactionID):
		services.SendRetryableError(w, "Transaction id conflict, please retry", http.StatusConflict)
	default:
		log.Printf("[PAYMENT] Request failed: %v", err)
		services.SendErrorResponse(w, "Failed to process payment request", http.StatusInternalServerError, nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
