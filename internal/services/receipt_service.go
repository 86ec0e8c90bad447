package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/voyagr/payment-service/internal/models"
)

const receiptQRSize = 256

// Receipt is the payload encoded into a payment's QR code
type Receipt struct {
	TransactionID string               `json:"transaction_id"`
	BookingType   string               `json:"booking_type"`
	BookingID     string               `json:"booking_id"`
	Amount        models.Amount        `json:"amount" swaggertype:"number"`
	Status        models.PaymentStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type ReceiptService struct{}

func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// GenerateReceipt returns the receipt and a base64 PNG QR code of it
func (s *ReceiptService) GenerateReceipt(p *models.Payment) (*Receipt, string, error) {
	receipt := &Receipt{
		TransactionID: p.TransactionID,
		BookingType:   p.BookingType,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}

	jsonData, err := json.Marshal(receipt)
	if err != nil {
		return nil, "", err
	}

	qr, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(receiptQRSize)); err != nil {
		return nil, "", err
	}

	return receipt, base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
