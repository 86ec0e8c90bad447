package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyagr/payment-service/internal/models"
)

func settledPayment(status models.PaymentStatus) *models.Payment {
	return &models.Payment{
		ID:            42,
		UserID:        "u1",
		BookingType:   "hotel",
		BookingID:     "h-991",
		Amount:        10050,
		PaymentMethod: "card",
		Status:        status,
		TransactionID: "TXN-482913-1718000000.123456",
		CreatedAt:     time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC),
	}
}

func TestISOStatusCode(t *testing.T) {
	tests := []struct {
		status models.PaymentStatus
		want   string
	}{
		{models.PaymentStatusPending, "PDNG"},
		{models.PaymentStatusCompleted, "ACSC"},
		{models.PaymentStatusRefunded, "CANC"},
		{models.PaymentStatus("unknown"), "RJCT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ISOStatusCode(tt.status))
		})
	}
}

func TestISO20022Service_CreatePacs008(t *testing.T) {
	service := NewISO20022Service("", "")

	t.Run("create valid pacs008", func(t *testing.T) {
		doc, err := service.CreatePacs008(settledPayment(models.PaymentStatusCompleted))
		require.NoError(t, err)

		assert.Equal(t, "1", string(doc.GrpHdr.NbOfTxs))
		assert.Equal(t, 100.50, doc.GrpHdr.TtlIntrBkSttlmAmt.Value)
		assert.Equal(t, "USD", string(doc.GrpHdr.TtlIntrBkSttlmAmt.Ccy))
		require.Len(t, doc.CdtTrfTxInf, 1)

		tx := doc.CdtTrfTxInf[0]
		assert.Equal(t, "TXN-482913-1718000000.123456", string(*tx.PmtId.TxId))
		assert.Equal(t, "hotel:h-991", string(tx.PmtId.EndToEndId))
		assert.Equal(t, "VOYAGRXX", string(*tx.DbtrAgt.FinInstnId.BICFI))
		assert.Equal(t, "u1", string(*tx.Dbtr.Nm))
	})

	t.Run("configured currency and agent", func(t *testing.T) {
		doc, err := NewISO20022Service("EUR", "TESTDEFF").CreatePacs008(settledPayment(models.PaymentStatusCompleted))
		require.NoError(t, err)

		assert.Equal(t, "EUR", string(doc.CdtTrfTxInf[0].IntrBkSttlmAmt.Ccy))
		assert.Equal(t, "TESTDEFF", string(*doc.CdtTrfTxInf[0].CdtrAgt.FinInstnId.BICFI))
	})

	t.Run("long identifiers are capped at 35 characters", func(t *testing.T) {
		p := settledPayment(models.PaymentStatusCompleted)
		p.BookingID = strings.Repeat("x", 60)

		doc, err := service.CreatePacs008(p)
		require.NoError(t, err)
		assert.Len(t, string(doc.CdtTrfTxInf[0].PmtId.EndToEndId), 35)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		p := settledPayment(models.PaymentStatusCompleted)
		p.TransactionID = ""

		doc, err := service.CreatePacs008(p)
		assert.Error(t, err)
		assert.Nil(t, doc)
	})
}

func TestISO20022Service_CreatePacs002(t *testing.T) {
	service := NewISO20022Service("", "")

	doc, err := service.CreatePacs002(settledPayment(models.PaymentStatusRefunded), "CANC")
	require.NoError(t, err)
	require.Len(t, doc.TxInfAndSts, 1)

	assert.Equal(t, "CANC", string(*doc.TxInfAndSts[0].TxSts))
	assert.Equal(t, "TXN-482913-1718000000.123456", string(*doc.TxInfAndSts[0].OrgnlTxId))
}

func TestISO20022Service_SettlementDocuments(t *testing.T) {
	service := NewISO20022Service("", "")
	service.now = func() time.Time { return time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC) }

	t.Run("completed payment", func(t *testing.T) {
		docs, err := service.SettlementDocuments(settledPayment(models.PaymentStatusCompleted))
		require.NoError(t, err)

		assert.Equal(t, int64(42), docs.PaymentID)
		assert.Equal(t, "completed", docs.Status)
		assert.Equal(t, "ACSC", docs.ISOStatus)
		assert.True(t, strings.HasPrefix(docs.CreditTransfer, "<?xml"))
		assert.Contains(t, docs.CreditTransfer, "TXN-482913-1718000000.123456")
		assert.Contains(t, docs.StatusReport, "ACSC")
	})

	t.Run("refunded payment", func(t *testing.T) {
		docs, err := service.SettlementDocuments(settledPayment(models.PaymentStatusRefunded))
		require.NoError(t, err)

		assert.Equal(t, "CANC", docs.ISOStatus)
		assert.Contains(t, docs.StatusReport, "CANC")
	})
}

func TestISO20022Service_ConvertToXML(t *testing.T) {
	service := NewISO20022Service("", "")

	doc, err := service.CreatePacs008(settledPayment(models.PaymentStatusCompleted))
	require.NoError(t, err)

	xmlStr, err := service.ConvertToXML(doc)
	assert.NoError(t, err)
	assert.Contains(t, xmlStr, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	assert.Contains(t, xmlStr, "VOYAGRXX")
}
