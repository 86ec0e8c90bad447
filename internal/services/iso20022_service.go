package services

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moov-io/iso20022/pkg/common"
	"github.com/moov-io/iso20022/pkg/pacs_v08"
	"github.com/voyagr/payment-service/internal/models"
)

const (
	DefaultSettlementCurrency = "USD"
	DefaultSettlementAgentBIC = "VOYAGRXX"

	MessageTypeCreditTransfer = "pacs.008.001.08"
	MessageTypeStatusReport   = "pacs.002.001.08"
)

// SettlementDocuments is the ISO 20022 view of a single payment
type SettlementDocuments struct {
	PaymentID      int64  `json:"payment_id"`
	TransactionID  string `json:"transaction_id"`
	Status         string `json:"status"`
	ISOStatus      string `json:"iso_status"`
	CreditTransfer string `json:"credit_transfer"`
	StatusReport   string `json:"status_report"`
}

// ISO20022Service renders payments as pacs messages for the settlement export
type ISO20022Service struct {
	currency string
	agentBIC string
	now      func() time.Time
}

func NewISO20022Service(currency, agentBIC string) *ISO20022Service {
	if currency == "" {
		currency = DefaultSettlementCurrency
	}
	if agentBIC == "" {
		agentBIC = DefaultSettlementAgentBIC
	}
	return &ISO20022Service{
		currency: currency,
		agentBIC: agentBIC,
		now:      time.Now,
	}
}

// ISOStatusCode maps a payment status to an ExternalPaymentTransactionStatus1Code
func ISOStatusCode(status models.PaymentStatus) string {
	switch status {
	case models.PaymentStatusPending:
		return "PDNG"
	case models.PaymentStatusCompleted:
		return "ACSC"
	case models.PaymentStatusRefunded:
		return "CANC"
	}
	return "RJCT"
}

func (iso *ISO20022Service) SettlementDocuments(p *models.Payment) (*SettlementDocuments, error) {
	pacs008, err := iso.CreatePacs008(p)
	if err != nil {
		return nil, err
	}
	creditTransfer, err := iso.ConvertToXML(pacs008)
	if err != nil {
		return nil, err
	}

	status := ISOStatusCode(p.Status)
	pacs002, err := iso.CreatePacs002(p, status)
	if err != nil {
		return nil, err
	}
	statusReport, err := iso.ConvertToXML(pacs002)
	if err != nil {
		return nil, err
	}

	return &SettlementDocuments{
		PaymentID:      p.ID,
		TransactionID:  p.TransactionID,
		Status:         string(p.Status),
		ISOStatus:      status,
		CreditTransfer: creditTransfer,
		StatusReport:   statusReport,
	}, nil
}

// CreatePacs008 creates a pacs.008 FIToFICustomerCreditTransfer message
func (iso *ISO20022Service) CreatePacs008(p *models.Payment) (*pacs_v08.FIToFICustomerCreditTransferV08, error) {
	if p.TransactionID == "" {
		return nil, fmt.Errorf("payment %d has no transaction id", p.ID)
	}

	msgId := uuid.New().String()
	creDtTm := iso.now()
	settlementDate := p.CreatedAt
	// Max35Text caps identifiers, transaction ids can be longer
	txID := truncate35(p.TransactionID)
	endToEnd := truncate35(p.BookingType + ":" + p.BookingID)

	doc := &pacs_v08.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs_v08.GroupHeader93{
			MsgId:   common.Max35Text(truncate35(msgId)),
			CreDtTm: common.ISODateTime(creDtTm),
			NbOfTxs: "1",
			TtlIntrBkSttlmAmt: &pacs_v08.ActiveCurrencyAndAmount{
				Ccy:   common.ActiveCurrencyCode(iso.currency),
				Value: p.Amount.Float64(),
			},
			IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
			SttlmInf: pacs_v08.SettlementInstruction7{
				SttlmMtd: "CLRG", // Clearing
			},
		},
		CdtTrfTxInf: []pacs_v08.CreditTransferTransaction39{
			{
				PmtId: pacs_v08.PaymentIdentification7{
					InstrId:    &[]common.Max35Text{common.Max35Text(txID)}[0],
					EndToEndId: common.Max35Text(endToEnd),
					TxId:       &[]common.Max35Text{common.Max35Text(txID)}[0],
				},
				IntrBkSttlmAmt: pacs_v08.ActiveCurrencyAndAmount{
					Ccy:   common.ActiveCurrencyCode(iso.currency),
					Value: p.Amount.Float64(),
				},
				IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
				ChrgBr:        "SLEV",
				DbtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(iso.agentBIC)}[0],
					},
				},
				Dbtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(p.UserID)}[0],
				},
				CdtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(iso.agentBIC)}[0],
					},
				},
				Cdtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(p.BookingType + "/" + p.BookingID)}[0],
				},
			},
		},
	}

	return doc, nil
}

// CreatePacs002 creates a pacs.002 payment status report
func (iso *ISO20022Service) CreatePacs002(p *models.Payment, status string) (*pacs_v08.FIToFIPaymentStatusReportV08, error) {
	msgId := uuid.New().String()
	creDtTm := iso.now()
	txID := truncate35(p.TransactionID)
	endToEnd := truncate35(p.BookingType + ":" + p.BookingID)

	doc := &pacs_v08.FIToFIPaymentStatusReportV08{
		GrpHdr: pacs_v08.GroupHeader53{
			MsgId:   common.Max35Text(truncate35(msgId)),
			CreDtTm: common.ISODateTime(creDtTm),
		},
		TxInfAndSts: []pacs_v08.PaymentTransaction80{
			{
				OrgnlInstrId:    &[]common.Max35Text{common.Max35Text(txID)}[0],
				OrgnlEndToEndId: &[]common.Max35Text{common.Max35Text(endToEnd)}[0],
				OrgnlTxId:       &[]common.Max35Text{common.Max35Text(txID)}[0],
				TxSts:           &[]pacs_v08.ExternalPaymentTransactionStatus1Code{pacs_v08.ExternalPaymentTransactionStatus1Code(status)}[0],
			},
		},
	}

	return doc, nil
}

// ConvertToXML converts ISO20022 document to XML string
func (iso *ISO20022Service) ConvertToXML(doc interface{}) (string, error) {
	xmlData, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(xmlData), nil
}

func truncate35(s string) string {
	if len(s) > 35 {
		return s[:35]
	}
	return s
}
