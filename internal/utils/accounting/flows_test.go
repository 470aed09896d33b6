package accounting_test

import (
	"testing"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestIsIncoming(t *testing.T) {
	tests := []struct {
		partnerType domain.PartnerType
		nature      domain.PaymentNature
		want        bool
	}{
		{domain.Client, domain.NaturePayment, true},
		{domain.Client, domain.NatureRefund, false},
		{domain.Supplier, domain.NaturePayment, false},
		{domain.Supplier, domain.NatureRefund, true},
		{domain.Client, "", true},
		{"", domain.NaturePayment, false},
		{"", domain.NatureRefund, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.partnerType)+"/"+string(tt.nature), func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.IsIncoming(tt.partnerType, tt.nature))
		})
	}
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		docType domain.DocType
		status  domain.DocStatus
		want    string
	}{
		{name: "invoice", docType: domain.Invoice, status: domain.StatusValidated, want: "100"},
		{name: "purchase", docType: domain.Purchase, status: domain.StatusPaid, want: "100"},
		{name: "credit note", docType: domain.CreditNote, status: domain.StatusUnpaid, want: "-100"},
		{name: "purchase credit note", docType: domain.PurchaseCreditNote, status: domain.StatusValidated, want: "-100"},
		{name: "quote", docType: domain.Quote, status: domain.StatusValidated, want: "0"},
		{name: "order", docType: domain.Order, status: domain.StatusValidated, want: "0"},
		{name: "delivery note", docType: domain.DeliveryNote, status: domain.StatusValidated, want: "0"},
		{name: "cancelled invoice", docType: domain.Invoice, status: domain.StatusCancelled, want: "0"},
		{name: "draft invoice", docType: domain.Invoice, status: domain.StatusDraft, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.Document{Type: tt.docType, Status: tt.status, TotalTTC: dec("100")}
			assert.True(t, accounting.CalculateSignedAmount(doc).Equal(dec(tt.want)))
		})
	}
}

func TestStockDirection(t *testing.T) {
	tests := []struct {
		docType domain.DocType
		want    domain.StockDirection
	}{
		{domain.Purchase, domain.StockIn},
		{domain.CreditNote, domain.StockIn},
		{domain.DeliveryNote, domain.StockOut},
		{domain.PurchaseCreditNote, domain.StockOut},
		{domain.Invoice, domain.StockNone},
		{domain.Quote, domain.StockNone},
		{domain.Order, domain.StockNone},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.StockDirection(tt.docType))
		})
	}
}
