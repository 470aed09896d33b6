package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDocStatus_IsPosted(t *testing.T) {
	tests := []struct {
		status domain.DocStatus
		want   bool
	}{
		{domain.StatusDraft, false},
		{domain.StatusValidated, true},
		{domain.StatusUnpaid, true},
		{domain.StatusPaid, true},
		{domain.StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsPosted())
		})
	}
}

func TestLineItem_Validate(t *testing.T) {
	valid := domain.LineItem{LineID: "l1", Quantity: dec("2"), UnitPrice: dec("10"), TaxRate: dec("20"), Discount: dec("5")}

	tests := []struct {
		name    string
		mutate  func(l *domain.LineItem)
		wantErr bool
	}{
		{name: "valid line", mutate: func(l *domain.LineItem) {}},
		{name: "zero quantity allowed", mutate: func(l *domain.LineItem) { l.Quantity = dec("0") }},
		{name: "full discount allowed", mutate: func(l *domain.LineItem) { l.Discount = dec("100") }},
		{name: "missing line ID", mutate: func(l *domain.LineItem) { l.LineID = "" }, wantErr: true},
		{name: "negative quantity", mutate: func(l *domain.LineItem) { l.Quantity = dec("-1") }, wantErr: true},
		{name: "negative unit price", mutate: func(l *domain.LineItem) { l.UnitPrice = dec("-0.01") }, wantErr: true},
		{name: "discount above 100", mutate: func(l *domain.LineItem) { l.Discount = dec("100.5") }, wantErr: true},
		{name: "negative discount", mutate: func(l *domain.LineItem) { l.Discount = dec("-1") }, wantErr: true},
		{name: "negative tax rate", mutate: func(l *domain.LineItem) { l.TaxRate = dec("-20") }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := valid
			tt.mutate(&line)
			err := line.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocument_Validate(t *testing.T) {
	doc := domain.Document{DocumentID: "d1", Type: domain.Invoice, PartnerID: "c1", Status: domain.StatusDraft}
	assert.NoError(t, doc.Validate())

	unknownType := doc
	unknownType.Type = "RECEIPT"
	assert.ErrorIs(t, unknownType.Validate(), apperrors.ErrValidation)

	badLine := doc
	badLine.Items = []domain.LineItem{{LineID: "l1", Quantity: dec("-2")}}
	assert.ErrorIs(t, badLine.Validate(), apperrors.ErrValidation)
}

func TestDocument_Convert(t *testing.T) {
	source := domain.Document{
		DocumentID: "d1",
		Reference:  "FAC-2024-001",
		Type:       domain.Invoice,
		PartnerID:  "c1",
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusPaid,
		Items:      []domain.LineItem{{LineID: "l1", Quantity: dec("12"), UnitPrice: dec("100"), TaxRate: dec("20")}},
		TotalTTC:   dec("1440"),
	}
	now := time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC)

	converted := source.Convert("d2", domain.CreditNote, now, "BROUILLON")

	assert.Equal(t, "d2", converted.DocumentID)
	assert.Equal(t, domain.CreditNote, converted.Type)
	assert.Equal(t, "BROUILLON", converted.Reference)
	assert.Equal(t, domain.StatusDraft, converted.Status)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), converted.Date)
	assert.Equal(t, "c1", converted.PartnerID)
	assert.True(t, converted.TotalTTC.Equal(dec("1440")))

	// lines are copied, not shared
	converted.Items[0].Quantity = dec("1")
	assert.True(t, source.Items[0].Quantity.Equal(dec("12")))
}

func TestDocument_CloneAndSetStatus(t *testing.T) {
	doc := domain.Document{DocumentID: "d1", Status: domain.StatusDraft, Items: []domain.LineItem{{LineID: "l1"}}}

	clone := doc.Clone()
	clone.Items[0].LineID = "changed"
	assert.Equal(t, "l1", doc.Items[0].LineID)

	cancelled := doc.SetStatus(domain.StatusCancelled)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, domain.StatusDraft, doc.Status)
	assert.Equal(t, domain.StatusDraft, cancelled.SetStatus(domain.StatusDraft).Status)
}
