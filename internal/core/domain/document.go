package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocType identifies the commercial nature of a document.
type DocType string

const (
	Quote              DocType = "QUOTE"
	Invoice            DocType = "INVOICE"
	Order              DocType = "ORDER"
	Purchase           DocType = "PURCHASE"
	DeliveryNote       DocType = "DELIVERY_NOTE"
	CreditNote         DocType = "CREDIT_NOTE"          // Client credit note
	PurchaseCreditNote DocType = "PURCHASE_CREDIT_NOTE" // Supplier credit note
)

// DocStatus is the operator-set lifecycle status of a document.
type DocStatus string

const (
	StatusDraft     DocStatus = "DRAFT"
	StatusValidated DocStatus = "VALIDATED"
	StatusUnpaid    DocStatus = "UNPAID"
	StatusPaid      DocStatus = "PAID"
	StatusCancelled DocStatus = "CANCELLED"
)

// IsPosted reports whether a document with this status takes part in balance,
// statement and stock computations.
func (s DocStatus) IsPosted() bool {
	return s != StatusDraft && s != StatusCancelled
}

// LineItem is one sale or purchase line. Totals are derived from the four inputs.
type LineItem struct {
	LineID      string          `json:"lineID" validate:"required"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"` // Unit price excluding tax
	TaxRate     decimal.Decimal `json:"taxRate"`   // Percentage
	Discount    decimal.Decimal `json:"discount"`  // Percentage
	TotalHT     decimal.Decimal `json:"totalHT"`   // After discount
	TotalTTC    decimal.Decimal `json:"totalTTC"`
}

var hundred = decimal.NewFromInt(100)

// Validate checks the line inputs: quantity >= 0, discount within [0,100], tax rate >= 0.
func (l LineItem) Validate() error {
	if err := validateStruct(l); err != nil {
		return err
	}
	if l.Quantity.IsNegative() {
		return validationErrorf("quantity must not be negative for line %s", l.LineID)
	}
	if l.UnitPrice.IsNegative() {
		return validationErrorf("unit price must not be negative for line %s", l.LineID)
	}
	if l.Discount.IsNegative() || l.Discount.GreaterThan(hundred) {
		return validationErrorf("discount must be between 0 and 100 for line %s", l.LineID)
	}
	if l.TaxRate.IsNegative() {
		return validationErrorf("tax rate must not be negative for line %s", l.LineID)
	}
	return nil
}

// Document is a quote, order, invoice, delivery note, purchase or credit note.
type Document struct {
	DocumentID  string          `json:"documentID" validate:"required"` // Primary Key (e.g., UUID)
	Reference   string          `json:"reference"`
	Type        DocType         `json:"type" validate:"required,oneof=QUOTE INVOICE ORDER PURCHASE DELIVERY_NOTE CREDIT_NOTE PURCHASE_CREDIT_NOTE"`
	PartnerID   string          `json:"partnerID" validate:"required"`
	PartnerName string          `json:"partnerName"`
	Date        time.Time       `json:"date"`
	Status      DocStatus       `json:"status" validate:"required,oneof=DRAFT VALIDATED UNPAID PAID CANCELLED"`
	Items       []LineItem      `json:"items"`
	TotalHT     decimal.Decimal `json:"totalHT"`
	Tax         decimal.Decimal `json:"tax"`
	TotalTTC    decimal.Decimal `json:"totalTTC"`
}

// Validate checks the document header and every line.
func (d Document) Validate() error {
	if err := validateStruct(d); err != nil {
		return err
	}
	for _, item := range d.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SetStatus returns a copy of the document with the given status.
// Any status is reachable from any other.
func (d Document) SetStatus(status DocStatus) Document {
	d.Status = status
	return d
}

// Convert derives a new draft document of the target type from d. Partner and
// lines are carried over; identity, reference, date and status are reset.
// Amounts stay positive whatever the target type.
func (d Document) Convert(newID string, target DocType, now time.Time, draftReference string) Document {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)

	converted := d
	converted.DocumentID = newID
	converted.Type = target
	converted.Reference = draftReference
	converted.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	converted.Status = StatusDraft
	converted.Items = items
	return converted
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	d.Items = items
	return d
}
