package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how money changed hands.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCheck    PaymentMethod = "CHECK"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCard     PaymentMethod = "CARD"
)

// PaymentNature distinguishes a normal settlement from a reversal.
type PaymentNature string

const (
	NaturePayment PaymentNature = "PAYMENT" // Collection from a client, disbursement to a supplier
	NatureRefund  PaymentNature = "REFUND"  // Money back to a client, money back from a supplier
)

// PaymentStatus tracks the clearing of checks.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentCleared  PaymentStatus = "CLEARED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// Payment is a settlement recorded against a partner, optionally tied to one document.
type Payment struct {
	PaymentID  string          `json:"paymentID" validate:"required"` // Primary Key (e.g., UUID)
	Date       time.Time       `json:"date" validate:"required"`
	Amount     decimal.Decimal `json:"amount"` // Strictly positive
	Method     PaymentMethod   `json:"method" validate:"required,oneof=CASH CHECK TRANSFER CARD"`
	Nature     PaymentNature   `json:"nature" validate:"required,oneof=PAYMENT REFUND"`
	Reference  string          `json:"reference"` // Check or transfer number
	PartnerID  string          `json:"partnerID" validate:"required"`
	DocumentID string          `json:"documentID,omitempty"` // Empty when not tied to a document
	Note       string          `json:"note,omitempty"`
	DueDate    *time.Time      `json:"dueDate,omitempty"` // Checks only
	Status     PaymentStatus   `json:"status" validate:"required,oneof=PENDING CLEARED REJECTED"`
}

// NewPayment fills the defaults of a freshly recorded payment and validates it.
// Nature defaults to PAYMENT; checks start PENDING, every other method CLEARED.
func NewPayment(p Payment) (Payment, error) {
	if p.Nature == "" {
		p.Nature = NaturePayment
	}
	if p.Method == MethodCheck {
		p.Status = PaymentPending
	} else {
		p.Status = PaymentCleared
		p.DueDate = nil
	}
	if err := p.Validate(); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// Validate checks the payment invariants.
func (p Payment) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return validationErrorf("payment amount must be positive")
	}
	if p.Method == MethodCheck && p.DueDate == nil {
		return validationErrorf("due date is required for check payments")
	}
	return nil
}

// IsLinkedTo reports whether the payment settles the given document.
func (p Payment) IsLinkedTo(documentID string) bool {
	return p.DocumentID != "" && p.DocumentID == documentID
}
