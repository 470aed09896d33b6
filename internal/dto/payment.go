package dto

import (
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddPaymentRequest records a settlement.
type AddPaymentRequest struct {
	Date       *time.Time           `json:"date"`
	Amount     decimal.Decimal      `json:"amount"`
	Method     domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CHECK TRANSFER CARD"`
	Nature     domain.PaymentNature `json:"nature" binding:"omitempty,oneof=PAYMENT REFUND"`
	Reference  string               `json:"reference"`
	PartnerID  string               `json:"partnerID" binding:"required"`
	DocumentID string               `json:"documentID"`
	Note       string               `json:"note"`
	DueDate    *time.Time           `json:"dueDate"`
}

// UpdatePaymentStatusRequest moves a check through its clearing states.
type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status" binding:"required,oneof=PENDING CLEARED REJECTED"`
}

// ListPaymentsResponse wraps a list of payments.
type ListPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
	Total    decimal.Decimal  `json:"total"`
}

// ToListPaymentsResponse totals the listed payments.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	resp := ListPaymentsResponse{Payments: payments, Total: decimal.Zero}
	if resp.Payments == nil {
		resp.Payments = []domain.Payment{}
	}
	for _, p := range payments {
		resp.Total = resp.Total.Add(p.Amount)
	}
	return resp
}

// AddExpenseRequest records an operating expense.
type AddExpenseRequest struct {
	Date        *time.Time           `json:"date"`
	Category    string               `json:"category" binding:"required"`
	Description string               `json:"description"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CHECK TRANSFER CARD"`
	Reference   string               `json:"reference"`
}

// OpenCashSessionRequest carries the float placed in the drawer.
type OpenCashSessionRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CloseCashSessionRequest carries the counted drawer balance.
type CloseCashSessionRequest struct {
	ActualBalance decimal.Decimal `json:"actualBalance"`
}

// CashSessionResponse adds the live theoretical balance to a session.
type CashSessionResponse struct {
	domain.CashSession
	TheoreticalBalance decimal.Decimal `json:"theoreticalBalance"`
}

// ToCashSessionResponse converts a domain.CashSession to CashSessionResponse DTO
func ToCashSessionResponse(s *domain.CashSession) CashSessionResponse {
	return CashSessionResponse{CashSession: *s, TheoreticalBalance: s.TheoreticalBalance()}
}
