package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementKind tells which ledger item produced a statement line.
type StatementKind string

const (
	StatementInvoice    StatementKind = "INVOICE"
	StatementCreditNote StatementKind = "CREDIT_NOTE"
	StatementPayment    StatementKind = "PAYMENT"
)

// StatementLine is one dated ledger transaction with the balance after it.
type StatementLine struct {
	SourceID  string          `json:"sourceID"` // Document or payment ID
	Kind      StatementKind   `json:"kind"`
	Date      time.Time       `json:"date"`
	Reference string          `json:"reference"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"` // Running balance
}

// Statement is a partner's ledger over a period with a brought-forward opening line.
type Statement struct {
	PartnerID      string          `json:"partnerID"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Transactions   []StatementLine `json:"transactions"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// PartnerSummary aggregates a partner's position.
type PartnerSummary struct {
	PartnerID     string          `json:"partnerID"`
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"` // Positive: the partner owes the business
}

// StockDirection is the way a document moves goods.
type StockDirection string

const (
	StockIn   StockDirection = "IN"
	StockOut  StockDirection = "OUT"
	StockNone StockDirection = "NONE"
)

// StockMovement is one line of a stock-moving document.
type StockMovement struct {
	MovementID  string          `json:"movementID"`
	Date        time.Time       `json:"date"`
	DocumentRef string          `json:"documentRef"`
	DocType     DocType         `json:"docType"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Direction   StockDirection  `json:"direction"`
	PartnerName string          `json:"partnerName"`
}

// PaymentProgress shows how much of a document has been settled.
type PaymentProgress struct {
	DocumentID string          `json:"documentID"`
	TotalTTC   decimal.Decimal `json:"totalTTC"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percent    decimal.Decimal `json:"percent"`
}

// CheckSummary aggregates pending checks by partner type.
type CheckSummary struct {
	PendingCount         int             `json:"pendingCount"`
	PendingClientTotal   decimal.Decimal `json:"pendingClientTotal"`
	PendingSupplierTotal decimal.Decimal `json:"pendingSupplierTotal"`
}

// ExpenseReport lists expenses of a period with their total.
type ExpenseReport struct {
	Expenses []Expense       `json:"expenses"`
	Total    decimal.Decimal `json:"total"`
}

// Dashboard gathers the headline figures and financial alerts.
type Dashboard struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	StockValue     decimal.Decimal `json:"stockValue"`
	LowStockCount  int             `json:"lowStockCount"`
	DocumentCount  int             `json:"documentCount"`
	PendingChecks  []Payment       `json:"pendingChecks"`
	UnpaidInvoices []Document      `json:"unpaidInvoices"`
}
