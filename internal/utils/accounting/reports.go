package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPaidOn sums every payment linked to the document.
func AmountPaidOn(documentID string, payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.IsLinkedTo(documentID) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// IsFullyPaid reports whether the payments linked to doc reach its TTC total
// within tolerance.
func IsFullyPaid(doc domain.Document, payments []domain.Payment, tolerance decimal.Decimal) bool {
	return AmountPaidOn(doc.DocumentID, payments).GreaterThanOrEqual(doc.TotalTTC.Sub(tolerance))
}

// DocumentPaymentProgress reports paid, remaining (never negative) and percent
// (capped at 100) for a document.
func DocumentPaymentProgress(doc domain.Document, payments []domain.Payment) domain.PaymentProgress {
	paid := AmountPaidOn(doc.DocumentID, payments)
	remaining := decimal.Max(decimal.Zero, doc.TotalTTC.Sub(paid))
	percent := decimal.Zero
	if !doc.TotalTTC.IsZero() {
		percent = decimal.Min(hundred, paid.Div(doc.TotalTTC).Mul(hundred))
	}
	return domain.PaymentProgress{
		DocumentID: doc.DocumentID,
		TotalTTC:   doc.TotalTTC,
		Paid:       paid,
		Remaining:  remaining,
		Percent:    percent,
	}
}

func partnerTypes(partners []domain.Partner) map[string]domain.PartnerType {
	types := make(map[string]domain.PartnerType, len(partners))
	for _, p := range partners {
		types[p.PartnerID] = p.Type
	}
	return types
}

func isPendingCheck(p domain.Payment) bool {
	return p.Method == domain.MethodCheck && p.Status == domain.PaymentPending
}

// SummarizeChecks counts pending checks and totals them per partner type.
// Checks of unknown partners are counted but not totalled.
func SummarizeChecks(payments []domain.Payment, partners []domain.Partner) domain.CheckSummary {
	types := partnerTypes(partners)
	summary := domain.CheckSummary{
		PendingClientTotal:   decimal.Zero,
		PendingSupplierTotal: decimal.Zero,
	}
	for _, p := range payments {
		if !isPendingCheck(p) {
			continue
		}
		summary.PendingCount++
		switch types[p.PartnerID] {
		case domain.Client:
			summary.PendingClientTotal = summary.PendingClientTotal.Add(p.Amount)
		case domain.Supplier:
			summary.PendingSupplierTotal = summary.PendingSupplierTotal.Add(p.Amount)
		}
	}
	return summary
}

// OverdueChecks returns pending checks whose due date is before now.
func OverdueChecks(payments []domain.Payment, now time.Time) []domain.Payment {
	var overdue []domain.Payment
	for _, p := range payments {
		if isPendingCheck(p) && p.DueDate != nil && p.DueDate.Before(now) {
			overdue = append(overdue, p)
		}
	}
	return overdue
}

func checkSortDate(p domain.Payment) time.Time {
	if p.DueDate != nil {
		return *p.DueDate
	}
	return p.Date
}

// PendingChecks returns pending checks sorted by due date (payment date when
// missing), at most limit of them when limit > 0.
func PendingChecks(payments []domain.Payment, limit int) []domain.Payment {
	var pending []domain.Payment
	for _, p := range payments {
		if isPendingCheck(p) {
			pending = append(pending, p)
		}
	}
	slices.SortStableFunc(pending, func(a, b domain.Payment) int {
		return checkSortDate(a).Compare(checkSortDate(b))
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// UnpaidInvoices returns UNPAID or VALIDATED client invoices, oldest first, at
// most limit of them when limit > 0.
func UnpaidInvoices(documents []domain.Document, limit int) []domain.Document {
	var unpaid []domain.Document
	for _, d := range documents {
		if d.Type == domain.Invoice && (d.Status == domain.StatusUnpaid || d.Status == domain.StatusValidated) {
			unpaid = append(unpaid, d)
		}
	}
	slices.SortStableFunc(unpaid, func(a, b domain.Document) int {
		return a.Date.Compare(b.Date)
	})
	if limit > 0 && len(unpaid) > limit {
		unpaid = unpaid[:limit]
	}
	return unpaid
}

// dashboardAlertLimit caps the alert lists shown on the dashboard.
const dashboardAlertLimit = 5

// BuildDashboard computes the headline figures: sales (all client invoices),
// stock value at cost, low stock count and financial alerts.
func BuildDashboard(documents []domain.Document, payments []domain.Payment, products []domain.Product) domain.Dashboard {
	dashboard := domain.Dashboard{
		TotalSales:    decimal.Zero,
		StockValue:    decimal.Zero,
		DocumentCount: len(documents),
	}
	for _, d := range documents {
		if d.Type == domain.Invoice {
			dashboard.TotalSales = dashboard.TotalSales.Add(d.TotalTTC)
		}
	}
	for _, p := range products {
		dashboard.StockValue = dashboard.StockValue.Add(p.Cost.Mul(p.Stock))
		if p.IsLowStock() {
			dashboard.LowStockCount++
		}
	}
	dashboard.PendingChecks = PendingChecks(payments, dashboardAlertLimit)
	dashboard.UnpaidInvoices = UnpaidInvoices(documents, dashboardAlertLimit)
	return dashboard
}

// CashSessionHistory returns closed sessions opened within [start, end] (whole
// days), newest first.
func CashSessionHistory(sessions []domain.CashSession, start, end time.Time) []domain.CashSession {
	from := StartOfDay(start)
	to := EndOfDay(end)
	var history []domain.CashSession
	for _, s := range sessions {
		if s.Status != domain.SessionClosed || s.OpenedAt.Before(from) || s.OpenedAt.After(to) {
			continue
		}
		history = append(history, s)
	}
	slices.SortStableFunc(history, func(a, b domain.CashSession) int {
		return b.OpenedAt.Compare(a.OpenedAt)
	})
	return history
}

// ExpensesInPeriod filters expenses dated within [start, end] (whole days) and totals them.
func ExpensesInPeriod(expenses []domain.Expense, start, end time.Time) domain.ExpenseReport {
	from := StartOfDay(start)
	to := EndOfDay(end)
	report := domain.ExpenseReport{Total: decimal.Zero}
	for _, e := range expenses {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		report.Expenses = append(report.Expenses, e)
		report.Total = report.Total.Add(e.Amount)
	}
	return report
}
