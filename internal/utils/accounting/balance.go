package accounting

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// summarizePartner aggregates the partner's posted documents and payments whose
// date satisfies include.
func summarizePartner(partner domain.Partner, documents []domain.Document, payments []domain.Payment, include func(time.Time) bool) domain.PartnerSummary {
	summary := domain.PartnerSummary{
		PartnerID:     partner.PartnerID,
		TotalInvoiced: decimal.Zero,
		TotalCredits:  decimal.Zero,
		TotalPaid:     decimal.Zero,
	}

	for _, doc := range documents {
		if doc.PartnerID != partner.PartnerID || !include(doc.Date) {
			continue
		}
		// Drafts, cancelled and non-balance documents sign to zero.
		signed := CalculateSignedAmount(doc)
		if signed.IsNegative() {
			summary.TotalCredits = summary.TotalCredits.Sub(signed)
		} else {
			summary.TotalInvoiced = summary.TotalInvoiced.Add(signed)
		}
	}

	// Every payment counts as a credit whatever its nature or clearing status.
	for _, p := range payments {
		if p.PartnerID != partner.PartnerID || !include(p.Date) {
			continue
		}
		summary.TotalPaid = summary.TotalPaid.Add(p.Amount)
	}

	summary.Balance = partner.InitialBalance.
		Add(summary.TotalInvoiced).
		Sub(summary.TotalPaid.Add(summary.TotalCredits))
	return summary
}

// SummarizePartner returns invoiced, credited and paid totals with the current balance.
func SummarizePartner(partner domain.Partner, documents []domain.Document, payments []domain.Payment) domain.PartnerSummary {
	return summarizePartner(partner, documents, payments, func(time.Time) bool { return true })
}

// CurrentBalance is initialBalance + invoiced - (paid + credits). Positive means
// the partner owes the business.
func CurrentBalance(partner domain.Partner, documents []domain.Document, payments []domain.Payment) decimal.Decimal {
	return SummarizePartner(partner, documents, payments).Balance
}

// BalanceAsOf is CurrentBalance restricted to items dated on or before the end of the cutoff day.
func BalanceAsOf(partner domain.Partner, documents []domain.Document, payments []domain.Payment, cutoff time.Time) decimal.Decimal {
	limit := EndOfDay(cutoff)
	return summarizePartner(partner, documents, payments, func(d time.Time) bool {
		return !d.After(limit)
	}).Balance
}

func documentLabel(docType domain.DocType) string {
	switch docType {
	case domain.Invoice:
		return "Invoice"
	case domain.Purchase:
		return "Purchase invoice"
	case domain.CreditNote:
		return "Credit note"
	case domain.PurchaseCreditNote:
		return "Purchase credit note"
	default:
		return string(docType)
	}
}

// BuildStatement produces the partner's ledger between periodStart and periodEnd,
// both taken as whole days. The opening balance covers everything strictly before
// periodStart. Lines are sorted by date; same-date lines keep the order invoices,
// credit notes, payments.
func BuildStatement(partner domain.Partner, documents []domain.Document, payments []domain.Payment, periodStart, periodEnd time.Time) domain.Statement {
	start := StartOfDay(periodStart)
	end := EndOfDay(periodEnd)
	inPeriod := func(d time.Time) bool {
		return !d.Before(start) && !d.After(end)
	}

	opening := summarizePartner(partner, documents, payments, func(d time.Time) bool {
		return d.Before(start)
	}).Balance

	var invoices, credits, settlements []domain.StatementLine
	for _, doc := range documents {
		if doc.PartnerID != partner.PartnerID || !doc.Status.IsPosted() || !inPeriod(doc.Date) {
			continue
		}
		line := domain.StatementLine{
			SourceID:  doc.DocumentID,
			Date:      doc.Date,
			Reference: doc.Reference,
			Label:     documentLabel(doc.Type),
			Debit:     decimal.Zero,
			Credit:    decimal.Zero,
		}
		signed := CalculateSignedAmount(doc)
		switch {
		case IsDebit(doc.Type):
			line.Kind = domain.StatementInvoice
			line.Debit = signed
			invoices = append(invoices, line)
		case IsCredit(doc.Type):
			line.Kind = domain.StatementCreditNote
			line.Credit = signed.Neg()
			credits = append(credits, line)
		}
	}
	for _, p := range payments {
		if p.PartnerID != partner.PartnerID || !inPeriod(p.Date) {
			continue
		}
		ref := p.Reference
		if ref == "" {
			ref = "-"
		}
		settlements = append(settlements, domain.StatementLine{
			SourceID:  p.PaymentID,
			Kind:      domain.StatementPayment,
			Date:      p.Date,
			Reference: ref,
			Label:     fmt.Sprintf("Payment (%s)", p.Method),
			Debit:     decimal.Zero,
			Credit:    p.Amount,
		})
	}

	lines := make([]domain.StatementLine, 0, len(invoices)+len(credits)+len(settlements))
	lines = append(lines, invoices...)
	lines = append(lines, credits...)
	lines = append(lines, settlements...)
	slices.SortStableFunc(lines, func(a, b domain.StatementLine) int {
		return a.Date.Compare(b.Date)
	})

	statement := domain.Statement{
		PartnerID:      partner.PartnerID,
		PeriodStart:    start,
		PeriodEnd:      end,
		OpeningBalance: opening,
		Transactions:   lines,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
	}
	running := opening
	for i := range lines {
		running = running.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].Balance = running
		statement.TotalDebit = statement.TotalDebit.Add(lines[i].Debit)
		statement.TotalCredit = statement.TotalCredit.Add(lines[i].Credit)
	}
	statement.ClosingBalance = running
	return statement
}
