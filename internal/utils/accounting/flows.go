package accounting

import (
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IsIncoming decides whether a payment brings cash in.
//
//	CLIENT   + PAYMENT -> in
//	CLIENT   + REFUND  -> out
//	SUPPLIER + PAYMENT -> out
//	SUPPLIER + REFUND  -> in
//
// An unknown partner type follows the supplier rule. An empty nature counts as PAYMENT.
func IsIncoming(partnerType domain.PartnerType, nature domain.PaymentNature) bool {
	if nature == "" {
		nature = domain.NaturePayment
	}
	if partnerType == domain.Client {
		return nature == domain.NaturePayment
	}
	return nature == domain.NatureRefund
}

// IsDebit reports whether a document type increases what the partner owes.
func IsDebit(docType domain.DocType) bool {
	switch docType {
	case domain.Invoice, domain.Purchase:
		return true
	default:
		return false
	}
}

// IsCredit reports whether a document type decreases what the partner owes.
func IsCredit(docType domain.DocType) bool {
	switch docType {
	case domain.CreditNote, domain.PurchaseCreditNote:
		return true
	default:
		return false
	}
}

// CalculateSignedAmount applies the ledger sign to a posted document's TTC total:
// positive for debits, negative for credits, zero for documents that never reach
// the balance (quotes, orders, delivery notes) and for drafts or cancelled documents.
func CalculateSignedAmount(doc domain.Document) decimal.Decimal {
	if !doc.Status.IsPosted() {
		return decimal.Zero
	}
	switch {
	case IsDebit(doc.Type):
		return doc.TotalTTC
	case IsCredit(doc.Type):
		return doc.TotalTTC.Neg()
	default:
		return decimal.Zero
	}
}

// StockDirection tells how a document type moves goods. Invoices do not move
// stock; delivery notes do.
func StockDirection(docType domain.DocType) domain.StockDirection {
	switch docType {
	case domain.Purchase, domain.CreditNote:
		return domain.StockIn
	case domain.DeliveryNote, domain.PurchaseCreditNote:
		return domain.StockOut
	default:
		return domain.StockNone
	}
}
