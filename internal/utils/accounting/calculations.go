package accounting

import (
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LineTotals holds the derived amounts of a single line.
type LineTotals struct {
	TotalHT  decimal.Decimal
	TotalTTC decimal.Decimal
}

// DocTotals holds the derived amounts of a document.
type DocTotals struct {
	TotalHT  decimal.Decimal
	Tax      decimal.Decimal
	TotalTTC decimal.Decimal
}

// taxMultiplier returns 1 + taxPct/100.
func taxMultiplier(taxPct decimal.Decimal) decimal.Decimal {
	return one.Add(taxPct.Div(hundred))
}

// ComputeLine derives the tax-exclusive and tax-inclusive totals of a line.
// Inputs are not validated here; negative values pass through.
func ComputeLine(qty, unitPriceHT, discountPct, taxPct decimal.Decimal) LineTotals {
	rawTotal := qty.Mul(unitPriceHT)
	discountAmount := rawTotal.Mul(discountPct).Div(hundred)
	totalHT := rawTotal.Sub(discountAmount)
	return LineTotals{
		TotalHT:  totalHT,
		TotalTTC: totalHT.Mul(taxMultiplier(taxPct)),
	}
}

// UnitPriceFromTTC back-solves a tax-exclusive unit price from an entered
// tax-inclusive price, rounded to 2 decimals.
// A -100% rate has no inverse; the entered price is returned rounded.
func UnitPriceFromTTC(enteredTTC, taxPct decimal.Decimal) decimal.Decimal {
	multiplier := taxMultiplier(taxPct)
	if multiplier.IsZero() {
		return enteredTTC.Round(2)
	}
	return enteredTTC.Div(multiplier).Round(2)
}

// RecomputeLine returns the line with its totals derived from its inputs.
func RecomputeLine(item domain.LineItem) domain.LineItem {
	totals := ComputeLine(item.Quantity, item.UnitPrice, item.Discount, item.TaxRate)
	item.TotalHT = totals.TotalHT
	item.TotalTTC = totals.TotalTTC
	return item
}

// LineFromTTC sets the unit price from an entered tax-inclusive unit price and
// re-runs the forward computation, so rounding only happens on the unit price.
func LineFromTTC(item domain.LineItem, enteredTTC decimal.Decimal) domain.LineItem {
	item.UnitPrice = UnitPriceFromTTC(enteredTTC, item.TaxRate)
	return RecomputeLine(item)
}

// NewLine validates a line and computes its totals.
func NewLine(item domain.LineItem) (domain.LineItem, error) {
	if err := item.Validate(); err != nil {
		return domain.LineItem{}, err
	}
	return RecomputeLine(item), nil
}

// ComputeDocTotals sums line totals. Tax is derived as TTC - HT, never summed per line.
func ComputeDocTotals(lines []domain.LineItem) DocTotals {
	totalHT := decimal.Zero
	totalTTC := decimal.Zero
	for _, line := range lines {
		totalHT = totalHT.Add(line.TotalHT)
		totalTTC = totalTTC.Add(line.TotalTTC)
	}
	return DocTotals{
		TotalHT:  totalHT,
		Tax:      totalTTC.Sub(totalHT),
		TotalTTC: totalTTC,
	}
}

// RecomputeDocument recomputes every line and the document totals.
func RecomputeDocument(doc domain.Document) domain.Document {
	doc = doc.Clone()
	for i, item := range doc.Items {
		doc.Items[i] = RecomputeLine(item)
	}
	totals := ComputeDocTotals(doc.Items)
	doc.TotalHT = totals.TotalHT
	doc.Tax = totals.Tax
	doc.TotalTTC = totals.TotalTTC
	return doc
}
