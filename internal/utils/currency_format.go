package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol maps a currency code to the symbol shown next to amounts.
// Anything other than EUR or USD is displayed as TND.
func CurrencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	default:
		return "TND"
	}
}

// FormatAmount renders an amount with two decimals followed by the currency symbol.
// Example: 1440 in EUR returns "1440.00 €"
func FormatAmount(amount decimal.Decimal, currency string) string {
	return FormatWithPrecision(amount, 2) + " " + CurrencySymbol(currency)
}

// FormatWithPrecision rounds an amount to precision decimals and keeps trailing zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
