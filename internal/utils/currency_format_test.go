package utils_test

import (
	"testing"

	"github.com/SscSPs/trade_ledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{name: "euro", amount: "1440", currency: "EUR", want: "1440.00 €"},
		{name: "dollar lower case", amount: "12.345", currency: "usd", want: "12.35 $"},
		{name: "dinar", amount: "-5", currency: "TND", want: "-5.00 TND"},
		{name: "unknown falls back to dinar", amount: "0.1", currency: "GBP", want: "0.10 TND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "7.500", utils.FormatWithPrecision(decimal.RequireFromString("7.5"), 3))
}
