package dto

import (
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// SavePartnerRequest creates a partner, or replaces it when PartnerID is set.
type SavePartnerRequest struct {
	PartnerID      string             `json:"partnerID"`
	Name           string             `json:"name" binding:"required"`
	Email          string             `json:"email" binding:"omitempty,email"`
	Phone          string             `json:"phone"`
	Type           domain.PartnerType `json:"type" binding:"required,oneof=CLIENT SUPPLIER"`
	Address        string             `json:"address"`
	Zip            string             `json:"zip"`
	City           string             `json:"city"`
	Country        string             `json:"country"`
	TaxID          string             `json:"taxID"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

// PartnerBalanceResponse is a partner with its running totals.
type PartnerBalanceResponse struct {
	Partner domain.Partner        `json:"partner"`
	Summary domain.PartnerSummary `json:"summary"`
	Label   string                `json:"balanceLabel"`
}

// ListPartnersResponse wraps a list of partners.
type ListPartnersResponse struct {
	Partners []domain.Partner `json:"partners"`
}

// BalanceLabel describes a balance for display: a positive balance is owed by
// the partner, a negative one is owed to it.
func BalanceLabel(balance decimal.Decimal, currency string) string {
	switch balance.Sign() {
	case 1:
		return "Debtor " + utils.FormatAmount(balance, currency)
	case -1:
		return "Creditor " + utils.FormatAmount(balance.Abs(), currency)
	default:
		return "Settled"
	}
}

// ToPartnerBalanceResponse combines a partner, its summary and a display label.
func ToPartnerBalanceResponse(partner *domain.Partner, summary *domain.PartnerSummary, currency string) PartnerBalanceResponse {
	return PartnerBalanceResponse{
		Partner: *partner,
		Summary: *summary,
		Label:   BalanceLabel(summary.Balance, currency),
	}
}
