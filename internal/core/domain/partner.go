package domain

import "github.com/shopspring/decimal"

// PartnerType distinguishes customers from suppliers.
type PartnerType string

const (
	Client   PartnerType = "CLIENT"
	Supplier PartnerType = "SUPPLIER"
)

// Partner is a client or supplier owning documents and payments.
type Partner struct {
	PartnerID      string          `json:"partnerID" validate:"required"` // Primary Key (e.g., UUID)
	Name           string          `json:"name" validate:"required"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone"`
	Type           PartnerType     `json:"type" validate:"required,oneof=CLIENT SUPPLIER"`
	Address        string          `json:"address"`
	Zip            string          `json:"zip"`
	City           string          `json:"city"`
	Country        string          `json:"country"`
	TaxID          string          `json:"taxID"`          // Fiscal registration number
	InitialBalance decimal.Decimal `json:"initialBalance"` // Signed amount owed at ledger start
}

// Validate checks the partner's required fields.
func (p Partner) Validate() error {
	return validateStruct(p)
}
