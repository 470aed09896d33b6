package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost (rent, salaries, transport...). Immutable once recorded.
type Expense struct {
	ExpenseID   string          `json:"expenseID" validate:"required"`
	Date        time.Time       `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method" validate:"required,oneof=CASH CHECK TRANSFER CARD"`
	Reference   string          `json:"reference,omitempty"`
}

// NewExpense validates an expense before it is recorded.
func NewExpense(e Expense) (Expense, error) {
	if err := validateStruct(e); err != nil {
		return Expense{}, err
	}
	if !e.Amount.IsPositive() {
		return Expense{}, validationErrorf("expense amount must be positive")
	}
	return e, nil
}
