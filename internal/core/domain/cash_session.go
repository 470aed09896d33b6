package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CashSessionStatus is OPEN until the drawer is counted, then CLOSED for good.
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "OPEN"
	SessionClosed CashSessionStatus = "CLOSED"
)

// CashSession accumulates cash-only flows between an opening float and a physical count.
type CashSession struct {
	SessionID      string            `json:"sessionID"`
	OpenedAt       time.Time         `json:"openedAt"`
	ClosedAt       *time.Time        `json:"closedAt,omitempty"`
	OpeningBalance decimal.Decimal   `json:"openingBalance"`           // Float placed in the drawer
	ClosingBalance *decimal.Decimal  `json:"closingBalance,omitempty"` // Theoretical balance frozen at close
	ActualBalance  *decimal.Decimal  `json:"actualBalance,omitempty"`  // Counted balance
	Difference     *decimal.Decimal  `json:"difference,omitempty"`     // Actual minus theoretical
	Status         CashSessionStatus `json:"status"`
	TotalIn        decimal.Decimal   `json:"totalIn"`
	TotalOut       decimal.Decimal   `json:"totalOut"`
}

// OpenCashSession starts a session with zero flows.
func OpenCashSession(sessionID string, openingBalance decimal.Decimal, openedAt time.Time) CashSession {
	return CashSession{
		SessionID:      sessionID,
		OpenedAt:       openedAt,
		OpeningBalance: openingBalance,
		Status:         SessionOpen,
		TotalIn:        decimal.Zero,
		TotalOut:       decimal.Zero,
	}
}

// IsOpen reports whether the session still accepts flows.
func (s CashSession) IsOpen() bool {
	return s.Status == SessionOpen
}

// RecordPayment adds a cash payment to the incoming or outgoing total.
func (s CashSession) RecordPayment(amount decimal.Decimal, incoming bool) (CashSession, error) {
	if !s.IsOpen() {
		return s, fmt.Errorf("%w: session %s", apperrors.ErrSessionClosed, s.SessionID)
	}
	if incoming {
		s.TotalIn = s.TotalIn.Add(amount)
	} else {
		s.TotalOut = s.TotalOut.Add(amount)
	}
	return s, nil
}

// RecordExpense adds a cash expense to the outgoing total.
func (s CashSession) RecordExpense(amount decimal.Decimal) (CashSession, error) {
	return s.RecordPayment(amount, false)
}

// TheoreticalBalance is opening + in - out.
func (s CashSession) TheoreticalBalance() decimal.Decimal {
	return s.OpeningBalance.Add(s.TotalIn).Sub(s.TotalOut)
}

// Close freezes the theoretical balance and records the counted amount.
func (s CashSession) Close(actualBalance decimal.Decimal, closedAt time.Time) (CashSession, error) {
	if !s.IsOpen() {
		return s, fmt.Errorf("%w: session %s", apperrors.ErrSessionClosed, s.SessionID)
	}
	theoretical := s.TheoreticalBalance()
	difference := actualBalance.Sub(theoretical)

	s.Status = SessionClosed
	s.ClosedAt = &closedAt
	s.ClosingBalance = &theoretical
	s.ActualBalance = &actualBalance
	s.Difference = &difference
	return s, nil
}
