package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/dto"
)

// AddPayment records a payment against a partner, optionally linked to one of its documents.
func (s *ledgerService) AddPayment(ctx context.Context, workplaceID string, req dto.AddPaymentRequest) (*domain.Payment, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	if _, ok := state.FindPartner(req.PartnerID); !ok {
		return nil, fmt.Errorf("%w: unknown partner %s", apperrors.ErrValidation, req.PartnerID)
	}
	if req.DocumentID != "" {
		doc, ok := state.FindDocument(req.DocumentID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown document %s", apperrors.ErrValidation, req.DocumentID)
		}
		if doc.PartnerID != req.PartnerID {
			return nil, fmt.Errorf("%w: document %s belongs to another partner", apperrors.ErrValidation, req.DocumentID)
		}
	}

	payment, err := domain.NewPayment(domain.Payment{
		PaymentID:  s.newID(),
		Date:       s.dateOr(req.Date),
		Amount:     req.Amount,
		Method:     req.Method,
		Nature:     req.Nature,
		Reference:  req.Reference,
		PartnerID:  req.PartnerID,
		DocumentID: req.DocumentID,
		Note:       req.Note,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.dispatch(ctx, workplaceID, engine.AddPayment{Payment: payment, PaidTolerance: s.rules.PaidTolerance}); err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes a payment. Deleting an unknown payment is a no-op and logs nothing.
func (s *ledgerService) DeletePayment(ctx context.Context, workplaceID string, paymentID string) error {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return err
	}
	if _, ok := state.FindPayment(paymentID); !ok {
		return nil
	}
	_, err = s.dispatch(ctx, workplaceID, engine.DeletePayment{PaymentID: paymentID})
	return err
}

// UpdatePaymentStatus sets the clearing status of an existing check.
func (s *ledgerService) UpdatePaymentStatus(ctx context.Context, workplaceID string, paymentID string, req dto.UpdatePaymentStatusRequest) (*domain.Payment, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	current, ok := state.FindPayment(paymentID)
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	if current.Method != domain.MethodCheck {
		return nil, fmt.Errorf("%w: only checks carry a clearing status, payment %s is %s",
			apperrors.ErrValidation, paymentID, current.Method)
	}

	next, err := s.dispatch(ctx, workplaceID, engine.UpdatePaymentStatus{PaymentID: paymentID, Status: req.Status})
	if err != nil {
		return nil, err
	}
	payment, _ := next.FindPayment(paymentID)
	return &payment, nil
}

// AddExpense records an operating expense; cash expenses leave the open drawer.
func (s *ledgerService) AddExpense(ctx context.Context, workplaceID string, req dto.AddExpenseRequest) (*domain.Expense, error) {
	expense, err := domain.NewExpense(domain.Expense{
		ExpenseID:   s.newID(),
		Date:        s.dateOr(req.Date),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Method:      req.Method,
		Reference:   req.Reference,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.dispatch(ctx, workplaceID, engine.AddExpense{Expense: expense}); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense. Deleting an unknown expense is a no-op and logs nothing.
func (s *ledgerService) DeleteExpense(ctx context.Context, workplaceID string, expenseID string) error {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return err
	}
	if _, ok := state.FindExpense(expenseID); !ok {
		return nil
	}
	_, err = s.dispatch(ctx, workplaceID, engine.DeleteExpense{ExpenseID: expenseID})
	return err
}

// OpenCashSession opens the drawer with a float. Only one session may be open at a time.
func (s *ledgerService) OpenCashSession(ctx context.Context, workplaceID string, req dto.OpenCashSessionRequest) (*domain.CashSession, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}
	event := engine.OpenCashSession{
		SessionID:      s.newID(),
		OpeningBalance: req.OpeningBalance,
		OpenedAt:       s.now(),
	}
	next, err := s.dispatch(ctx, workplaceID, event)
	if err != nil {
		return nil, err
	}
	session, _ := next.FindCashSession(event.SessionID)
	return &session, nil
}

// CloseCashSession records the counted balance and freezes the session.
func (s *ledgerService) CloseCashSession(ctx context.Context, workplaceID string, sessionID string, req dto.CloseCashSessionRequest) (*domain.CashSession, error) {
	event := engine.CloseCashSession{
		SessionID:     sessionID,
		ActualBalance: req.ActualBalance,
		ClosedAt:      s.now(),
	}
	next, err := s.dispatch(ctx, workplaceID, event)
	if err != nil {
		return nil, err
	}
	session, _ := next.FindCashSession(sessionID)
	return &session, nil
}
