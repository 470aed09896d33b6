package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvc interface on top of ledger snapshots
type reportingService struct {
	BaseService
	ledgerReader portssvc.LedgerReaderSvc
}

// NewReportingService creates a new reporting service reading state from ledgerReader
func NewReportingService(ledgerReader portssvc.LedgerReaderSvc) portssvc.ReportingSvc {
	return &reportingService{
		ledgerReader: ledgerReader,
	}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) state(ctx context.Context, workplaceID string) (*engine.State, error) {
	state, err := s.ledgerReader.GetState(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplace state", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return state, nil
}

func (s *reportingService) partner(ctx context.Context, workplaceID string, partnerID string) (*engine.State, domain.Partner, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, domain.Partner{}, err
	}
	partner, ok := state.FindPartner(partnerID)
	if !ok {
		return nil, domain.Partner{}, fmt.Errorf("%w: partner %s", apperrors.ErrNotFound, partnerID)
	}
	return state, partner, nil
}

// PartnerSummary returns the partner with its invoiced, credited and paid totals.
func (s *reportingService) PartnerSummary(ctx context.Context, workplaceID string, partnerID string) (*domain.Partner, *domain.PartnerSummary, error) {
	state, partner, err := s.partner(ctx, workplaceID, partnerID)
	if err != nil {
		return nil, nil, err
	}
	summary := accounting.SummarizePartner(partner, state.Documents, state.Payments)
	return &partner, &summary, nil
}

// PartnerBalanceAsOf returns the partner balance at the end of the cutoff day.
func (s *reportingService) PartnerBalanceAsOf(ctx context.Context, workplaceID string, partnerID string, asOf time.Time) (decimal.Decimal, error) {
	state, partner, err := s.partner(ctx, workplaceID, partnerID)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.BalanceAsOf(partner, state.Documents, state.Payments, asOf), nil
}

// PartnerStatement builds the partner ledger between from and to, both inclusive.
func (s *reportingService) PartnerStatement(ctx context.Context, workplaceID string, partnerID string, from, to time.Time) (*domain.Partner, *domain.Statement, error) {
	if to.Before(from) {
		return nil, nil, fmt.Errorf("%w: statement end %s is before start %s",
			apperrors.ErrValidation, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	state, partner, err := s.partner(ctx, workplaceID, partnerID)
	if err != nil {
		return nil, nil, err
	}
	statement := accounting.BuildStatement(partner, state.Documents, state.Payments, from, to)
	s.LogDebug(ctx, "Statement built",
		slog.String("partner_id", partnerID),
		slog.Int("line_count", len(statement.Transactions)),
		slog.String("closing_balance", statement.ClosingBalance.String()))
	return &partner, &statement, nil
}

// DocumentPaymentProgress reports what was paid and what remains on a document.
func (s *reportingService) DocumentPaymentProgress(ctx context.Context, workplaceID string, documentID string) (*domain.PaymentProgress, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	doc, ok := state.FindDocument(documentID)
	if !ok {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	progress := accounting.DocumentPaymentProgress(doc, state.Payments)
	return &progress, nil
}

// Dashboard computes the headline figures of the workplace.
func (s *reportingService) Dashboard(ctx context.Context, workplaceID string) (*domain.Dashboard, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	dashboard := accounting.BuildDashboard(state.Documents, state.Payments, state.Products)
	return &dashboard, nil
}

// StockJournal lists goods movements implied by posted documents within the period.
func (s *reportingService) StockJournal(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.StockMovement, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	moves := accounting.StockMovements(state.Documents, from, to)
	if moves == nil {
		moves = []domain.StockMovement{}
	}
	return moves, nil
}

// CheckRegister returns pending check totals, pending checks by due date and those overdue at now.
func (s *reportingService) CheckRegister(ctx context.Context, workplaceID string, now time.Time) (*domain.CheckSummary, []domain.Payment, []domain.Payment, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, nil, nil, err
	}
	summary := accounting.SummarizeChecks(state.Payments, state.Partners)
	pending := accounting.PendingChecks(state.Payments, 0)
	overdue := accounting.OverdueChecks(state.Payments, now)
	return &summary, pending, overdue, nil
}

// CurrentCashSession returns the open cash session.
func (s *reportingService) CurrentCashSession(ctx context.Context, workplaceID string) (*domain.CashSession, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	session, ok := state.OpenSession()
	if !ok {
		return nil, fmt.Errorf("%w: no open cash session", apperrors.ErrNotFound)
	}
	return &session, nil
}

// CashSessionHistory lists closed sessions opened within the period, newest first.
func (s *reportingService) CashSessionHistory(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.CashSession, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	history := accounting.CashSessionHistory(state.CashSessions, from, to)
	if history == nil {
		history = []domain.CashSession{}
	}
	return history, nil
}

// ExpenseReport lists and totals expenses within the period.
func (s *reportingService) ExpenseReport(ctx context.Context, workplaceID string, from, to time.Time) (*domain.ExpenseReport, error) {
	state, err := s.state(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	report := accounting.ExpensesInPeriod(state.Expenses, from, to)
	if report.Expenses == nil {
		report.Expenses = []domain.Expense{}
	}
	return &report, nil
}
