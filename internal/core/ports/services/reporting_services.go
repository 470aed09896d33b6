package services

import (
	"context"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc defines operations for generating reports from a workplace's state
type ReportingSvc interface {
	// PartnerSummary returns a partner with its invoiced, credited and paid totals.
	PartnerSummary(ctx context.Context, workplaceID string, partnerID string) (*domain.Partner, *domain.PartnerSummary, error)

	// PartnerBalanceAsOf returns the partner balance at the end of the cutoff day.
	PartnerBalanceAsOf(ctx context.Context, workplaceID string, partnerID string, asOf time.Time) (decimal.Decimal, error)

	// PartnerStatement builds the partner ledger for a period of whole days.
	PartnerStatement(ctx context.Context, workplaceID string, partnerID string, from, to time.Time) (*domain.Partner, *domain.Statement, error)

	// DocumentPaymentProgress reports what was paid and what remains on a document.
	DocumentPaymentProgress(ctx context.Context, workplaceID string, documentID string) (*domain.PaymentProgress, error)

	Dashboard(ctx context.Context, workplaceID string) (*domain.Dashboard, error)

	// StockJournal lists goods movements implied by posted documents.
	StockJournal(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.StockMovement, error)

	// CheckRegister returns pending check totals, the pending checks and those overdue at now.
	CheckRegister(ctx context.Context, workplaceID string, now time.Time) (*domain.CheckSummary, []domain.Payment, []domain.Payment, error)

	// CurrentCashSession returns the open cash session.
	CurrentCashSession(ctx context.Context, workplaceID string) (*domain.CashSession, error)

	// CashSessionHistory lists closed sessions opened within the period.
	CashSessionHistory(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.CashSession, error)

	// ExpenseReport lists and totals expenses within the period.
	ExpenseReport(ctx context.Context, workplaceID string, from, to time.Time) (*domain.ExpenseReport, error)
}
