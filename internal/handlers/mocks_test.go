package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

// result unpacks a (pointer, error) mock return.
func result[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// list unpacks a (slice, error) mock return.
func list[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockLedgerService) Warmup(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockLedgerService) GetState(ctx context.Context, workplaceID string) (*engine.State, error) {
	return result[engine.State](m.Called(ctx, workplaceID))
}
func (m *MockLedgerService) GetDocument(ctx context.Context, workplaceID string, documentID string) (*domain.Document, error) {
	return result[domain.Document](m.Called(ctx, workplaceID, documentID))
}
func (m *MockLedgerService) ListDocuments(ctx context.Context, workplaceID string, docType domain.DocType) ([]domain.Document, error) {
	return list[domain.Document](m.Called(ctx, workplaceID, docType))
}
func (m *MockLedgerService) ListPayments(ctx context.Context, workplaceID string, partnerID string, documentID string) ([]domain.Payment, error) {
	return list[domain.Payment](m.Called(ctx, workplaceID, partnerID, documentID))
}
func (m *MockLedgerService) ListProducts(ctx context.Context, workplaceID string) ([]domain.Product, error) {
	return list[domain.Product](m.Called(ctx, workplaceID))
}
func (m *MockLedgerService) FindUserByEmail(ctx context.Context, workplaceID string, email string) (*domain.User, error) {
	return result[domain.User](m.Called(ctx, workplaceID, email))
}
func (m *MockLedgerService) PreviewDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error) {
	return result[domain.Document](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) ListEvents(ctx context.Context, workplaceID string, afterSequence int64, limit int) ([]domain.EventRecord, int64, error) {
	args := m.Called(ctx, workplaceID, afterSequence, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EventRecord), args.Get(1).(int64), args.Error(2)
}
func (m *MockLedgerService) SaveDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error) {
	return result[domain.Document](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) ConvertDocument(ctx context.Context, workplaceID string, documentID string, req dto.ConvertDocumentRequest) (*domain.Document, error) {
	return result[domain.Document](m.Called(ctx, workplaceID, documentID, req))
}
func (m *MockLedgerService) UpdateDocumentStatus(ctx context.Context, workplaceID string, documentID string, req dto.UpdateDocumentStatusRequest) (*domain.Document, error) {
	return result[domain.Document](m.Called(ctx, workplaceID, documentID, req))
}
func (m *MockLedgerService) SavePartner(ctx context.Context, workplaceID string, req dto.SavePartnerRequest) (*domain.Partner, error) {
	return result[domain.Partner](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) DeletePartner(ctx context.Context, workplaceID string, partnerID string) error {
	return m.Called(ctx, workplaceID, partnerID).Error(0)
}
func (m *MockLedgerService) SaveProduct(ctx context.Context, workplaceID string, req dto.SaveProductRequest) (*domain.Product, error) {
	return result[domain.Product](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) CreateFamily(ctx context.Context, workplaceID string, req dto.NameRequest) (*domain.ProductFamily, error) {
	return result[domain.ProductFamily](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) RenameFamily(ctx context.Context, workplaceID string, familyID string, req dto.NameRequest) (*domain.ProductFamily, error) {
	return result[domain.ProductFamily](m.Called(ctx, workplaceID, familyID, req))
}
func (m *MockLedgerService) CreateCategory(ctx context.Context, workplaceID string, req dto.CreateCategoryRequest) (*domain.ProductCategory, error) {
	return result[domain.ProductCategory](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) RenameCategory(ctx context.Context, workplaceID string, categoryID string, req dto.NameRequest) (*domain.ProductCategory, error) {
	return result[domain.ProductCategory](m.Called(ctx, workplaceID, categoryID, req))
}
func (m *MockLedgerService) CreateSubCategory(ctx context.Context, workplaceID string, req dto.CreateSubCategoryRequest) (*domain.ProductSubCategory, error) {
	return result[domain.ProductSubCategory](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) RenameSubCategory(ctx context.Context, workplaceID string, subCategoryID string, req dto.NameRequest) (*domain.ProductSubCategory, error) {
	return result[domain.ProductSubCategory](m.Called(ctx, workplaceID, subCategoryID, req))
}
func (m *MockLedgerService) CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest) (*domain.TaxRate, error) {
	return result[domain.TaxRate](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) DeleteTaxRate(ctx context.Context, workplaceID string, taxRateID string) error {
	return m.Called(ctx, workplaceID, taxRateID).Error(0)
}
func (m *MockLedgerService) UpdateCompany(ctx context.Context, workplaceID string, req dto.UpdateCompanyRequest) (*domain.CompanySettings, error) {
	return result[domain.CompanySettings](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) SaveUser(ctx context.Context, workplaceID string, req dto.SaveUserRequest) (*domain.User, error) {
	return result[domain.User](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) DeleteUser(ctx context.Context, workplaceID string, userID string) error {
	return m.Called(ctx, workplaceID, userID).Error(0)
}
func (m *MockLedgerService) AddPayment(ctx context.Context, workplaceID string, req dto.AddPaymentRequest) (*domain.Payment, error) {
	return result[domain.Payment](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) DeletePayment(ctx context.Context, workplaceID string, paymentID string) error {
	return m.Called(ctx, workplaceID, paymentID).Error(0)
}
func (m *MockLedgerService) UpdatePaymentStatus(ctx context.Context, workplaceID string, paymentID string, req dto.UpdatePaymentStatusRequest) (*domain.Payment, error) {
	return result[domain.Payment](m.Called(ctx, workplaceID, paymentID, req))
}
func (m *MockLedgerService) AddExpense(ctx context.Context, workplaceID string, req dto.AddExpenseRequest) (*domain.Expense, error) {
	return result[domain.Expense](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) DeleteExpense(ctx context.Context, workplaceID string, expenseID string) error {
	return m.Called(ctx, workplaceID, expenseID).Error(0)
}
func (m *MockLedgerService) OpenCashSession(ctx context.Context, workplaceID string, req dto.OpenCashSessionRequest) (*domain.CashSession, error) {
	return result[domain.CashSession](m.Called(ctx, workplaceID, req))
}
func (m *MockLedgerService) CloseCashSession(ctx context.Context, workplaceID string, sessionID string, req dto.CloseCashSessionRequest) (*domain.CashSession, error) {
	return result[domain.CashSession](m.Called(ctx, workplaceID, sessionID, req))
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) PartnerSummary(ctx context.Context, workplaceID string, partnerID string) (*domain.Partner, *domain.PartnerSummary, error) {
	args := m.Called(ctx, workplaceID, partnerID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Partner), args.Get(1).(*domain.PartnerSummary), args.Error(2)
}
func (m *MockReportingService) PartnerBalanceAsOf(ctx context.Context, workplaceID string, partnerID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workplaceID, partnerID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockReportingService) PartnerStatement(ctx context.Context, workplaceID string, partnerID string, from, to time.Time) (*domain.Partner, *domain.Statement, error) {
	args := m.Called(ctx, workplaceID, partnerID, from, to)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Partner), args.Get(1).(*domain.Statement), args.Error(2)
}
func (m *MockReportingService) DocumentPaymentProgress(ctx context.Context, workplaceID string, documentID string) (*domain.PaymentProgress, error) {
	return result[domain.PaymentProgress](m.Called(ctx, workplaceID, documentID))
}
func (m *MockReportingService) Dashboard(ctx context.Context, workplaceID string) (*domain.Dashboard, error) {
	return result[domain.Dashboard](m.Called(ctx, workplaceID))
}
func (m *MockReportingService) StockJournal(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.StockMovement, error) {
	return list[domain.StockMovement](m.Called(ctx, workplaceID, from, to))
}
func (m *MockReportingService) CheckRegister(ctx context.Context, workplaceID string, now time.Time) (*domain.CheckSummary, []domain.Payment, []domain.Payment, error) {
	args := m.Called(ctx, workplaceID, now)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.CheckSummary), args.Get(1).([]domain.Payment), args.Get(2).([]domain.Payment), args.Error(3)
}
func (m *MockReportingService) CurrentCashSession(ctx context.Context, workplaceID string) (*domain.CashSession, error) {
	return result[domain.CashSession](m.Called(ctx, workplaceID))
}
func (m *MockReportingService) CashSessionHistory(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.CashSession, error) {
	return list[domain.CashSession](m.Called(ctx, workplaceID, from, to))
}
func (m *MockReportingService) ExpenseReport(ctx context.Context, workplaceID string, from, to time.Time) (*domain.ExpenseReport, error) {
	return result[domain.ExpenseReport](m.Called(ctx, workplaceID, from, to))
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvc = (*MockReportingService)(nil)
