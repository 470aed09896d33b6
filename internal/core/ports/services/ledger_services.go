package services

import (
	"context"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/dto"
)

// DocumentWriterSvc defines write operations for commercial documents
type DocumentWriterSvc interface {
	// SaveDocument creates or replaces a document; totals are always recomputed.
	SaveDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error)

	// ConvertDocument derives a new draft document of another type.
	ConvertDocument(ctx context.Context, workplaceID string, documentID string, req dto.ConvertDocumentRequest) (*domain.Document, error)

	// UpdateDocumentStatus sets a document's status.
	UpdateDocumentStatus(ctx context.Context, workplaceID string, documentID string, req dto.UpdateDocumentStatusRequest) (*domain.Document, error)
}

// PartnerWriterSvc defines write operations for clients and suppliers
type PartnerWriterSvc interface {
	SavePartner(ctx context.Context, workplaceID string, req dto.SavePartnerRequest) (*domain.Partner, error)
	DeletePartner(ctx context.Context, workplaceID string, partnerID string) error
}

// CatalogWriterSvc defines write operations for products, taxonomy, tax rates, company and users
type CatalogWriterSvc interface {
	SaveProduct(ctx context.Context, workplaceID string, req dto.SaveProductRequest) (*domain.Product, error)
	CreateFamily(ctx context.Context, workplaceID string, req dto.NameRequest) (*domain.ProductFamily, error)
	RenameFamily(ctx context.Context, workplaceID string, familyID string, req dto.NameRequest) (*domain.ProductFamily, error)
	CreateCategory(ctx context.Context, workplaceID string, req dto.CreateCategoryRequest) (*domain.ProductCategory, error)
	RenameCategory(ctx context.Context, workplaceID string, categoryID string, req dto.NameRequest) (*domain.ProductCategory, error)
	CreateSubCategory(ctx context.Context, workplaceID string, req dto.CreateSubCategoryRequest) (*domain.ProductSubCategory, error)
	RenameSubCategory(ctx context.Context, workplaceID string, subCategoryID string, req dto.NameRequest) (*domain.ProductSubCategory, error)
	CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest) (*domain.TaxRate, error)
	DeleteTaxRate(ctx context.Context, workplaceID string, taxRateID string) error
	UpdateCompany(ctx context.Context, workplaceID string, req dto.UpdateCompanyRequest) (*domain.CompanySettings, error)
	SaveUser(ctx context.Context, workplaceID string, req dto.SaveUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, workplaceID string, userID string) error
}

// TreasuryWriterSvc defines write operations for payments, expenses and the cash drawer
type TreasuryWriterSvc interface {
	// AddPayment records a payment, feeds the open cash session for cash and
	// marks the linked document PAID once it is settled.
	AddPayment(ctx context.Context, workplaceID string, req dto.AddPaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, workplaceID string, paymentID string) error
	UpdatePaymentStatus(ctx context.Context, workplaceID string, paymentID string, req dto.UpdatePaymentStatusRequest) (*domain.Payment, error)
	AddExpense(ctx context.Context, workplaceID string, req dto.AddExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, workplaceID string, expenseID string) error
	OpenCashSession(ctx context.Context, workplaceID string, req dto.OpenCashSessionRequest) (*domain.CashSession, error)
	CloseCashSession(ctx context.Context, workplaceID string, sessionID string, req dto.CloseCashSessionRequest) (*domain.CashSession, error)
}

// LedgerReaderSvc defines read operations over a workplace's current state
type LedgerReaderSvc interface {
	// GetState returns the workplace state after the last accepted event.
	GetState(ctx context.Context, workplaceID string) (*engine.State, error)

	GetDocument(ctx context.Context, workplaceID string, documentID string) (*domain.Document, error)

	// ListDocuments lists documents, optionally of a single type.
	ListDocuments(ctx context.Context, workplaceID string, docType domain.DocType) ([]domain.Document, error)

	// ListPayments lists payments, optionally filtered by partner and document.
	ListPayments(ctx context.Context, workplaceID string, partnerID string, documentID string) ([]domain.Payment, error)

	// ListProducts lists products with their category label resolved.
	ListProducts(ctx context.Context, workplaceID string) ([]domain.Product, error)

	// FindUserByEmail returns the active user with the given email.
	FindUserByEmail(ctx context.Context, workplaceID string, email string) (*domain.User, error)

	// PreviewDocument computes a document's lines and totals without recording it.
	PreviewDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error)

	// ListEvents returns up to limit events after the given sequence, and the
	// sequence to resume from (0 when there is nothing more).
	ListEvents(ctx context.Context, workplaceID string, afterSequence int64, limit int) ([]domain.EventRecord, int64, error)
}

// LedgerLoaderSvc rebuilds ledgers from the event log
type LedgerLoaderSvc interface {
	// Warmup replays every workplace that has recorded events.
	Warmup(ctx context.Context) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerLoaderSvc
	LedgerReaderSvc
	DocumentWriterSvc
	PartnerWriterSvc
	CatalogWriterSvc
	TreasuryWriterSvc
}
