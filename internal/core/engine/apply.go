package engine

import (
	"fmt"
	"slices"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Rules are the tunable business constants the service layer stamps into
// events at dispatch time. The reducer never reads them directly, so a log
// replays to the same state whatever the configuration is today.
type Rules struct {
	// PaidTolerance absorbs rounding when deciding a document is fully paid.
	PaidTolerance decimal.Decimal
	// DraftReference is the reference given to converted documents.
	DraftReference string
}

// DefaultRules returns a tolerance of 0.01 and the "BROUILLON" draft reference.
func DefaultRules() Rules {
	return Rules{
		PaidTolerance:  decimal.RequireFromString("0.01"),
		DraftReference: "BROUILLON",
	}
}

// Reducer applies events to a State. Every input it needs travels in the event.
type Reducer struct{}

// NewReducer creates a Reducer.
func NewReducer() Reducer {
	return Reducer{}
}

// Apply returns the state after e. It is pure: s is left untouched and the same
// (s, e) always yields the same result. A rejected event returns s unchanged
// together with the error.
func (r Reducer) Apply(s State, e Event) (State, error) {
	switch ev := e.(type) {
	case SaveDocument:
		return r.saveDocument(s, ev)
	case ConvertDocument:
		return r.convertDocument(s, ev)
	case SetDocumentStatus:
		s.Documents, _ = update(s.Documents,
			func(d domain.Document) bool { return d.DocumentID == ev.DocumentID },
			func(d domain.Document) domain.Document { return d.SetStatus(ev.Status) })
		return s, nil

	case SaveProduct:
		s.Products = upsert(s.Products, ev.Product,
			func(p domain.Product) bool { return p.ProductID == ev.Product.ProductID })
		return s, nil
	case SavePartner:
		s.Partners = upsert(s.Partners, ev.Partner,
			func(p domain.Partner) bool { return p.PartnerID == ev.Partner.PartnerID })
		return s, nil
	case DeletePartner:
		return deletePartner(s, ev)

	case AddFamily:
		s.Families = upsert(s.Families, domain.ProductFamily{FamilyID: ev.FamilyID, Name: ev.Name},
			func(f domain.ProductFamily) bool { return f.FamilyID == ev.FamilyID })
		return s, nil
	case UpdateFamily:
		s.Families, _ = update(s.Families,
			func(f domain.ProductFamily) bool { return f.FamilyID == ev.FamilyID },
			func(f domain.ProductFamily) domain.ProductFamily {
				f.Name = ev.Name
				return f
			})
		return s, nil
	case AddCategory:
		s.Categories = upsert(s.Categories, domain.ProductCategory{CategoryID: ev.CategoryID, FamilyID: ev.FamilyID, Name: ev.Name},
			func(c domain.ProductCategory) bool { return c.CategoryID == ev.CategoryID })
		return s, nil
	case UpdateCategory:
		s.Categories, _ = update(s.Categories,
			func(c domain.ProductCategory) bool { return c.CategoryID == ev.CategoryID },
			func(c domain.ProductCategory) domain.ProductCategory {
				c.Name = ev.Name
				return c
			})
		return s, nil
	case AddSubCategory:
		s.SubCategories = upsert(s.SubCategories, domain.ProductSubCategory{SubCategoryID: ev.SubCategoryID, CategoryID: ev.CategoryID, Name: ev.Name},
			func(c domain.ProductSubCategory) bool { return c.SubCategoryID == ev.SubCategoryID })
		return s, nil
	case UpdateSubCategory:
		s.SubCategories, _ = update(s.SubCategories,
			func(c domain.ProductSubCategory) bool { return c.SubCategoryID == ev.SubCategoryID },
			func(c domain.ProductSubCategory) domain.ProductSubCategory {
				c.Name = ev.Name
				return c
			})
		return s, nil
	case AddTaxRate:
		s.TaxRates = upsert(s.TaxRates, ev.TaxRate,
			func(t domain.TaxRate) bool { return t.TaxRateID == ev.TaxRate.TaxRateID })
		return s, nil
	case DeleteTaxRate:
		s.TaxRates = without(s.TaxRates, func(t domain.TaxRate) bool { return t.TaxRateID == ev.TaxRateID })
		return s, nil

	case UpdateCompany:
		s.Company = ev.Company
		return s, nil
	case SaveUser:
		s.Users = upsert(s.Users, ev.User, func(u domain.User) bool { return u.UserID == ev.User.UserID })
		return s, nil
	case DeleteUser:
		s.Users = without(s.Users, func(u domain.User) bool { return u.UserID == ev.UserID })
		return s, nil

	case AddPayment:
		return r.addPayment(s, ev)
	case DeletePayment:
		s.Payments = without(s.Payments, func(p domain.Payment) bool { return p.PaymentID == ev.PaymentID })
		return s, nil
	case UpdatePaymentStatus:
		s.Payments, _ = update(s.Payments,
			func(p domain.Payment) bool { return p.PaymentID == ev.PaymentID },
			func(p domain.Payment) domain.Payment {
				p.Status = ev.Status
				return p
			})
		return s, nil

	case AddExpense:
		return addExpense(s, ev)
	case DeleteExpense:
		s.Expenses = without(s.Expenses, func(x domain.Expense) bool { return x.ExpenseID == ev.ExpenseID })
		return s, nil

	case OpenCashSession:
		return openCashSession(s, ev)
	case CloseCashSession:
		return closeCashSession(s, ev)

	default:
		return s, fmt.Errorf("%w: %T", apperrors.ErrUnknownEvent, e)
	}
}

// saveDocument upserts the document with its totals recomputed from the lines.
func (r Reducer) saveDocument(s State, ev SaveDocument) (State, error) {
	doc := accounting.RecomputeDocument(ev.Document)
	s.Documents = upsert(s.Documents, doc,
		func(d domain.Document) bool { return d.DocumentID == doc.DocumentID })
	return s, nil
}

func (r Reducer) convertDocument(s State, ev ConvertDocument) (State, error) {
	source, ok := s.FindDocument(ev.SourceID)
	if !ok {
		return s, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, ev.SourceID)
	}
	if _, exists := s.FindDocument(ev.NewID); exists {
		return s, fmt.Errorf("%w: document %s", apperrors.ErrDuplicate, ev.NewID)
	}
	converted := accounting.RecomputeDocument(source.Convert(ev.NewID, ev.Target, ev.ConvertedAt, ev.Reference))
	s.Documents = append(slices.Clone(s.Documents), converted)
	return s, nil
}

// deletePartner refuses to orphan documents or payments.
func deletePartner(s State, ev DeletePartner) (State, error) {
	docs, payments := s.PartnerDocuments(ev.PartnerID)
	if len(docs) > 0 || len(payments) > 0 {
		return s, fmt.Errorf("%w: partner %s has %d documents and %d payments",
			apperrors.ErrReferenced, ev.PartnerID, len(docs), len(payments))
	}
	s.Partners = without(s.Partners, func(p domain.Partner) bool { return p.PartnerID == ev.PartnerID })
	return s, nil
}

// addPayment records the payment, feeds the open cash session for cash payments
// and marks the linked document PAID once it is settled within the event's tolerance.
func (r Reducer) addPayment(s State, ev AddPayment) (State, error) {
	p := ev.Payment
	if _, exists := s.FindPayment(p.PaymentID); exists {
		return s, fmt.Errorf("%w: payment %s", apperrors.ErrDuplicate, p.PaymentID)
	}
	if p.DocumentID != "" {
		if doc, ok := s.FindDocument(p.DocumentID); ok && doc.PartnerID != p.PartnerID {
			return s, fmt.Errorf("%w: document %s belongs to partner %s, not %s",
				apperrors.ErrValidation, p.DocumentID, doc.PartnerID, p.PartnerID)
		}
	}

	next := s
	next.Payments = append(slices.Clone(s.Payments), p)

	if p.Method == domain.MethodCash {
		if session, ok := s.OpenSession(); ok {
			var partnerType domain.PartnerType
			if partner, found := s.FindPartner(p.PartnerID); found {
				partnerType = partner.Type
			}
			updated, err := session.RecordPayment(p.Amount, accounting.IsIncoming(partnerType, p.Nature))
			if err != nil {
				return s, err
			}
			next.CashSessions = replaceSession(s.CashSessions, updated)
		}
	}

	if p.DocumentID != "" {
		next.Documents, _ = update(next.Documents,
			func(d domain.Document) bool { return d.DocumentID == p.DocumentID },
			func(d domain.Document) domain.Document {
				if accounting.IsFullyPaid(d, next.Payments, ev.PaidTolerance) {
					return d.SetStatus(domain.StatusPaid)
				}
				return d
			})
	}
	return next, nil
}

func addExpense(s State, ev AddExpense) (State, error) {
	x := ev.Expense
	next := s
	next.Expenses = append(slices.Clone(s.Expenses), x)

	if x.Method == domain.MethodCash {
		if session, ok := s.OpenSession(); ok {
			updated, err := session.RecordExpense(x.Amount)
			if err != nil {
				return s, err
			}
			next.CashSessions = replaceSession(s.CashSessions, updated)
		}
	}
	return next, nil
}

func openCashSession(s State, ev OpenCashSession) (State, error) {
	if open, ok := s.OpenSession(); ok {
		return s, fmt.Errorf("%w: session %s", apperrors.ErrSessionAlreadyOpen, open.SessionID)
	}
	if _, exists := s.FindCashSession(ev.SessionID); exists {
		return s, fmt.Errorf("%w: session %s", apperrors.ErrDuplicate, ev.SessionID)
	}
	session := domain.OpenCashSession(ev.SessionID, ev.OpeningBalance, ev.OpenedAt)
	s.CashSessions = append(slices.Clone(s.CashSessions), session)
	return s, nil
}

func closeCashSession(s State, ev CloseCashSession) (State, error) {
	session, ok := s.FindCashSession(ev.SessionID)
	if !ok {
		return s, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, ev.SessionID)
	}
	closed, err := session.Close(ev.ActualBalance, ev.ClosedAt)
	if err != nil {
		return s, err
	}
	s.CashSessions = replaceSession(s.CashSessions, closed)
	return s, nil
}

func replaceSession(sessions []domain.CashSession, session domain.CashSession) []domain.CashSession {
	out, _ := update(sessions,
		func(c domain.CashSession) bool { return c.SessionID == session.SessionID },
		func(domain.CashSession) domain.CashSession { return session })
	return out
}
