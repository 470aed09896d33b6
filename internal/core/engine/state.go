package engine

import (
	"slices"
	"strings"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
)

// State is the full business state of one workplace. A State value is never
// mutated once returned by Apply; every transition copies the collections it
// touches, so earlier snapshots stay valid.
type State struct {
	Company       domain.CompanySettings      `json:"company"`
	Partners      []domain.Partner            `json:"partners"`
	Products      []domain.Product            `json:"products"`
	Documents     []domain.Document           `json:"documents"`
	Payments      []domain.Payment            `json:"payments"`
	Expenses      []domain.Expense            `json:"expenses"`
	CashSessions  []domain.CashSession        `json:"cashSessions"`
	Families      []domain.ProductFamily      `json:"families"`
	Categories    []domain.ProductCategory    `json:"categories"`
	SubCategories []domain.ProductSubCategory `json:"subCategories"`
	TaxRates      []domain.TaxRate            `json:"taxRates"`
	Users         []domain.User               `json:"users"`
}

// FindPartner returns the partner with the given ID.
func (s State) FindPartner(partnerID string) (domain.Partner, bool) {
	i := slices.IndexFunc(s.Partners, func(p domain.Partner) bool { return p.PartnerID == partnerID })
	if i < 0 {
		return domain.Partner{}, false
	}
	return s.Partners[i], true
}

// FindDocument returns the document with the given ID.
func (s State) FindDocument(documentID string) (domain.Document, bool) {
	i := slices.IndexFunc(s.Documents, func(d domain.Document) bool { return d.DocumentID == documentID })
	if i < 0 {
		return domain.Document{}, false
	}
	return s.Documents[i].Clone(), true
}

// FindProduct returns the product with the given ID.
func (s State) FindProduct(productID string) (domain.Product, bool) {
	i := slices.IndexFunc(s.Products, func(p domain.Product) bool { return p.ProductID == productID })
	if i < 0 {
		return domain.Product{}, false
	}
	return s.Products[i], true
}

// FindPayment returns the payment with the given ID.
func (s State) FindPayment(paymentID string) (domain.Payment, bool) {
	i := slices.IndexFunc(s.Payments, func(p domain.Payment) bool { return p.PaymentID == paymentID })
	if i < 0 {
		return domain.Payment{}, false
	}
	return s.Payments[i], true
}

// FindExpense returns the expense with the given ID.
func (s State) FindExpense(expenseID string) (domain.Expense, bool) {
	i := slices.IndexFunc(s.Expenses, func(x domain.Expense) bool { return x.ExpenseID == expenseID })
	if i < 0 {
		return domain.Expense{}, false
	}
	return s.Expenses[i], true
}

// FindTaxRate returns the tax rate with the given ID.
func (s State) FindTaxRate(taxRateID string) (domain.TaxRate, bool) {
	i := slices.IndexFunc(s.TaxRates, func(t domain.TaxRate) bool { return t.TaxRateID == taxRateID })
	if i < 0 {
		return domain.TaxRate{}, false
	}
	return s.TaxRates[i], true
}

// FindUser returns the user with the given ID.
func (s State) FindUser(userID string) (domain.User, bool) {
	i := slices.IndexFunc(s.Users, func(u domain.User) bool { return u.UserID == userID })
	if i < 0 {
		return domain.User{}, false
	}
	return s.Users[i], true
}

// FindCashSession returns the cash session with the given ID.
func (s State) FindCashSession(sessionID string) (domain.CashSession, bool) {
	i := slices.IndexFunc(s.CashSessions, func(c domain.CashSession) bool { return c.SessionID == sessionID })
	if i < 0 {
		return domain.CashSession{}, false
	}
	return s.CashSessions[i], true
}

// OpenSession returns the currently open cash session, if any.
func (s State) OpenSession() (domain.CashSession, bool) {
	i := slices.IndexFunc(s.CashSessions, domain.CashSession.IsOpen)
	if i < 0 {
		return domain.CashSession{}, false
	}
	return s.CashSessions[i], true
}

// FindActiveUserByEmail matches an active user by case-insensitive email.
func (s State) FindActiveUserByEmail(email string) (domain.User, bool) {
	for _, u := range s.Users {
		if u.Active && strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

// PartnerName returns the partner's name, or "Unknown" for a missing partner.
func (s State) PartnerName(partnerID string) string {
	if p, ok := s.FindPartner(partnerID); ok {
		return p.Name
	}
	return "Unknown"
}

// PartnerDocuments returns the documents and payments that belong to the partner.
func (s State) PartnerDocuments(partnerID string) ([]domain.Document, []domain.Payment) {
	var docs []domain.Document
	for _, d := range s.Documents {
		if d.PartnerID == partnerID {
			docs = append(docs, d)
		}
	}
	var payments []domain.Payment
	for _, p := range s.Payments {
		if p.PartnerID == partnerID {
			payments = append(payments, p)
		}
	}
	return docs, payments
}

// upsert replaces the element matched by same or appends v, on a fresh slice.
func upsert[T any](items []T, v T, same func(T) bool) []T {
	out := slices.Clone(items)
	if i := slices.IndexFunc(out, same); i >= 0 {
		out[i] = v
		return out
	}
	return append(out, v)
}

// without returns a fresh slice lacking the elements matched by drop.
func without[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

// update applies fn to the element matched by match on a fresh slice. It reports
// false, and returns items untouched, when nothing matches.
func update[T any](items []T, match func(T) bool, fn func(T) T) ([]T, bool) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[i] = fn(out[i])
	return out, true
}
