package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reducer = engine.NewReducer()
	rules   = engine.DefaultRules()
	at      = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// apply folds events from an empty state and fails the test on any rejection.
func apply(t *testing.T, events ...engine.Event) engine.State {
	t.Helper()
	state := engine.State{}
	for _, e := range events {
		var err error
		state, err = reducer.Apply(state, e)
		require.NoError(t, err, "applying %s", e.Type())
	}
	return state
}

func savePartner(id string, partnerType domain.PartnerType) engine.Event {
	return engine.SavePartner{Partner: domain.Partner{PartnerID: id, Name: id, Type: partnerType}}
}

func saveInvoice(id string) engine.Event {
	return engine.SaveDocument{Document: domain.Document{
		DocumentID: id,
		Type:       domain.Invoice,
		PartnerID:  "c1",
		Status:     domain.StatusValidated,
		Date:       at,
		Items:      []domain.LineItem{{LineID: "l1", Quantity: dec("12"), UnitPrice: dec("100"), TaxRate: dec("20")}},
	}}
}

func addPayment(id string, partnerID string, method domain.PaymentMethod, nature domain.PaymentNature, amount string, documentID string) engine.Event {
	return engine.AddPayment{Payment: domain.Payment{
		PaymentID: id, PartnerID: partnerID, Method: method, Nature: nature,
		Amount: dec(amount), DocumentID: documentID, Date: at, Status: domain.PaymentCleared,
	}, PaidTolerance: rules.PaidTolerance}
}

func TestApply_SaveDocumentRecomputesTotals(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"))

	doc, ok := state.FindDocument("d1")
	require.True(t, ok)
	assert.True(t, doc.TotalHT.Equal(dec("1200")))
	assert.True(t, doc.Tax.Equal(dec("240")))
	assert.True(t, doc.TotalTTC.Equal(dec("1440")))
	assert.True(t, doc.Items[0].TotalTTC.Equal(dec("1440")))
}

func TestApply_SaveDocumentReplaces(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"), saveInvoice("d1"))
	assert.Len(t, state.Documents, 1)
}

func TestApply_LeavesInputStateUntouched(t *testing.T) {
	before := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"))

	after, err := reducer.Apply(before, engine.SetDocumentStatus{DocumentID: "d1", Status: domain.StatusCancelled})
	require.NoError(t, err)

	original, _ := before.FindDocument("d1")
	updated, _ := after.FindDocument("d1")
	assert.Equal(t, domain.StatusValidated, original.Status)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestApply_ConvertDocument(t *testing.T) {
	state := apply(t,
		savePartner("c1", domain.Client),
		saveInvoice("d1"),
		engine.ConvertDocument{SourceID: "d1", NewID: "d2", Target: domain.CreditNote, ConvertedAt: at, Reference: rules.DraftReference},
	)

	converted, ok := state.FindDocument("d2")
	require.True(t, ok)
	assert.Equal(t, domain.CreditNote, converted.Type)
	assert.Equal(t, "BROUILLON", converted.Reference)
	assert.Equal(t, domain.StatusDraft, converted.Status)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), converted.Date)
	assert.True(t, converted.TotalTTC.Equal(dec("1440")))

	source, _ := state.FindDocument("d1")
	assert.Equal(t, domain.StatusValidated, source.Status)
}

func TestApply_ConvertDocumentRejections(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"))

	_, err := reducer.Apply(state, engine.ConvertDocument{SourceID: "ghost", NewID: "d2", Target: domain.Order, ConvertedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = reducer.Apply(state, engine.ConvertDocument{SourceID: "d1", NewID: "d1", Target: domain.Order, ConvertedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestApply_ConversionReferenceComesFromEvent(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"))

	state, err := reducer.Apply(state, engine.ConvertDocument{SourceID: "d1", NewID: "d2", Target: domain.Order, ConvertedAt: at, Reference: "DRAFT"})
	require.NoError(t, err)
	converted, _ := state.FindDocument("d2")
	assert.Equal(t, "DRAFT", converted.Reference)
}

func TestApply_PaidToleranceComesFromEvent(t *testing.T) {
	tests := []struct {
		name      string
		tolerance string
		want      domain.DocStatus
	}{
		{name: "cent tolerance", tolerance: "0.01", want: domain.StatusPaid},
		{name: "exact settlement", tolerance: "0", want: domain.StatusValidated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := addPayment("p1", "c1", domain.MethodTransfer, domain.NaturePayment, "1439.995", "d1").(engine.AddPayment)
			payment.PaidTolerance = dec(tt.tolerance)

			state := apply(t, savePartner("c1", domain.Client), saveInvoice("d1"), payment)

			doc, _ := state.FindDocument("d1")
			assert.Equal(t, tt.want, doc.Status)
		})
	}
}

func TestApply_PaymentOnAnotherPartnersDocument(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), savePartner("c2", domain.Client), saveInvoice("d1"))

	next, err := reducer.Apply(state, addPayment("p1", "c2", domain.MethodTransfer, domain.NaturePayment, "1440", "d1"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, next.Payments)
	doc, _ := next.FindDocument("d1")
	assert.Equal(t, domain.StatusValidated, doc.Status)
}

func TestApply_PaymentMarksDocumentPaid(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []string
		wantPaid bool
	}{
		{name: "full payment", amounts: []string{"1440"}, wantPaid: true},
		{name: "within tolerance", amounts: []string{"1439.995"}, wantPaid: true},
		{name: "split payments", amounts: []string{"1000", "440"}, wantPaid: true},
		{name: "partial payment", amounts: []string{"1430"}, wantPaid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []engine.Event{savePartner("c1", domain.Client), saveInvoice("d1")}
			for i, amount := range tt.amounts {
				events = append(events, addPayment(string(rune('a'+i)), "c1", domain.MethodTransfer, domain.NaturePayment, amount, "d1"))
			}
			state := apply(t, events...)

			doc, _ := state.FindDocument("d1")
			if tt.wantPaid {
				assert.Equal(t, domain.StatusPaid, doc.Status)
			} else {
				assert.Equal(t, domain.StatusValidated, doc.Status)
			}
		})
	}
}

func TestApply_DuplicatePayment(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), addPayment("p1", "c1", domain.MethodCash, domain.NaturePayment, "10", ""))

	next, err := reducer.Apply(state, addPayment("p1", "c1", domain.MethodCash, domain.NaturePayment, "10", ""))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, next.Payments, 1)
}

func TestApply_CashFlowsFeedOpenSession(t *testing.T) {
	state := apply(t,
		savePartner("c1", domain.Client),
		savePartner("s1", domain.Supplier),
		engine.OpenCashSession{SessionID: "cs1", OpeningBalance: dec("500"), OpenedAt: at},
		addPayment("p1", "c1", domain.MethodCash, domain.NaturePayment, "200", ""),
		addPayment("p2", "c1", domain.MethodCash, domain.NatureRefund, "15", ""),
		addPayment("p3", "s1", domain.MethodCash, domain.NaturePayment, "80", ""),
		addPayment("p4", "s1", domain.MethodCash, domain.NatureRefund, "30", ""),
		addPayment("p5", "c1", domain.MethodTransfer, domain.NaturePayment, "999", ""),
		engine.AddExpense{Expense: domain.Expense{ExpenseID: "x1", Date: at, Category: "Fuel", Amount: dec("25"), Method: domain.MethodCash}},
		engine.AddExpense{Expense: domain.Expense{ExpenseID: "x2", Date: at, Category: "Rent", Amount: dec("800"), Method: domain.MethodTransfer}},
	)

	session, ok := state.OpenSession()
	require.True(t, ok)
	assert.True(t, session.TotalIn.Equal(dec("230")), "in: %s", session.TotalIn)
	assert.True(t, session.TotalOut.Equal(dec("120")), "out: %s", session.TotalOut)
	assert.True(t, session.TheoreticalBalance().Equal(dec("610")))
	assert.Len(t, state.Expenses, 2)
}

func TestApply_CashWithoutSessionIsStillRecorded(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), addPayment("p1", "c1", domain.MethodCash, domain.NaturePayment, "50", ""))

	assert.Len(t, state.Payments, 1)
	assert.Empty(t, state.CashSessions)
}

func TestApply_CashSessionRules(t *testing.T) {
	state := apply(t, engine.OpenCashSession{SessionID: "cs1", OpeningBalance: dec("100"), OpenedAt: at})

	_, err := reducer.Apply(state, engine.OpenCashSession{SessionID: "cs2", OpeningBalance: dec("0"), OpenedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrSessionAlreadyOpen)

	_, err = reducer.Apply(state, engine.CloseCashSession{SessionID: "ghost", ActualBalance: dec("100"), ClosedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	closed, err := reducer.Apply(state, engine.CloseCashSession{SessionID: "cs1", ActualBalance: dec("90"), ClosedAt: at})
	require.NoError(t, err)
	_, open := closed.OpenSession()
	assert.False(t, open)

	_, err = reducer.Apply(closed, engine.CloseCashSession{SessionID: "cs1", ActualBalance: dec("90"), ClosedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)

	_, err = reducer.Apply(closed, engine.OpenCashSession{SessionID: "cs1", OpeningBalance: dec("0"), OpenedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	reopened, err := reducer.Apply(closed, engine.OpenCashSession{SessionID: "cs2", OpeningBalance: dec("90"), OpenedAt: at})
	require.NoError(t, err)
	assert.Len(t, reopened.CashSessions, 2)
}

func TestApply_DeletePartner(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client), savePartner("c2", domain.Client), saveInvoice("d1"))

	_, err := reducer.Apply(state, engine.DeletePartner{PartnerID: "c1"})
	assert.ErrorIs(t, err, apperrors.ErrReferenced)

	next, err := reducer.Apply(state, engine.DeletePartner{PartnerID: "c2"})
	require.NoError(t, err)
	_, found := next.FindPartner("c2")
	assert.False(t, found)
	assert.Equal(t, "Unknown", next.PartnerName("c2"))
}

func TestApply_Catalog(t *testing.T) {
	state := apply(t,
		engine.AddFamily{FamilyID: "f1", Name: "Furniture"},
		engine.UpdateFamily{FamilyID: "f1", Name: "Office furniture"},
		engine.AddCategory{CategoryID: "c1", FamilyID: "f1", Name: "Seating"},
		engine.UpdateCategory{CategoryID: "c1", Name: "Seats"},
		engine.AddSubCategory{SubCategoryID: "s1", CategoryID: "c1", Name: "Chairs"},
		engine.UpdateSubCategory{SubCategoryID: "s1", Name: "Stools"},
		engine.AddTaxRate{TaxRate: domain.TaxRate{TaxRateID: "t1", Name: "Standard", Rate: dec("20")}},
		engine.AddTaxRate{TaxRate: domain.TaxRate{TaxRateID: "t2", Name: "Reduced", Rate: dec("7")}},
		engine.DeleteTaxRate{TaxRateID: "t1"},
		engine.UpdateCompany{Company: domain.CompanySettings{Name: "Acme", Currency: "USD"}},
		engine.SaveUser{User: domain.User{UserID: "u1", Name: "Sam", Email: "sam@example.com", Role: domain.RoleAdmin, Active: true}},
		engine.SaveUser{User: domain.User{UserID: "u2", Name: "Kim", Email: "kim@example.com", Role: domain.RoleSales, Active: true}},
		engine.DeleteUser{UserID: "u2"},
	)

	require.Len(t, state.Families, 1)
	assert.Equal(t, "Office furniture", state.Families[0].Name)
	require.Len(t, state.Categories, 1)
	assert.Equal(t, "Seats", state.Categories[0].Name)
	require.Len(t, state.SubCategories, 1)
	assert.Equal(t, "Stools", state.SubCategories[0].Name)
	require.Len(t, state.TaxRates, 1)
	assert.Equal(t, "t2", state.TaxRates[0].TaxRateID)
	assert.Equal(t, "USD", state.Company.Currency)
	require.Len(t, state.Users, 1)

	user, ok := state.FindActiveUserByEmail("SAM@example.com")
	require.True(t, ok)
	assert.Equal(t, "u1", user.UserID)
}

func TestApply_PaymentAndExpenseMaintenance(t *testing.T) {
	due := at.AddDate(0, 1, 0)
	state := apply(t,
		savePartner("c1", domain.Client),
		engine.AddPayment{Payment: domain.Payment{PaymentID: "chk", PartnerID: "c1", Method: domain.MethodCheck, Nature: domain.NaturePayment, Amount: dec("90"), Date: at, DueDate: &due, Status: domain.PaymentPending}},
		engine.UpdatePaymentStatus{PaymentID: "chk", Status: domain.PaymentCleared},
		engine.AddExpense{Expense: domain.Expense{ExpenseID: "x1", Date: at, Category: "Fuel", Amount: dec("25"), Method: domain.MethodCard}},
	)

	payment, ok := state.FindPayment("chk")
	require.True(t, ok)
	assert.Equal(t, domain.PaymentCleared, payment.Status)

	unchanged, err := reducer.Apply(state, engine.DeletePayment{PaymentID: "ghost"})
	require.NoError(t, err)
	assert.Len(t, unchanged.Payments, 1)

	state, err = reducer.Apply(state, engine.DeletePayment{PaymentID: "chk"})
	require.NoError(t, err)
	state, err = reducer.Apply(state, engine.DeleteExpense{ExpenseID: "x1"})
	require.NoError(t, err)
	assert.Empty(t, state.Payments)
	assert.Empty(t, state.Expenses)
}

func TestApply_UnknownEvent(t *testing.T) {
	state := apply(t, savePartner("c1", domain.Client))

	next, err := reducer.Apply(state, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnknownEvent)
	assert.Len(t, next.Partners, 1)
}
