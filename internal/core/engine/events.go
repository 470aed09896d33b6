package engine

import (
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EventType names an event in the log.
type EventType string

const (
	EventSaveDocument        EventType = "SAVE_DOCUMENT"
	EventConvertDocument     EventType = "CONVERT_DOCUMENT"
	EventSetDocumentStatus   EventType = "SET_DOCUMENT_STATUS"
	EventSaveProduct         EventType = "SAVE_PRODUCT"
	EventSavePartner         EventType = "SAVE_PARTNER"
	EventDeletePartner       EventType = "DELETE_PARTNER"
	EventAddFamily           EventType = "ADD_FAMILY"
	EventUpdateFamily        EventType = "UPDATE_FAMILY"
	EventAddCategory         EventType = "ADD_CATEGORY"
	EventUpdateCategory      EventType = "UPDATE_CATEGORY"
	EventAddSubCategory      EventType = "ADD_SUBCATEGORY"
	EventUpdateSubCategory   EventType = "UPDATE_SUBCATEGORY"
	EventAddTaxRate          EventType = "ADD_TAX_RATE"
	EventDeleteTaxRate       EventType = "DELETE_TAX_RATE"
	EventUpdateCompany       EventType = "UPDATE_COMPANY"
	EventSaveUser            EventType = "SAVE_USER"
	EventDeleteUser          EventType = "DELETE_USER"
	EventAddPayment          EventType = "ADD_PAYMENT"
	EventDeletePayment       EventType = "DELETE_PAYMENT"
	EventUpdatePaymentStatus EventType = "UPDATE_PAYMENT_STATUS"
	EventAddExpense          EventType = "ADD_EXPENSE"
	EventDeleteExpense       EventType = "DELETE_EXPENSE"
	EventOpenCashSession     EventType = "OPEN_CASH_SESSION"
	EventCloseCashSession    EventType = "CLOSE_CASH_SESSION"
)

// Event is the closed set of state transitions. Only types in this package implement it.
type Event interface {
	Type() EventType
	isEvent()
}

type SaveDocument struct {
	Document domain.Document `json:"document"`
}

type ConvertDocument struct {
	SourceID    string         `json:"sourceID"`
	NewID       string         `json:"newID"`
	Target      domain.DocType `json:"target"`
	ConvertedAt time.Time      `json:"convertedAt"`
	// Reference given to the converted draft.
	Reference string `json:"reference"`
}

type SetDocumentStatus struct {
	DocumentID string           `json:"documentID"`
	Status     domain.DocStatus `json:"status"`
}

type SaveProduct struct {
	Product domain.Product `json:"product"`
}

type SavePartner struct {
	Partner domain.Partner `json:"partner"`
}

type DeletePartner struct {
	PartnerID string `json:"partnerID"`
}

type AddFamily struct {
	FamilyID string `json:"familyID"`
	Name     string `json:"name"`
}

type UpdateFamily struct {
	FamilyID string `json:"familyID"`
	Name     string `json:"name"`
}

type AddCategory struct {
	CategoryID string `json:"categoryID"`
	FamilyID   string `json:"familyID"`
	Name       string `json:"name"`
}

type UpdateCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

type AddSubCategory struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

type UpdateSubCategory struct {
	SubCategoryID string `json:"subCategoryID"`
	Name          string `json:"name"`
}

type AddTaxRate struct {
	TaxRate domain.TaxRate `json:"taxRate"`
}

type DeleteTaxRate struct {
	TaxRateID string `json:"taxRateID"`
}

type UpdateCompany struct {
	Company domain.CompanySettings `json:"company"`
}

type SaveUser struct {
	User domain.User `json:"user"`
}

type DeleteUser struct {
	UserID string `json:"userID"`
}

type AddPayment struct {
	Payment domain.Payment `json:"payment"`
	// PaidTolerance is the rounding slack used to settle the linked document.
	PaidTolerance decimal.Decimal `json:"paidTolerance"`
}

type DeletePayment struct {
	PaymentID string `json:"paymentID"`
}

type UpdatePaymentStatus struct {
	PaymentID string               `json:"paymentID"`
	Status    domain.PaymentStatus `json:"status"`
}

type AddExpense struct {
	Expense domain.Expense `json:"expense"`
}

type DeleteExpense struct {
	ExpenseID string `json:"expenseID"`
}

type OpenCashSession struct {
	SessionID      string          `json:"sessionID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpenedAt       time.Time       `json:"openedAt"`
}

type CloseCashSession struct {
	SessionID     string          `json:"sessionID"`
	ActualBalance decimal.Decimal `json:"actualBalance"`
	ClosedAt      time.Time       `json:"closedAt"`
}

func (SaveDocument) Type() EventType        { return EventSaveDocument }
func (ConvertDocument) Type() EventType     { return EventConvertDocument }
func (SetDocumentStatus) Type() EventType   { return EventSetDocumentStatus }
func (SaveProduct) Type() EventType         { return EventSaveProduct }
func (SavePartner) Type() EventType         { return EventSavePartner }
func (DeletePartner) Type() EventType       { return EventDeletePartner }
func (AddFamily) Type() EventType           { return EventAddFamily }
func (UpdateFamily) Type() EventType        { return EventUpdateFamily }
func (AddCategory) Type() EventType         { return EventAddCategory }
func (UpdateCategory) Type() EventType      { return EventUpdateCategory }
func (AddSubCategory) Type() EventType      { return EventAddSubCategory }
func (UpdateSubCategory) Type() EventType   { return EventUpdateSubCategory }
func (AddTaxRate) Type() EventType          { return EventAddTaxRate }
func (DeleteTaxRate) Type() EventType       { return EventDeleteTaxRate }
func (UpdateCompany) Type() EventType       { return EventUpdateCompany }
func (SaveUser) Type() EventType            { return EventSaveUser }
func (DeleteUser) Type() EventType          { return EventDeleteUser }
func (AddPayment) Type() EventType          { return EventAddPayment }
func (DeletePayment) Type() EventType       { return EventDeletePayment }
func (UpdatePaymentStatus) Type() EventType { return EventUpdatePaymentStatus }
func (AddExpense) Type() EventType          { return EventAddExpense }
func (DeleteExpense) Type() EventType       { return EventDeleteExpense }
func (OpenCashSession) Type() EventType     { return EventOpenCashSession }
func (CloseCashSession) Type() EventType    { return EventCloseCashSession }

func (SaveDocument) isEvent()        {}
func (ConvertDocument) isEvent()     {}
func (SetDocumentStatus) isEvent()   {}
func (SaveProduct) isEvent()         {}
func (SavePartner) isEvent()         {}
func (DeletePartner) isEvent()       {}
func (AddFamily) isEvent()           {}
func (UpdateFamily) isEvent()        {}
func (AddCategory) isEvent()         {}
func (UpdateCategory) isEvent()      {}
func (AddSubCategory) isEvent()      {}
func (UpdateSubCategory) isEvent()   {}
func (AddTaxRate) isEvent()          {}
func (DeleteTaxRate) isEvent()       {}
func (UpdateCompany) isEvent()       {}
func (SaveUser) isEvent()            {}
func (DeleteUser) isEvent()          {}
func (AddPayment) isEvent()          {}
func (DeletePayment) isEvent()       {}
func (UpdatePaymentStatus) isEvent() {}
func (AddExpense) isEvent()          {}
func (DeleteExpense) isEvent()       {}
func (OpenCashSession) isEvent()     {}
func (CloseCashSession) isEvent()    {}
