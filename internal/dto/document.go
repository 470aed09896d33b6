package dto

import (
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line as entered by the operator. Totals are never accepted.
type LineItemRequest struct {
	LineID       string           `json:"lineID"` // Generated when empty
	ProductID    string           `json:"productID"`
	ProductName  string           `json:"productName"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`    // Excluding tax
	UnitPriceTTC *decimal.Decimal `json:"unitPriceTTC"` // Used only when unitPrice is absent
	TaxRate      *decimal.Decimal `json:"taxRate"`      // Product rate, then the default, when absent
	Discount     decimal.Decimal  `json:"discount"`
}

// SaveDocumentRequest creates a document, or replaces it when DocumentID is set.
type SaveDocumentRequest struct {
	DocumentID string            `json:"documentID"`
	Reference  string            `json:"reference"`
	Type       domain.DocType    `json:"type" binding:"required,oneof=QUOTE INVOICE ORDER PURCHASE DELIVERY_NOTE CREDIT_NOTE PURCHASE_CREDIT_NOTE"`
	PartnerID  string            `json:"partnerID" binding:"required"`
	Date       *time.Time        `json:"date"`
	Status     domain.DocStatus  `json:"status" binding:"omitempty,oneof=DRAFT VALIDATED UNPAID PAID CANCELLED"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
}

// ConvertDocumentRequest names the type of the derived document.
type ConvertDocumentRequest struct {
	TargetType domain.DocType `json:"targetType" binding:"required,oneof=QUOTE INVOICE ORDER PURCHASE DELIVERY_NOTE CREDIT_NOTE PURCHASE_CREDIT_NOTE"`
}

// UpdateDocumentStatusRequest sets a document's lifecycle status.
type UpdateDocumentStatusRequest struct {
	Status domain.DocStatus `json:"status" binding:"required,oneof=DRAFT VALIDATED UNPAID PAID CANCELLED"`
}

// DocumentResponse is a document with its settlement progress.
type DocumentResponse struct {
	domain.Document
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// ListDocumentsResponse wraps a list of documents.
type ListDocumentsResponse struct {
	Documents []domain.Document `json:"documents"`
}

// ToDocumentResponse combines a document and its payment progress.
func ToDocumentResponse(doc *domain.Document, progress *domain.PaymentProgress) DocumentResponse {
	resp := DocumentResponse{Document: *doc, Paid: decimal.Zero, Remaining: doc.TotalTTC}
	if progress != nil {
		resp.Paid = progress.Paid
		resp.Remaining = progress.Remaining
	}
	return resp
}

// ToListDocumentsResponse keeps the JSON array non-null.
func ToListDocumentsResponse(docs []domain.Document) ListDocumentsResponse {
	if docs == nil {
		docs = []domain.Document{}
	}
	return ListDocumentsResponse{Documents: docs}
}
