package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/SscSPs/trade_ledger/internal/utils/accounting"
)

// buildLine resolves a line's defaults from the catalog and computes its totals.
// The tax rate falls back to the product's, then to the default rate. A
// tax-inclusive unit price is back-solved only when no unit price is given.
func (s *ledgerService) buildLine(state engine.State, in dto.LineItemRequest) (domain.LineItem, error) {
	product, known := state.FindProduct(in.ProductID)

	item := domain.LineItem{
		LineID:      s.idOr(in.LineID),
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Discount:    in.Discount,
	}
	if item.ProductName == "" && known {
		item.ProductName = product.Name
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	} else {
		item.TaxRate = domain.ResolveTaxRate(state.Products, in.ProductID, s.defaultTaxRate)
	}

	switch {
	case in.UnitPrice != nil:
		item.UnitPrice = *in.UnitPrice
	case in.UnitPriceTTC != nil:
		item = accounting.LineFromTTC(item, *in.UnitPriceTTC)
	case known:
		item.UnitPrice = product.Price
	}

	return accounting.NewLine(item)
}

// buildDocument turns a request into a validated document with derived totals.
func (s *ledgerService) buildDocument(state engine.State, req dto.SaveDocumentRequest) (domain.Document, error) {
	if _, ok := state.FindPartner(req.PartnerID); !ok {
		return domain.Document{}, fmt.Errorf("%w: unknown partner %s", apperrors.ErrValidation, req.PartnerID)
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, in := range req.Items {
		item, err := s.buildLine(state, in)
		if err != nil {
			return domain.Document{}, err
		}
		items = append(items, item)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}

	doc := domain.Document{
		DocumentID:  s.idOr(req.DocumentID),
		Reference:   req.Reference,
		Type:        req.Type,
		PartnerID:   req.PartnerID,
		PartnerName: state.PartnerName(req.PartnerID),
		Date:        s.dateOr(req.Date),
		Status:      status,
		Items:       items,
	}
	if err := doc.Validate(); err != nil {
		return domain.Document{}, err
	}
	return accounting.RecomputeDocument(doc), nil
}

// PreviewDocument computes lines and totals exactly as SaveDocument would, without recording anything.
func (s *ledgerService) PreviewDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	doc, err := s.buildDocument(state, req)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveDocument creates or replaces a document.
func (s *ledgerService) SaveDocument(ctx context.Context, workplaceID string, req dto.SaveDocumentRequest) (*domain.Document, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	doc, err := s.buildDocument(state, req)
	if err != nil {
		return nil, err
	}

	next, err := s.dispatch(ctx, workplaceID, engine.SaveDocument{Document: doc})
	if err != nil {
		return nil, err
	}
	saved, _ := next.FindDocument(doc.DocumentID)
	return &saved, nil
}

// ConvertDocument derives a new draft document of another type from an existing one.
func (s *ledgerService) ConvertDocument(ctx context.Context, workplaceID string, documentID string, req dto.ConvertDocumentRequest) (*domain.Document, error) {
	event := engine.ConvertDocument{
		SourceID:    documentID,
		NewID:       s.newID(),
		Target:      req.TargetType,
		ConvertedAt: s.now(),
		Reference:   s.rules.DraftReference,
	}
	next, err := s.dispatch(ctx, workplaceID, event)
	if err != nil {
		return nil, err
	}
	converted, _ := next.FindDocument(event.NewID)
	return &converted, nil
}

// UpdateDocumentStatus sets the status of an existing document.
func (s *ledgerService) UpdateDocumentStatus(ctx context.Context, workplaceID string, documentID string, req dto.UpdateDocumentStatusRequest) (*domain.Document, error) {
	if _, err := s.GetDocument(ctx, workplaceID, documentID); err != nil {
		return nil, err
	}
	next, err := s.dispatch(ctx, workplaceID, engine.SetDocumentStatus{DocumentID: documentID, Status: req.Status})
	if err != nil {
		return nil, err
	}
	doc, _ := next.FindDocument(documentID)
	return &doc, nil
}
