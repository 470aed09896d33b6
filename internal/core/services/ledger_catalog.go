package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/dto"
)

// SavePartner creates or replaces a client or supplier.
func (s *ledgerService) SavePartner(ctx context.Context, workplaceID string, req dto.SavePartnerRequest) (*domain.Partner, error) {
	partner := domain.Partner{
		PartnerID:      s.idOr(req.PartnerID),
		Name:           strings.TrimSpace(req.Name),
		Email:          req.Email,
		Phone:          req.Phone,
		Type:           req.Type,
		Address:        req.Address,
		Zip:            req.Zip,
		City:           req.City,
		Country:        req.Country,
		TaxID:          req.TaxID,
		InitialBalance: req.InitialBalance,
	}
	if err := partner.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.dispatch(ctx, workplaceID, engine.SavePartner{Partner: partner}); err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner removes a partner that no document or payment refers to.
// Deleting an unknown partner is a no-op.
func (s *ledgerService) DeletePartner(ctx context.Context, workplaceID string, partnerID string) error {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return err
	}
	if _, ok := state.FindPartner(partnerID); !ok {
		return nil
	}
	_, err = s.dispatch(ctx, workplaceID, engine.DeletePartner{PartnerID: partnerID})
	return err
}

// SaveProduct creates or replaces a product.
func (s *ledgerService) SaveProduct(ctx context.Context, workplaceID string, req dto.SaveProductRequest) (*domain.Product, error) {
	product := domain.Product{
		ProductID:     s.idOr(req.ProductID),
		SKU:           req.SKU,
		Name:          strings.TrimSpace(req.Name),
		Price:         req.Price,
		Cost:          req.Cost,
		Stock:         req.Stock,
		MinStock:      req.MinStock,
		TaxRate:       req.TaxRate,
		FamilyID:      req.FamilyID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	next, err := s.dispatch(ctx, workplaceID, engine.SaveProduct{Product: product})
	if err != nil {
		return nil, err
	}
	product.CategoryLabel = domain.CategoryLabel(next.Families, next.Categories, next.SubCategories, product)
	return &product, nil
}

// CreateFamily adds a product family.
func (s *ledgerService) CreateFamily(ctx context.Context, workplaceID string, req dto.NameRequest) (*domain.ProductFamily, error) {
	family := domain.ProductFamily{FamilyID: s.newID(), Name: strings.TrimSpace(req.Name)}
	if _, err := s.dispatch(ctx, workplaceID, engine.AddFamily{FamilyID: family.FamilyID, Name: family.Name}); err != nil {
		return nil, err
	}
	return &family, nil
}

// RenameFamily changes a family's name.
func (s *ledgerService) RenameFamily(ctx context.Context, workplaceID string, familyID string, req dto.NameRequest) (*domain.ProductFamily, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	var found bool
	for _, f := range state.Families {
		found = found || f.FamilyID == familyID
	}
	if !found {
		return nil, fmt.Errorf("%w: family %s", apperrors.ErrNotFound, familyID)
	}

	family := domain.ProductFamily{FamilyID: familyID, Name: strings.TrimSpace(req.Name)}
	if _, err := s.dispatch(ctx, workplaceID, engine.UpdateFamily{FamilyID: familyID, Name: family.Name}); err != nil {
		return nil, err
	}
	return &family, nil
}

// CreateCategory adds a category under an existing family.
func (s *ledgerService) CreateCategory(ctx context.Context, workplaceID string, req dto.CreateCategoryRequest) (*domain.ProductCategory, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	var found bool
	for _, f := range state.Families {
		found = found || f.FamilyID == req.FamilyID
	}
	if !found {
		return nil, fmt.Errorf("%w: unknown family %s", apperrors.ErrValidation, req.FamilyID)
	}

	category := domain.ProductCategory{CategoryID: s.newID(), FamilyID: req.FamilyID, Name: strings.TrimSpace(req.Name)}
	event := engine.AddCategory{CategoryID: category.CategoryID, FamilyID: category.FamilyID, Name: category.Name}
	if _, err := s.dispatch(ctx, workplaceID, event); err != nil {
		return nil, err
	}
	return &category, nil
}

// RenameCategory changes a category's name.
func (s *ledgerService) RenameCategory(ctx context.Context, workplaceID string, categoryID string, req dto.NameRequest) (*domain.ProductCategory, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	var category *domain.ProductCategory
	for i := range state.Categories {
		if state.Categories[i].CategoryID == categoryID {
			c := state.Categories[i]
			category = &c
		}
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}

	category.Name = strings.TrimSpace(req.Name)
	if _, err := s.dispatch(ctx, workplaceID, engine.UpdateCategory{CategoryID: categoryID, Name: category.Name}); err != nil {
		return nil, err
	}
	return category, nil
}

// CreateSubCategory adds a sub-category under an existing category.
func (s *ledgerService) CreateSubCategory(ctx context.Context, workplaceID string, req dto.CreateSubCategoryRequest) (*domain.ProductSubCategory, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	var found bool
	for _, c := range state.Categories {
		found = found || c.CategoryID == req.CategoryID
	}
	if !found {
		return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.CategoryID)
	}

	sub := domain.ProductSubCategory{SubCategoryID: s.newID(), CategoryID: req.CategoryID, Name: strings.TrimSpace(req.Name)}
	event := engine.AddSubCategory{SubCategoryID: sub.SubCategoryID, CategoryID: sub.CategoryID, Name: sub.Name}
	if _, err := s.dispatch(ctx, workplaceID, event); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RenameSubCategory changes a sub-category's name.
func (s *ledgerService) RenameSubCategory(ctx context.Context, workplaceID string, subCategoryID string, req dto.NameRequest) (*domain.ProductSubCategory, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	var sub *domain.ProductSubCategory
	for i := range state.SubCategories {
		if state.SubCategories[i].SubCategoryID == subCategoryID {
			c := state.SubCategories[i]
			sub = &c
		}
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: sub-category %s", apperrors.ErrNotFound, subCategoryID)
	}

	sub.Name = strings.TrimSpace(req.Name)
	if _, err := s.dispatch(ctx, workplaceID, engine.UpdateSubCategory{SubCategoryID: subCategoryID, Name: sub.Name}); err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateTaxRate adds a named VAT rate.
func (s *ledgerService) CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest) (*domain.TaxRate, error) {
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}
	rate := domain.TaxRate{TaxRateID: s.newID(), Name: strings.TrimSpace(req.Name), Rate: req.Rate}
	if _, err := s.dispatch(ctx, workplaceID, engine.AddTaxRate{TaxRate: rate}); err != nil {
		return nil, err
	}
	return &rate, nil
}

// DeleteTaxRate removes a VAT rate. Deleting an unknown rate is a no-op.
func (s *ledgerService) DeleteTaxRate(ctx context.Context, workplaceID string, taxRateID string) error {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return err
	}
	if _, ok := state.FindTaxRate(taxRateID); !ok {
		return nil
	}
	_, err = s.dispatch(ctx, workplaceID, engine.DeleteTaxRate{TaxRateID: taxRateID})
	return err
}

// UpdateCompany replaces the company identity. The currency defaults to EUR.
func (s *ledgerService) UpdateCompany(ctx context.Context, workplaceID string, req dto.UpdateCompanyRequest) (*domain.CompanySettings, error) {
	company := domain.CompanySettings{
		Name:      strings.TrimSpace(req.Name),
		Address:   req.Address,
		Zip:       req.Zip,
		City:      req.City,
		Country:   req.Country,
		Phone:     req.Phone,
		Email:     req.Email,
		Website:   req.Website,
		Siret:     req.Siret,
		VATNumber: req.VATNumber,
		Currency:  strings.ToUpper(req.Currency),
		LogoURL:   req.LogoURL,
	}
	if company.Currency == "" {
		company.Currency = "EUR"
	}
	if _, err := s.dispatch(ctx, workplaceID, engine.UpdateCompany{Company: company}); err != nil {
		return nil, err
	}
	return &company, nil
}

// SaveUser creates or replaces an operator. New users are active unless stated otherwise.
func (s *ledgerService) SaveUser(ctx context.Context, workplaceID string, req dto.SaveUserRequest) (*domain.User, error) {
	user := domain.User{
		UserID: s.idOr(req.UserID),
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Role:   req.Role,
		Active: req.Active == nil || *req.Active,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.dispatch(ctx, workplaceID, engine.SaveUser{User: user}); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an operator. Deleting an unknown user is a no-op.
func (s *ledgerService) DeleteUser(ctx context.Context, workplaceID string, userID string) error {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return err
	}
	if _, ok := state.FindUser(userID); !ok {
		return nil
	}
	_, err = s.dispatch(ctx, workplaceID, engine.DeleteUser{UserID: userID})
	return err
}
