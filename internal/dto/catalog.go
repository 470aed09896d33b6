package dto

import (
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveProductRequest creates a product, or replaces it when ProductID is set.
type SaveProductRequest struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"minStock"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	FamilyID      string          `json:"familyID"`
	CategoryID    string          `json:"categoryID"`
	SubCategoryID string          `json:"subCategoryID"`
}

// NameRequest renames a family, category or sub-category, or creates a family.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategoryRequest adds a category under a family.
type CreateCategoryRequest struct {
	FamilyID string `json:"familyID" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// CreateSubCategoryRequest adds a sub-category under a category.
type CreateSubCategoryRequest struct {
	CategoryID string `json:"categoryID" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// CreateTaxRateRequest adds a named VAT rate.
type CreateTaxRateRequest struct {
	Name string          `json:"name" binding:"required"`
	Rate decimal.Decimal `json:"rate"`
}

// ListProductsResponse wraps a list of products.
type ListProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// UpdateCompanyRequest replaces the company identity.
type UpdateCompanyRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Website   string `json:"website"`
	Siret     string `json:"siret"`
	VATNumber string `json:"vatNumber"`
	Currency  string `json:"currency" binding:"omitempty,oneof=EUR USD TND"`
	LogoURL   string `json:"logoURL"`
}

// SaveUserRequest creates a user, or replaces it when UserID is set.
type SaveUserRequest struct {
	UserID string      `json:"userID"`
	Name   string      `json:"name" binding:"required"`
	Email  string      `json:"email" binding:"required,email"`
	Role   domain.Role `json:"role" binding:"required,oneof=ADMIN SALES STOCK PURCHASES"`
	Active *bool       `json:"active"` // Defaults to true
}
