package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductFamily is the top level of the product taxonomy.
type ProductFamily struct {
	FamilyID string `json:"familyID"`
	Name     string `json:"name"`
}

// ProductCategory belongs to a family.
type ProductCategory struct {
	CategoryID string `json:"categoryID"`
	FamilyID   string `json:"familyID"`
	Name       string `json:"name"`
}

// ProductSubCategory belongs to a category.
type ProductSubCategory struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

// TaxRate is a named VAT rate in percent.
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
}

// Product is a stocked article.
type Product struct {
	ProductID     string          `json:"productID" validate:"required"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price"` // Sale price excluding tax
	Cost          decimal.Decimal `json:"cost"`
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"minStock"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	FamilyID      string          `json:"familyID,omitempty"`
	CategoryID    string          `json:"categoryID,omitempty"`
	SubCategoryID string          `json:"subCategoryID,omitempty"`
	CategoryLabel string          `json:"categoryLabel"`
}

// Validate checks the product's required fields.
func (p Product) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.TaxRate.IsNegative() {
		return validationErrorf("tax rate must not be negative for product %s", p.ProductID)
	}
	return nil
}

// IsLowStock reports whether the product is at or below its alert threshold.
func (p Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}

// ResolveTaxRate returns the tax rate of the product, or fallback when the product
// is unknown or carries no rate.
func ResolveTaxRate(products []Product, productID string, fallback decimal.Decimal) decimal.Decimal {
	for _, p := range products {
		if p.ProductID == productID {
			if p.TaxRate.IsZero() {
				return fallback
			}
			return p.TaxRate
		}
	}
	return fallback
}

// CategoryLabel builds the "Category > SubCategory" label shown for a product,
// falling back to the family name when no category is set.
func CategoryLabel(families []ProductFamily, categories []ProductCategory, subCategories []ProductSubCategory, product Product) string {
	var parts []string
	if product.CategoryID != "" {
		for _, c := range categories {
			if c.CategoryID == product.CategoryID {
				parts = append(parts, c.Name)
				break
			}
		}
	}
	if product.SubCategoryID != "" {
		for _, s := range subCategories {
			if s.SubCategoryID == product.SubCategoryID {
				parts = append(parts, s.Name)
				break
			}
		}
	}
	if len(parts) == 0 && product.FamilyID != "" {
		for _, f := range families {
			if f.FamilyID == product.FamilyID {
				parts = append(parts, f.Name)
				break
			}
		}
	}
	return strings.Join(parts, " > ")
}
