package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles products, their taxonomy, tax rates, company settings and users.
type catalogHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newCatalogHandler(ls portssvc.LedgerSvcFacade) *catalogHandler {
	return &catalogHandler{ledgerService: ls}
}

// RegisterCatalogRoutes registers catalog and settings routes under a workplace group.
func RegisterCatalogRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newCatalogHandler(ledgerService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.saveProduct)
	}

	families := rg.Group("/families")
	{
		families.GET("", h.listFamilies)
		families.POST("", h.createFamily)
		families.PUT("/:family_id", h.renameFamily)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PUT("/:category_id", h.renameCategory)
	}

	subCategories := rg.Group("/subcategories")
	{
		subCategories.GET("", h.listSubCategories)
		subCategories.POST("", h.createSubCategory)
		subCategories.PUT("/:subcategory_id", h.renameSubCategory)
	}

	taxRates := rg.Group("/tax-rates")
	{
		taxRates.GET("", h.listTaxRates)
		taxRates.POST("", h.createTaxRate)
		taxRates.DELETE("/:tax_rate_id", h.deleteTaxRate)
	}

	rg.GET("/company", h.getCompany)
	rg.PUT("/company", h.updateCompany)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.saveUser)
		users.GET("/lookup", h.findUserByEmail)
		users.DELETE("/:user_id", h.deleteUser)
	}
}

// state loads the workplace state, answering with an error on failure.
func (h *catalogHandler) state(c *gin.Context) (*engine.State, bool) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return nil, false
	}
	state, err := h.ledgerService.GetState(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to load workplace")
		return nil, false
	}
	return state, true
}

// nonNil keeps JSON arrays from being rendered as null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// listProducts godoc
// @Summary List products
// @Description Lists products with their "Category > Sub-category" label
// @Tags catalog
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.ListProductsResponse
// @Router /workplaces/{workplace_id}/products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	products, err := h.ledgerService.ListProducts(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: nonNil(products)})
}

// saveProduct godoc
// @Summary Save a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param product body dto.SaveProductRequest true "Product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/products [post]
func (h *catalogHandler) saveProduct(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.SaveProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	product, err := h.ledgerService.SaveProduct(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save product")
		return
	}
	logger.Info("Product saved", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusOK, product)
}

func (h *catalogHandler) listFamilies(c *gin.Context) {
	if state, ok := h.state(c); ok {
		c.JSON(http.StatusOK, nonNil(state.Families))
	}
}

func (h *catalogHandler) createFamily(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	family, err := h.ledgerService.CreateFamily(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create family")
		return
	}
	c.JSON(http.StatusCreated, family)
}

func (h *catalogHandler) renameFamily(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	family, err := h.ledgerService.RenameFamily(c.Request.Context(), workplaceID, c.Param("family_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename family")
		return
	}
	c.JSON(http.StatusOK, family)
}

func (h *catalogHandler) listCategories(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	familyID := c.Query("familyID")
	categories := make([]domain.ProductCategory, 0, len(state.Categories))
	for _, cat := range state.Categories {
		if familyID == "" || cat.FamilyID == familyID {
			categories = append(categories, cat)
		}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *catalogHandler) createCategory(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	category, err := h.ledgerService.CreateCategory(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *catalogHandler) renameCategory(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	category, err := h.ledgerService.RenameCategory(c.Request.Context(), workplaceID, c.Param("category_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *catalogHandler) listSubCategories(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	categoryID := c.Query("categoryID")
	subCategories := make([]domain.ProductSubCategory, 0, len(state.SubCategories))
	for _, sub := range state.SubCategories {
		if categoryID == "" || sub.CategoryID == categoryID {
			subCategories = append(subCategories, sub)
		}
	}
	c.JSON(http.StatusOK, subCategories)
}

func (h *catalogHandler) createSubCategory(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.CreateSubCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	sub, err := h.ledgerService.CreateSubCategory(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create sub-category")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *catalogHandler) renameSubCategory(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	sub, err := h.ledgerService.RenameSubCategory(c.Request.Context(), workplaceID, c.Param("subcategory_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to rename sub-category")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *catalogHandler) listTaxRates(c *gin.Context) {
	if state, ok := h.state(c); ok {
		c.JSON(http.StatusOK, nonNil(state.TaxRates))
	}
}

func (h *catalogHandler) createTaxRate(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.CreateTaxRateRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	rate, err := h.ledgerService.CreateTaxRate(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create tax rate")
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *catalogHandler) deleteTaxRate(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteTaxRate(c.Request.Context(), workplaceID, c.Param("tax_rate_id")); err != nil {
		respondError(c, logger, err, "Failed to delete tax rate")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *catalogHandler) getCompany(c *gin.Context) {
	if state, ok := h.state(c); ok {
		c.JSON(http.StatusOK, state.Company)
	}
}

// updateCompany godoc
// @Summary Update company settings
// @Description Replaces the company identity printed on documents
// @Tags settings
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param company body dto.UpdateCompanyRequest true "Company settings"
// @Success 200 {object} domain.CompanySettings
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/company [put]
func (h *catalogHandler) updateCompany(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	company, err := h.ledgerService.UpdateCompany(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *catalogHandler) listUsers(c *gin.Context) {
	if state, ok := h.state(c); ok {
		c.JSON(http.StatusOK, nonNil(state.Users))
	}
}

func (h *catalogHandler) saveUser(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.SaveUserRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	user, err := h.ledgerService.SaveUser(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// findUserByEmail matches an active user by email. It does not authenticate anyone.
func (h *catalogHandler) findUserByEmail(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	user, err := h.ledgerService.FindUserByEmail(c.Request.Context(), workplaceID, email)
	if err != nil {
		respondError(c, logger, err, "Failed to find user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *catalogHandler) deleteUser(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteUser(c.Request.Context(), workplaceID, c.Param("user_id")); err != nil {
		respondError(c, logger, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
