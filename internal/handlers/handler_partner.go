package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles HTTP requests related to clients and suppliers.
type partnerHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvc
	currency         string
}

func newPartnerHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc, currency string) *partnerHandler {
	return &partnerHandler{
		ledgerService:    ls,
		reportingService: rs,
		currency:         currency,
	}
}

// RegisterPartnerRoutes registers routes related to partners under a workplace group.
func RegisterPartnerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvc, currency string) {
	h := newPartnerHandler(ledgerService, reportingService, currency)

	partners := rg.Group("/partners")
	{
		partners.GET("", h.listPartners)
		partners.POST("", h.savePartner)
		partners.DELETE("/:partner_id", h.deletePartner)
		partners.GET("/:partner_id/summary", h.getPartnerSummary)
		partners.GET("/:partner_id/balance", h.getPartnerBalance)
		partners.GET("/:partner_id/statement", h.getPartnerStatement)
		partners.GET("/:partner_id/payments", h.listPartnerPayments)
	}
}

// listPartners returns the workplace's partners, optionally of one type.
func (h *partnerHandler) listPartners(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	state, err := h.ledgerService.GetState(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to list partners")
		return
	}

	partnerType := domain.PartnerType(strings.ToUpper(c.Query("type")))
	partners := make([]domain.Partner, 0, len(state.Partners))
	for _, p := range state.Partners {
		if partnerType == "" || p.Type == partnerType {
			partners = append(partners, p)
		}
	}
	c.JSON(http.StatusOK, dto.ListPartnersResponse{Partners: partners})
}

// savePartner godoc
// @Summary Save a partner
// @Description Creates a client or supplier, or replaces it when partnerID is set
// @Tags partners
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param partner body dto.SavePartnerRequest true "Partner"
// @Success 200 {object} domain.Partner
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/partners [post]
func (h *partnerHandler) savePartner(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.SavePartnerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	partner, err := h.ledgerService.SavePartner(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save partner")
		return
	}
	logger.Info("Partner saved", slog.String("partner_id", partner.PartnerID))
	c.JSON(http.StatusOK, partner)
}

// deletePartner godoc
// @Summary Delete a partner
// @Description Removes a partner that no document or payment refers to
// @Tags partners
// @Param workplace_id path string true "Workplace ID"
// @Param partner_id path string true "Partner ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Partner still referenced"
// @Router /workplaces/{workplace_id}/partners/{partner_id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeletePartner(c.Request.Context(), workplaceID, c.Param("partner_id")); err != nil {
		respondError(c, logger, err, "Failed to delete partner")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPartnerSummary godoc
// @Summary Partner balance summary
// @Description Returns the partner with its invoiced, credited and paid totals and its current balance
// @Tags partners
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param partner_id path string true "Partner ID"
// @Success 200 {object} dto.PartnerBalanceResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Router /workplaces/{workplace_id}/partners/{partner_id}/summary [get]
func (h *partnerHandler) getPartnerSummary(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	partner, summary, err := h.reportingService.PartnerSummary(c.Request.Context(), workplaceID, c.Param("partner_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute partner balance")
		return
	}
	currency := displayCurrency(c, h.ledgerService, workplaceID, h.currency)
	c.JSON(http.StatusOK, dto.ToPartnerBalanceResponse(partner, summary, currency))
}

// getPartnerBalance godoc
// @Summary Partner balance at a date
// @Description Returns the balance at the end of the asOf day
// @Tags partners
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param partner_id path string true "Partner ID"
// @Param asOf query string false "Cutoff date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceAsOfResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Router /workplaces/{workplace_id}/partners/{partner_id}/balance [get]
func (h *partnerHandler) getPartnerBalance(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	asOf, err := queryDate(c, "asOf", time.Now().UTC())
	if err != nil {
		logger.Warn("Invalid asOf date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	partnerID := c.Param("partner_id")

	balance, err := h.reportingService.PartnerBalanceAsOf(c.Request.Context(), workplaceID, partnerID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to compute partner balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceAsOfResponse{
		PartnerID: partnerID,
		AsOf:      asOf.Format(dateLayout),
		Balance:   balance,
	})
}

// getPartnerStatement godoc
// @Summary Partner statement
// @Description Builds the partner ledger for a period of whole days with opening and closing balances
// @Tags partners
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param partner_id path string true "Partner ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Router /workplaces/{workplace_id}/partners/{partner_id}/statement [get]
func (h *partnerHandler) getPartnerStatement(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	from, to, ok := queryPeriod(c, logger)
	if !ok {
		return
	}

	partner, statement, err := h.reportingService.PartnerStatement(c.Request.Context(), workplaceID, c.Param("partner_id"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build partner statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(statement, partner.Name))
}

func (h *partnerHandler) listPartnerPayments(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	payments, err := h.ledgerService.ListPayments(c.Request.Context(), workplaceID, c.Param("partner_id"), "")
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
