package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to business reports
type reportingHandler struct {
	ledgerService    portssvc.LedgerReaderSvc
	reportingService portssvc.ReportingSvc
	currency         string
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(ls portssvc.LedgerReaderSvc, rs portssvc.ReportingSvc, currency string) *reportingHandler {
	return &reportingHandler{
		ledgerService:    ls,
		reportingService: rs,
		currency:         currency,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, reportingService portssvc.ReportingSvc, currency string) {
	h := newReportingHandler(ledgerService, reportingService, currency)

	// Routes for reports are nested under a specific workplace
	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/stock-journal", h.getStockJournal)
		reportingGroup.GET("/checks", h.getCheckRegister)
	}
}

// getDashboard godoc
// @Summary Dashboard
// @Description Returns total sales, stock value, low stock count and financial alerts
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /workplaces/{workplace_id}/reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	logger.Info("Received request to generate dashboard")

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}
	currency := displayCurrency(c, h.ledgerService, workplaceID, h.currency)
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard, currency))
}

// getStockJournal godoc
// @Summary Stock journal
// @Description Lists goods movements implied by posted documents within a period
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {array} domain.StockMovement
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/reports/stock-journal [get]
func (h *reportingHandler) getStockJournal(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	from, to, ok := queryPeriod(c, logger)
	if !ok {
		return
	}

	moves, err := h.reportingService.StockJournal(c.Request.Context(), workplaceID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to generate stock journal")
		return
	}
	logger.Info("Stock journal generated", slog.Int("movement_count", len(moves)))
	c.JSON(http.StatusOK, moves)
}

// getCheckRegister godoc
// @Summary Check register
// @Description Returns pending checks with client and supplier totals, and those overdue today
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.CheckRegisterResponse
// @Router /workplaces/{workplace_id}/reports/checks [get]
func (h *reportingHandler) getCheckRegister(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	summary, pending, overdue, err := h.reportingService.CheckRegister(c.Request.Context(), workplaceID, time.Now())
	if err != nil {
		respondError(c, logger, err, "Failed to generate check register")
		return
	}
	c.JSON(http.StatusOK, dto.CheckRegisterResponse{
		Summary: *summary,
		Pending: nonNil(pending),
		Overdue: nonNil(overdue),
	})
}
