package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// treasuryHandler handles payments, expenses and the cash drawer.
type treasuryHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvc
}

func newTreasuryHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc) *treasuryHandler {
	return &treasuryHandler{
		ledgerService:    ls,
		reportingService: rs,
	}
}

// RegisterTreasuryRoutes registers payment, expense and cash session routes under a workplace group.
func RegisterTreasuryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvc) {
	h := newTreasuryHandler(ledgerService, reportingService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.addPayment)
		payments.DELETE("/:payment_id", h.deletePayment)
		payments.PATCH("/:payment_id/status", h.updatePaymentStatus)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.addExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}

	sessions := rg.Group("/cash-sessions")
	{
		sessions.POST("", h.openCashSession)
		sessions.GET("/current", h.getCurrentCashSession)
		sessions.GET("/history", h.listCashSessionHistory)
		sessions.POST("/:session_id/close", h.closeCashSession)
	}
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments newest first, optionally for one partner or one document
// @Tags payments
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param partnerID query string false "Partner ID"
// @Param documentID query string false "Document ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Router /workplaces/{workplace_id}/payments [get]
func (h *treasuryHandler) listPayments(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	payments, err := h.ledgerService.ListPayments(c.Request.Context(), workplaceID, c.Query("partnerID"), c.Query("documentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// addPayment godoc
// @Summary Record a payment
// @Description Records a settlement. Cash payments feed the open cash session; a linked document is marked PAID once settled.
// @Tags payments
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param payment body dto.AddPaymentRequest true "Payment"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/payments [post]
func (h *treasuryHandler) addPayment(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.AddPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	payment, err := h.ledgerService.AddPayment(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("method", string(payment.Method)),
		slog.String("amount", payment.Amount.String()))
	c.JSON(http.StatusCreated, payment)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment. Session totals and document statuses are left as they are.
// @Tags payments
// @Param workplace_id path string true "Workplace ID"
// @Param payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Router /workplaces/{workplace_id}/payments/{payment_id} [delete]
func (h *treasuryHandler) deletePayment(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeletePayment(c.Request.Context(), workplaceID, c.Param("payment_id")); err != nil {
		respondError(c, logger, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// updatePaymentStatus godoc
// @Summary Set a check's clearing status
// @Tags payments
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param payment_id path string true "Payment ID"
// @Param status body dto.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /workplaces/{workplace_id}/payments/{payment_id}/status [patch]
func (h *treasuryHandler) updatePaymentStatus(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	payment, err := h.ledgerService.UpdatePaymentStatus(c.Request.Context(), workplaceID, c.Param("payment_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// listExpenses godoc
// @Summary Expense report
// @Description Lists expenses of the period with their total
// @Tags expenses
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.ExpenseReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/expenses [get]
func (h *treasuryHandler) listExpenses(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	from, to, ok := queryPeriod(c, logger)
	if !ok {
		return
	}
	report, err := h.reportingService.ExpenseReport(c.Request.Context(), workplaceID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, report)
}

// addExpense godoc
// @Summary Record an expense
// @Description Records an operating expense. Cash expenses leave the open drawer.
// @Tags expenses
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param expense body dto.AddExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/expenses [post]
func (h *treasuryHandler) addExpense(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.AddExpenseRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	expense, err := h.ledgerService.AddExpense(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *treasuryHandler) deleteExpense(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteExpense(c.Request.Context(), workplaceID, c.Param("expense_id")); err != nil {
		respondError(c, logger, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// openCashSession godoc
// @Summary Open the cash drawer
// @Description Opens a cash session with a float. Only one session may be open at a time.
// @Tags cash
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param session body dto.OpenCashSessionRequest true "Opening float"
// @Success 201 {object} dto.CashSessionResponse
// @Failure 409 {object} map[string]string "A session is already open"
// @Router /workplaces/{workplace_id}/cash-sessions [post]
func (h *treasuryHandler) openCashSession(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.OpenCashSessionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	session, err := h.ledgerService.OpenCashSession(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to open cash session")
		return
	}
	logger.Info("Cash session opened", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToCashSessionResponse(session))
}

// getCurrentCashSession godoc
// @Summary Current cash session
// @Tags cash
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.CashSessionResponse
// @Failure 404 {object} map[string]string "No open session"
// @Router /workplaces/{workplace_id}/cash-sessions/current [get]
func (h *treasuryHandler) getCurrentCashSession(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	session, err := h.reportingService.CurrentCashSession(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cash session")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}

func (h *treasuryHandler) listCashSessionHistory(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	from, to, ok := queryPeriod(c, logger)
	if !ok {
		return
	}
	sessions, err := h.reportingService.CashSessionHistory(c.Request.Context(), workplaceID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list cash sessions")
		return
	}
	resp := make([]dto.CashSessionResponse, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, dto.ToCashSessionResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// closeCashSession godoc
// @Summary Close the cash drawer
// @Description Records the counted balance; the difference with the theoretical balance is kept on the session
// @Tags cash
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param session_id path string true "Session ID"
// @Param count body dto.CloseCashSessionRequest true "Counted balance"
// @Success 200 {object} dto.CashSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session already closed"
// @Router /workplaces/{workplace_id}/cash-sessions/{session_id}/close [post]
func (h *treasuryHandler) closeCashSession(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.CloseCashSessionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	session, err := h.ledgerService.CloseCashSession(c.Request.Context(), workplaceID, c.Param("session_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to close cash session")
		return
	}
	logger.Info("Cash session closed",
		slog.String("session_id", session.SessionID),
		slog.String("difference", session.Difference.String()))
	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}
