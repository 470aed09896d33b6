package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/SscSPs/trade_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// ledgerHandler exposes the raw event log and the state it folds into.
type ledgerHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func newLedgerHandler(ls portssvc.LedgerReaderSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers event log routes under a workplace group.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/events", h.listEvents)
	rg.GET("/state", h.getState)
}

// listEvents godoc
// @Summary List events
// @Description Pages through the workplace's event log in sequence order. Replaying every event rebuilds the state.
// @Tags ledger
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces/{workplace_id}/events [get]
func (h *ledgerHandler) listEvents(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	limit := pagination.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}
	limit = pagination.ClampLimit(limit)

	after, err := pagination.DecodeSequenceToken(c.Query("nextToken"))
	if err != nil {
		logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
		return
	}

	records, next, err := h.ledgerService.ListEvents(c.Request.Context(), workplaceID, after, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list events")
		return
	}

	var nextToken string
	if next > 0 {
		nextToken = pagination.EncodeSequenceToken(next)
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(records, nextToken))
}

// getState returns the whole current state of the workplace.
func (h *ledgerHandler) getState(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	state, err := h.ledgerService.GetState(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, logger, err, "Failed to load workplace state")
		return
	}
	c.JSON(http.StatusOK, state)
}
