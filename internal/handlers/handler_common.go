package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// respondError maps service errors to HTTP status codes. Business-rule refusals
// are logged as warnings, everything else as errors with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code != 0:
		level := slog.LevelWarn
		if appErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, failure, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrReferenced),
		errors.Is(err, apperrors.ErrSessionAlreadyOpen),
		errors.Is(err, apperrors.ErrSessionClosed):
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}

// requestScope returns the workplace of the request and a logger tagged with it.
func requestScope(c *gin.Context) (string, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, ok := middleware.GetWorkplaceIDFromContext(c)
	if !ok {
		logger.Error("Workplace ID not found in context")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workplace ID required in path"})
		return "", logger, false
	}
	return workplaceID, logger.With(slog.String("workplace_id", workplaceID)), true
}

// bindJSON decodes the request body, answering 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// queryDate parses a YYYY-MM-DD query parameter, defaulting to fallback when absent.
func queryDate(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, use YYYY-MM-DD", key, raw)
	}
	return t, nil
}

// queryPeriod reads fromDate and toDate, defaulting to the current month so far.
func queryPeriod(c *gin.Context, logger *slog.Logger) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	from, err := queryDate(c, "fromDate", firstDayOfMonth)
	if err == nil {
		var to time.Time
		if to, err = queryDate(c, "toDate", now); err == nil {
			return from, to, true
		}
	}
	logger.Warn("Invalid period", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return time.Time{}, time.Time{}, false
}

// displayCurrency returns the company currency of the workplace, or fallback when none is set.
func displayCurrency(c *gin.Context, ledger portssvc.LedgerReaderSvc, workplaceID string, fallback string) string {
	state, err := ledger.GetState(c.Request.Context(), workplaceID)
	if err != nil || state.Company.Currency == "" {
		return fallback
	}
	return state.Company.Currency
}
