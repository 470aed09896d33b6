package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCashSession_Lifecycle(t *testing.T) {
	openedAt := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	closedAt := openedAt.Add(10 * time.Hour)

	session := domain.OpenCashSession("s1", dec("500"), openedAt)
	assert.True(t, session.IsOpen())
	assert.True(t, session.TheoreticalBalance().Equal(dec("500")))

	session, err := session.RecordPayment(dec("200"), true)
	require.NoError(t, err)
	session, err = session.RecordPayment(dec("30"), true)
	require.NoError(t, err)
	session, err = session.RecordExpense(dec("30"))
	require.NoError(t, err)

	assert.True(t, session.TotalIn.Equal(dec("230")))
	assert.True(t, session.TotalOut.Equal(dec("30")))
	assert.True(t, session.TheoreticalBalance().Equal(dec("700")))

	closed, err := session.Close(dec("695"), closedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	assert.Equal(t, closedAt, *closed.ClosedAt)
	require.NotNil(t, closed.ClosingBalance)
	assert.True(t, closed.ClosingBalance.Equal(dec("700")))
	require.NotNil(t, closed.ActualBalance)
	assert.True(t, closed.ActualBalance.Equal(dec("695")))
	require.NotNil(t, closed.Difference)
	assert.True(t, closed.Difference.Equal(dec("-5")))

	// the open value is left untouched
	assert.True(t, session.IsOpen())
}

func TestCashSession_ClosedRejectsFlows(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	closed, err := domain.OpenCashSession("s1", decimal.Zero, now).Close(decimal.Zero, now)
	require.NoError(t, err)

	_, err = closed.RecordPayment(dec("10"), true)
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)

	_, err = closed.RecordExpense(dec("10"))
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)

	_, err = closed.Close(dec("10"), now)
	assert.ErrorIs(t, err, apperrors.ErrSessionClosed)
}

func TestCashSession_SurplusDifference(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	closed, err := domain.OpenCashSession("s1", dec("100"), now).Close(dec("112.50"), now)
	require.NoError(t, err)
	assert.True(t, closed.Difference.Equal(dec("12.5")))
}
