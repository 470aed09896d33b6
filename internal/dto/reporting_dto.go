package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// StatementResponse represents a partner statement report response
type StatementResponse struct {
	PartnerID      string                 `json:"partnerID"`
	PartnerName    string                 `json:"partnerName"`
	FromDate       string                 `json:"fromDate"`
	ToDate         string                 `json:"toDate"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	Transactions   []domain.StatementLine `json:"transactions"`
	Totals         struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse DTO
func ToStatementResponse(statement *domain.Statement, partnerName string) StatementResponse {
	resp := StatementResponse{
		PartnerID:      statement.PartnerID,
		PartnerName:    partnerName,
		FromDate:       statement.PeriodStart.Format("2006-01-02"),
		ToDate:         statement.PeriodEnd.Format("2006-01-02"),
		OpeningBalance: statement.OpeningBalance,
		Transactions:   statement.Transactions,
		ClosingBalance: statement.ClosingBalance,
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.StatementLine{}
	}
	resp.Totals.Debit = statement.TotalDebit
	resp.Totals.Credit = statement.TotalCredit
	return resp
}

// BalanceAsOfResponse represents a partner balance at a cutoff date
type BalanceAsOfResponse struct {
	PartnerID string          `json:"partnerID"`
	AsOf      string          `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// DashboardResponse represents the dashboard with display-ready amounts
type DashboardResponse struct {
	domain.Dashboard
	TotalSalesLabel string `json:"totalSalesLabel"`
	StockValueLabel string `json:"stockValueLabel"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d *domain.Dashboard, currency string) DashboardResponse {
	return DashboardResponse{
		Dashboard:       *d,
		TotalSalesLabel: utils.FormatAmount(d.TotalSales, currency),
		StockValueLabel: utils.FormatAmount(d.StockValue, currency),
	}
}

// CheckRegisterResponse represents pending checks with their totals
type CheckRegisterResponse struct {
	Summary domain.CheckSummary `json:"summary"`
	Pending []domain.Payment    `json:"pending"`
	Overdue []domain.Payment    `json:"overdue"`
}

// EventRecordResponse represents one entry of the event log
type EventRecordResponse struct {
	Sequence   int64           `json:"sequence"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// ListEventsResponse represents a page of the event log
type ListEventsResponse struct {
	Events    []EventRecordResponse `json:"events"`
	NextToken string                `json:"nextToken,omitempty"`
}

// ToListEventsResponse converts event records to a ListEventsResponse DTO
func ToListEventsResponse(records []domain.EventRecord, nextToken string) ListEventsResponse {
	resp := ListEventsResponse{Events: make([]EventRecordResponse, 0, len(records)), NextToken: nextToken}
	for _, rec := range records {
		resp.Events = append(resp.Events, EventRecordResponse{
			Sequence:   rec.Sequence,
			Type:       rec.Type,
			Payload:    rec.Payload,
			RecordedAt: rec.RecordedAt,
		})
	}
	return resp
}
