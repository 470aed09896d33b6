package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/SscSPs/trade_ledger/internal/handlers"
	"github.com/SscSPs/trade_ledger/internal/middleware"
	"github.com/SscSPs/trade_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testWorkplaceID = "wp-1"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockLedger    *MockLedgerService
	mockReporting *MockReportingService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedger = new(MockLedgerService)
	suite.mockReporting = new(MockReportingService)

	workplace := suite.router.Group("/api/v1/workplaces/:"+middleware.WorkplaceParam, middleware.WorkplaceScope())
	handlers.RegisterDocumentRoutes(workplace, suite.mockLedger, suite.mockReporting)
	handlers.RegisterPartnerRoutes(workplace, suite.mockLedger, suite.mockReporting, "EUR")
	handlers.RegisterCatalogRoutes(workplace, suite.mockLedger)
	handlers.RegisterTreasuryRoutes(workplace, suite.mockLedger, suite.mockReporting)
	handlers.RegisterReportingRoutes(workplace, suite.mockLedger, suite.mockReporting, "EUR")
	handlers.RegisterLedgerRoutes(workplace, suite.mockLedger)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, "/api/v1/workplaces/"+testWorkplaceID+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestSaveDocument_Success() {
	body := gin.H{
		"type":      "INVOICE",
		"partnerID": "c1",
		"items":     []gin.H{{"productName": "Widget", "quantity": "12", "unitPrice": "100", "taxRate": "20"}},
	}
	saved := &domain.Document{
		DocumentID: "d1", Type: domain.Invoice, PartnerID: "c1", Status: domain.StatusDraft,
		TotalHT: dec("1200"), Tax: dec("240"), TotalTTC: dec("1440"),
	}
	suite.mockLedger.On("SaveDocument", mock.Anything, testWorkplaceID, mock.MatchedBy(func(req dto.SaveDocumentRequest) bool {
		return req.Type == domain.Invoice && req.PartnerID == "c1" && len(req.Items) == 1 &&
			req.Items[0].UnitPrice != nil && req.Items[0].UnitPrice.Equal(dec("100"))
	})).Return(saved, nil).Once()

	w := suite.do(http.MethodPost, "/documents", body)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var got domain.Document
	suite.decode(w, &got)
	suite.Equal("d1", got.DocumentID)
	suite.True(got.TotalTTC.Equal(dec("1440")))
}

func (suite *HandlerTestSuite) TestSaveDocument_BindingError() {
	w := suite.do(http.MethodPost, "/documents", gin.H{"partnerID": "c1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSaveDocument_ValidationError() {
	suite.mockLedger.On("SaveDocument", mock.Anything, testWorkplaceID, mock.AnythingOfType("dto.SaveDocumentRequest")).
		Return(nil, fmt.Errorf("%w: unknown partner ghost", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/documents", gin.H{"type": "QUOTE", "partnerID": "ghost"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unknown partner")
}

func (suite *HandlerTestSuite) TestListDocuments_TypeFilter() {
	suite.mockLedger.On("ListDocuments", mock.Anything, testWorkplaceID, domain.Invoice).Return([]domain.Document(nil), nil).Once()

	w := suite.do(http.MethodGet, "/documents?type=invoice", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"documents":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetDocument_NotFound() {
	suite.mockLedger.On("GetDocument", mock.Anything, testWorkplaceID, "ghost").
		Return(nil, fmt.Errorf("%w: document ghost", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/documents/ghost", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetDocument_WithProgress() {
	doc := &domain.Document{DocumentID: "d1", TotalTTC: dec("1440")}
	suite.mockLedger.On("GetDocument", mock.Anything, testWorkplaceID, "d1").Return(doc, nil).Once()
	suite.mockReporting.On("DocumentPaymentProgress", mock.Anything, testWorkplaceID, "d1").
		Return(&domain.PaymentProgress{DocumentID: "d1", Paid: dec("440"), Remaining: dec("1000")}, nil).Once()

	w := suite.do(http.MethodGet, "/documents/d1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DocumentResponse
	suite.decode(w, &got)
	suite.True(got.Paid.Equal(dec("440")))
	suite.True(got.Remaining.Equal(dec("1000")))
}

func (suite *HandlerTestSuite) TestConvertDocument() {
	converted := &domain.Document{DocumentID: "d2", Type: domain.CreditNote, Reference: "BROUILLON", Status: domain.StatusDraft}
	suite.mockLedger.On("ConvertDocument", mock.Anything, testWorkplaceID, "d1",
		dto.ConvertDocumentRequest{TargetType: domain.CreditNote}).Return(converted, nil).Once()

	w := suite.do(http.MethodPost, "/documents/d1/convert", gin.H{"targetType": "CREDIT_NOTE"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"reference":"BROUILLON"`)
}

func (suite *HandlerTestSuite) TestConvertDocument_InvalidTarget() {
	w := suite.do(http.MethodPost, "/documents/d1/convert", gin.H{"targetType": "RECEIPT"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeletePartner_Referenced() {
	suite.mockLedger.On("DeletePartner", mock.Anything, testWorkplaceID, "c1").
		Return(fmt.Errorf("%w: partner c1 has 1 documents and 0 payments", apperrors.ErrReferenced)).Once()

	w := suite.do(http.MethodDelete, "/partners/c1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDeletePartner_Success() {
	suite.mockLedger.On("DeletePartner", mock.Anything, testWorkplaceID, "c1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/partners/c1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestPartnerSummary_UsesCompanyCurrency() {
	partner := &domain.Partner{PartnerID: "c1", Name: "Client One", Type: domain.Client}
	summary := &domain.PartnerSummary{PartnerID: "c1", Balance: dec("150")}
	suite.mockReporting.On("PartnerSummary", mock.Anything, testWorkplaceID, "c1").Return(partner, summary, nil).Once()
	suite.mockLedger.On("GetState", mock.Anything, testWorkplaceID).
		Return(&engine.State{Company: domain.CompanySettings{Currency: "USD"}}, nil).Once()

	w := suite.do(http.MethodGet, "/partners/c1/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.PartnerBalanceResponse
	suite.decode(w, &got)
	suite.Equal("Debtor 150.00 $", got.Label)
}

func (suite *HandlerTestSuite) TestPartnerStatement() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	partner := &domain.Partner{PartnerID: "c1", Name: "Client One"}
	statement := &domain.Statement{
		PartnerID:      "c1",
		PeriodStart:    from,
		PeriodEnd:      to,
		OpeningBalance: dec("150"),
		ClosingBalance: dec("150"),
	}
	suite.mockReporting.On("PartnerStatement", mock.Anything, testWorkplaceID, "c1", from, to).Return(partner, statement, nil).Once()

	w := suite.do(http.MethodGet, "/partners/c1/statement?fromDate=2024-03-01&toDate=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.StatementResponse
	suite.decode(w, &got)
	suite.Equal("Client One", got.PartnerName)
	suite.Equal("2024-03-01", got.FromDate)
	suite.NotNil(got.Transactions)
}

func (suite *HandlerTestSuite) TestPartnerStatement_InvalidDate() {
	w := suite.do(http.MethodGet, "/partners/c1/statement?fromDate=01/03/2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPartnerBalanceAsOf() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockReporting.On("PartnerBalanceAsOf", mock.Anything, testWorkplaceID, "c1", asOf).Return(dec("-20"), nil).Once()

	w := suite.do(http.MethodGet, "/partners/c1/balance?asOf=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.BalanceAsOfResponse
	suite.decode(w, &got)
	suite.Equal("2024-03-31", got.AsOf)
	suite.True(got.Balance.Equal(dec("-20")))
}

func (suite *HandlerTestSuite) TestAddPayment() {
	payment := &domain.Payment{PaymentID: "p1", Amount: dec("200"), Method: domain.MethodCash, Status: domain.PaymentCleared}
	suite.mockLedger.On("AddPayment", mock.Anything, testWorkplaceID, mock.MatchedBy(func(req dto.AddPaymentRequest) bool {
		return req.Method == domain.MethodCash && req.Amount.Equal(dec("200")) && req.PartnerID == "c1"
	})).Return(payment, nil).Once()

	w := suite.do(http.MethodPost, "/payments", gin.H{"amount": "200", "method": "CASH", "partnerID": "c1"})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestAddPayment_InvalidMethod() {
	w := suite.do(http.MethodPost, "/payments", gin.H{"amount": "200", "method": "BITCOIN", "partnerID": "c1"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestOpenCashSession_AlreadyOpen() {
	suite.mockLedger.On("OpenCashSession", mock.Anything, testWorkplaceID, mock.AnythingOfType("dto.OpenCashSessionRequest")).
		Return(nil, fmt.Errorf("%w: session s1", apperrors.ErrSessionAlreadyOpen)).Once()

	w := suite.do(http.MethodPost, "/cash-sessions", gin.H{"openingBalance": "500"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCloseCashSession() {
	session := domain.OpenCashSession("s1", dec("500"), time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	session, err := session.RecordPayment(dec("200"), true)
	suite.Require().NoError(err)
	closed, err := session.Close(dec("695"), time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.mockLedger.On("CloseCashSession", mock.Anything, testWorkplaceID, "s1", mock.AnythingOfType("dto.CloseCashSessionRequest")).
		Return(&closed, nil).Once()

	w := suite.do(http.MethodPost, "/cash-sessions/s1/close", gin.H{"actualBalance": "695"})

	suite.Equal(http.StatusOK, w.Code)
	var got dto.CashSessionResponse
	suite.decode(w, &got)
	suite.Equal(domain.SessionClosed, got.Status)
	suite.Require().NotNil(got.Difference)
	suite.True(got.Difference.Equal(dec("-5")))
	suite.True(got.TheoreticalBalance.Equal(dec("700")))
}

func (suite *HandlerTestSuite) TestCurrentCashSession_None() {
	suite.mockReporting.On("CurrentCashSession", mock.Anything, testWorkplaceID).
		Return(nil, fmt.Errorf("%w: no open cash session", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/cash-sessions/current", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard() {
	suite.mockReporting.On("Dashboard", mock.Anything, testWorkplaceID).
		Return(&domain.Dashboard{TotalSales: dec("1440"), StockValue: dec("40")}, nil).Once()
	suite.mockLedger.On("GetState", mock.Anything, testWorkplaceID).Return(&engine.State{}, nil).Once()

	w := suite.do(http.MethodGet, "/reports/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DashboardResponse
	suite.decode(w, &got)
	suite.Equal("1440.00 €", got.TotalSalesLabel)
	suite.Equal("40.00 €", got.StockValueLabel)
}

func (suite *HandlerTestSuite) TestDashboard_InternalError() {
	suite.mockReporting.On("Dashboard", mock.Anything, testWorkplaceID).Return(nil, errors.New("database unavailable")).Once()

	w := suite.do(http.MethodGet, "/reports/dashboard", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to generate dashboard"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListEvents_Pagination() {
	records := []domain.EventRecord{
		{WorkplaceID: testWorkplaceID, Sequence: 3, Type: "SAVE_PARTNER", Payload: json.RawMessage(`{"partner":{}}`)},
		{WorkplaceID: testWorkplaceID, Sequence: 4, Type: "SAVE_PARTNER", Payload: json.RawMessage(`{"partner":{}}`)},
	}
	suite.mockLedger.On("ListEvents", mock.Anything, testWorkplaceID, int64(2), 2).Return(records, int64(4), nil).Once()

	w := suite.do(http.MethodGet, "/events?limit=2&nextToken="+pagination.EncodeSequenceToken(2), nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.ListEventsResponse
	suite.decode(w, &got)
	suite.Len(got.Events, 2)
	suite.Equal(pagination.EncodeSequenceToken(4), got.NextToken)
}

func (suite *HandlerTestSuite) TestListEvents_InvalidToken() {
	w := suite.do(http.MethodGet, "/events?nextToken=not-a-token", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestFindUserByEmail_RequiresEmail() {
	w := suite.do(http.MethodGet, "/users/lookup", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListFamilies_EmptyArray() {
	suite.mockLedger.On("GetState", mock.Anything, testWorkplaceID).Return(&engine.State{}, nil).Once()

	w := suite.do(http.MethodGet, "/families", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
