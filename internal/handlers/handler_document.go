package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to commercial documents.
type documentHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvc
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc) *documentHandler {
	return &documentHandler{
		ledgerService:    ls,
		reportingService: rs,
	}
}

// RegisterDocumentRoutes registers routes related to documents under a workplace group.
func RegisterDocumentRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvc) {
	h := newDocumentHandler(ledgerService, reportingService)

	documents := rg.Group("/documents")
	{
		documents.GET("", h.listDocuments)
		documents.POST("", h.saveDocument)
		documents.POST("/preview", h.previewDocument)
		documents.GET("/:document_id", h.getDocument)
		documents.PATCH("/:document_id/status", h.updateDocumentStatus)
		documents.POST("/:document_id/convert", h.convertDocument)
		documents.GET("/:document_id/progress", h.getPaymentProgress)
	}
}

// listDocuments godoc
// @Summary List documents
// @Description Lists the workplace's documents, newest first, optionally of one type
// @Tags documents
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param type query string false "Document type (QUOTE, INVOICE, ORDER, PURCHASE, DELIVERY_NOTE, CREDIT_NOTE, PURCHASE_CREDIT_NOTE)"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Router /workplaces/{workplace_id}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	docType := domain.DocType(strings.ToUpper(c.Query("type")))

	docs, err := h.ledgerService.ListDocuments(c.Request.Context(), workplaceID, docType)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// saveDocument godoc
// @Summary Save a document
// @Description Creates a document, or replaces it when documentID is set. Line and document totals are computed by the server.
// @Tags documents
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param document body dto.SaveDocumentRequest true "Document"
// @Success 200 {object} domain.Document
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save document"
// @Router /workplaces/{workplace_id}/documents [post]
func (h *documentHandler) saveDocument(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.SaveDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	doc, err := h.ledgerService.SaveDocument(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save document")
		return
	}

	logger.Info("Document saved", slog.String("document_id", doc.DocumentID), slog.String("total_ttc", doc.TotalTTC.String()))
	c.JSON(http.StatusOK, doc)
}

// previewDocument computes totals without recording anything.
func (h *documentHandler) previewDocument(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.SaveDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	doc, err := h.ledgerService.PreviewDocument(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// getDocument godoc
// @Summary Get a document
// @Description Returns a document with the amount paid and remaining
// @Tags documents
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /workplaces/{workplace_id}/documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	documentID := c.Param("document_id")

	doc, err := h.ledgerService.GetDocument(c.Request.Context(), workplaceID, documentID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve document")
		return
	}
	progress, err := h.reportingService.DocumentPaymentProgress(c.Request.Context(), workplaceID, documentID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, progress))
}

// updateDocumentStatus godoc
// @Summary Set a document's status
// @Tags documents
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param document_id path string true "Document ID"
// @Param status body dto.UpdateDocumentStatusRequest true "New status"
// @Success 200 {object} domain.Document
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Router /workplaces/{workplace_id}/documents/{document_id}/status [patch]
func (h *documentHandler) updateDocumentStatus(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.UpdateDocumentStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	doc, err := h.ledgerService.UpdateDocumentStatus(c.Request.Context(), workplaceID, c.Param("document_id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update document status")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// convertDocument godoc
// @Summary Convert a document
// @Description Creates a new draft document of the target type from an existing one. The source is left untouched.
// @Tags documents
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param document_id path string true "Source document ID"
// @Param target body dto.ConvertDocumentRequest true "Target type"
// @Success 201 {object} domain.Document
// @Failure 404 {object} map[string]string "Source document not found"
// @Router /workplaces/{workplace_id}/documents/{document_id}/convert [post]
func (h *documentHandler) convertDocument(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var req dto.ConvertDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	sourceID := c.Param("document_id")

	doc, err := h.ledgerService.ConvertDocument(c.Request.Context(), workplaceID, sourceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert document")
		return
	}

	logger.Info("Document converted",
		slog.String("source_id", sourceID),
		slog.String("document_id", doc.DocumentID),
		slog.String("target_type", string(doc.Type)))
	c.JSON(http.StatusCreated, doc)
}

// getPaymentProgress godoc
// @Summary Document payment progress
// @Description Returns the amount paid on a document, what remains and the paid percentage
// @Tags documents
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} domain.PaymentProgress
// @Failure 404 {object} map[string]string "Document not found"
// @Router /workplaces/{workplace_id}/documents/{document_id}/progress [get]
func (h *documentHandler) getPaymentProgress(c *gin.Context) {
	workplaceID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	progress, err := h.reportingService.DocumentPaymentProgress(c.Request.Context(), workplaceID, c.Param("document_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute payment progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
