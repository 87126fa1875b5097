package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/efileconnect/efc_backend/internal/core/domain"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/dto"
	"github.com/efileconnect/efc_backend/internal/middleware"
)

// documentHandler handles HTTP requests for the document lifecycle.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(documentService portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: documentService}
}

// RegisterDocumentRoutes sets up the document routes on the authenticated group.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.GET("", h.searchDocuments)
		documents.GET("/:documentID", h.getDocument)
		documents.GET("/:documentID/download", h.downloadDocument)
		documents.POST("/:documentID/submit", h.submitDocument)
		documents.POST("/:documentID/review", h.startReview)
		documents.POST("/:documentID/approve", h.approveDocument)
		documents.POST("/:documentID/reject", h.rejectDocument)
		documents.POST("/:documentID/withdraw", h.withdrawDocument)
		documents.POST("/:documentID/reopen", h.reopenDocument)
		documents.DELETE("/:documentID", h.deleteDocument)
	}
	rg.GET("/receipts/:receiptNumber", h.getDocumentByReceipt)
}

// uploadDocument godoc
// @Summary Upload a document
// @Description Stores the file content and creates the document in DRAFT
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   title formData string true "Document title"
// @Param   type formData string true "Document type"
// @Param   caseID formData string true "Case ID"
// @Param   file formData file true "Document content"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind upload request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
		return
	}
	defer file.Close()

	actorID, ok := actingUserID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.UploadDocument(c.Request.Context(), req, file, fileHeader.Size, fileHeader.Filename, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to upload document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// searchDocuments godoc
// @Summary Search documents
// @Description Applies the given filters, paginated and newest first
// @Tags documents
// @Produce  json
// @Param   status query string false "Lifecycle status"
// @Param   type query string false "Document type"
// @Param   caseID query string false "Case ID"
// @Param   q query string false "Title keyword"
// @Param   uploadedAfter query string false "RFC3339 lower bound"
// @Param   uploadedBefore query string false "RFC3339 upper bound"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Router /documents [get]
func (h *documentHandler) searchDocuments(c *gin.Context) {
	var criteria dto.DocumentSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid search criteria"})
		return
	}
	resp, err := h.documentService.SearchDocuments(c.Request.Context(), criteria)
	if err != nil {
		respondServiceError(c, err, "Failed to search documents")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// getDocumentByReceipt godoc
// @Summary Get a document by receipt number
// @Tags documents
// @Produce  json
// @Param   receiptNumber path string true "Receipt number"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /receipts/{receiptNumber} [get]
func (h *documentHandler) getDocumentByReceipt(c *gin.Context) {
	doc, err := h.documentService.GetDocumentByReceiptNumber(c.Request.Context(), c.Param("receiptNumber"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// downloadDocument godoc
// @Summary Download document content
// @Tags documents
// @Produce  application/octet-stream
// @Param   documentID path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /documents/{documentID}/download [get]
func (h *documentHandler) downloadDocument(c *gin.Context) {
	content, doc, err := h.documentService.DownloadDocument(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to download document")
		return
	}
	defer content.Close()

	filename := doc.Title + path.Ext(doc.FilePath)
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename=%q`, filename),
	}
	c.DataFromReader(http.StatusOK, doc.FileSize, "application/octet-stream", content, extraHeaders)
}

// submitDocument godoc
// @Summary Submit a document for review
// @Description Moves DRAFT to SUBMITTED and routes it to the review department
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/submit [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	h.transition(c, h.documentService.SubmitDocument, "Failed to submit document")
}

// startReview godoc
// @Summary Start reviewing a document
// @Description Moves SUBMITTED to UNDER_REVIEW
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/review [post]
func (h *documentHandler) startReview(c *gin.Context) {
	h.transition(c, h.documentService.StartReview, "Failed to start review")
}

// approveDocument godoc
// @Summary Approve a document
// @Description Moves UNDER_REVIEW to APPROVED; an approved document is returned unchanged
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/approve [post]
func (h *documentHandler) approveDocument(c *gin.Context) {
	h.transition(c, h.documentService.ApproveDocument, "Failed to approve document")
}

// rejectDocument godoc
// @Summary Reject a document
// @Description Moves UNDER_REVIEW to REJECTED with a mandatory reason
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   rejection body dto.RejectDocumentRequest true "Rejection reason"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/reject [post]
func (h *documentHandler) rejectDocument(c *gin.Context) {
	var req dto.RejectDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rejection reason must be at least 10 characters"})
		return
	}
	actorID, ok := actingUserID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.RejectDocument(c.Request.Context(), c.Param("documentID"), actorID, req.Reason)
	if err != nil {
		respondServiceError(c, err, "Failed to reject document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// withdrawDocument godoc
// @Summary Withdraw a document
// @Description Moves DRAFT, SUBMITTED or REJECTED to WITHDRAWN
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/withdraw [post]
func (h *documentHandler) withdrawDocument(c *gin.Context) {
	h.transition(c, h.documentService.WithdrawDocument, "Failed to withdraw document")
}

// reopenDocument godoc
// @Summary Reopen a rejected document
// @Description Moves REJECTED back to DRAFT for rework
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{documentID}/reopen [post]
func (h *documentHandler) reopenDocument(c *gin.Context) {
	h.transition(c, h.documentService.ReopenDocument, "Failed to reopen document")
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes the document, its history and its stored content
// @Tags documents
// @Param   documentID path string true "Document ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	actorID, ok := actingUserID(c)
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("documentID"), actorID); err != nil {
		respondServiceError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

// transition runs one of the uniform lifecycle operations.
func (h *documentHandler) transition(c *gin.Context, op func(ctx context.Context, documentID, actorID string) (*domain.Document, error), fallbackMsg string) {
	actorID, ok := actingUserID(c)
	if !ok {
		return
	}
	doc, err := op(c.Request.Context(), c.Param("documentID"), actorID)
	if err != nil {
		respondServiceError(c, err, fallbackMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
