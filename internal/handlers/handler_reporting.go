package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/dto"
)

// reportingHandler serves the audit trail and receipt views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// RegisterReportingRoutes sets up the reporting routes on the authenticated group.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	documents := rg.Group("/documents")
	{
		documents.GET("/:documentID/history", h.getHistory)
		documents.GET("/:documentID/receipt", h.getReceipt)
	}
}

// getHistory godoc
// @Summary Get a document's audit trail
// @Description Returns every status transition for the document, oldest first
// @Tags reporting
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {array} dto.DocumentHistoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{documentID}/history [get]
func (h *reportingHandler) getHistory(c *gin.Context) {
	history, err := h.reportingService.GetHistory(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document history")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentHistoryResponses(history))
}

// getReceipt godoc
// @Summary Get a document's receipt
// @Description Renders the fixed-layout textual receipt
// @Tags reporting
// @Produce  plain
// @Param   documentID path string true "Document ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /documents/{documentID}/receipt [get]
func (h *reportingHandler) getReceipt(c *gin.Context) {
	receipt, err := h.reportingService.GenerateReceipt(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to generate receipt")
		return
	}
	c.String(http.StatusOK, receipt)
}
