package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/dto"
)

// caseHandler serves case lookups and the per-case document listing.
type caseHandler struct {
	caseService     portssvc.CaseSvcFacade
	documentService portssvc.DocumentSvcFacade
}

func newCaseHandler(caseService portssvc.CaseSvcFacade, documentService portssvc.DocumentSvcFacade) *caseHandler {
	return &caseHandler{caseService: caseService, documentService: documentService}
}

// registerCaseRoutes sets up the case routes on the authenticated group.
func registerCaseRoutes(rg *gin.RouterGroup, caseService portssvc.CaseSvcFacade, documentService portssvc.DocumentSvcFacade) {
	h := newCaseHandler(caseService, documentService)

	cases := rg.Group("/cases")
	{
		cases.GET("/:caseID", h.getCase)
		cases.GET("/:caseID/documents", h.listCaseDocuments)
	}
}

// getCase godoc
// @Summary Get a case
// @Tags cases
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {object} domain.Case
// @Failure 404 {object} ErrorResponse
// @Router /cases/{caseID} [get]
func (h *caseHandler) getCase(c *gin.Context) {
	caseEntity, err := h.caseService.GetCaseByID(c.Request.Context(), c.Param("caseID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve case")
		return
	}
	c.JSON(http.StatusOK, caseEntity)
}

// listCaseDocuments godoc
// @Summary List documents filed against a case
// @Tags cases
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /cases/{caseID}/documents [get]
func (h *caseHandler) listCaseDocuments(c *gin.Context) {
	docs, err := h.documentService.ListDocumentsByCase(c.Request.Context(), c.Param("caseID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list case documents")
		return
	}
	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = dto.ToDocumentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, responses)
}
