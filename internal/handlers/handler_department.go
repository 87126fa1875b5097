package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
)

// departmentHandler serves the department directory.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(departmentService portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: departmentService}
}

// registerDepartmentRoutes sets up the department routes on the authenticated group.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.GET("/:departmentID", h.getDepartment)
	}
}

// getDepartment godoc
// @Summary Get a department
// @Tags departments
// @Produce  json
// @Param   departmentID path string true "Department ID"
// @Success 200 {object} domain.Department
// @Failure 404 {object} ErrorResponse
// @Router /departments/{departmentID} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	dept, err := h.departmentService.GetDepartmentByID(c.Request.Context(), c.Param("departmentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve department")
		return
	}
	c.JSON(http.StatusOK, dept)
}
