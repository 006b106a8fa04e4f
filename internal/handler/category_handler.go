package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edms/internal/domain"
	"edms/internal/service"
)

// CategoryHandler handles the required-category registry endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
	auditService    service.AuditService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService, auditService service.AuditService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// ListRequired handles GET /api/v1/employees/:id/required-categories
// @Summary List required categories
// @Description Active required categories of an employee with their computed status
// @Tags categories
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Success 200 {object} Response{data=[]domain.RequiredCategoryView} "Required categories"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/required-categories [get]
func (h *CategoryHandler) ListRequired(c *gin.Context) {
	ctx := c.Request.Context()
	views, err := h.categoryService.ListRequired(ctx, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditCategoryFetch, domain.AuditSuccess,
		fmt.Sprintf("fetched required categories of employee %s", c.Param("id")))
	RespondOK(c, views)
}

// Add handles POST /api/v1/employees/:id/required-categories
// @Summary Require a document category
// @Description Mark a category as expected for the employee; the slot shows Pending until a document is uploaded
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Param request body CategoryRequest true "Category code, plus other_type when code is OTH"
// @Success 201 {object} Response{data=domain.RequiredCategory} "Category required"
// @Failure 400 {object} ErrorResponseBody "Unknown category or bad OTH label"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Failure 409 {object} ErrorResponseBody "Category already required"
// @Security BearerAuth
// @Router /employees/{id}/required-categories [post]
func (h *CategoryHandler) Add(c *gin.Context) {
	var req struct {
		CategoryCode string `json:"category" binding:"required"`
		OtherType    string `json:"other_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	rc, err := h.categoryService.Add(ctx, service.AddCategoryInput{
		EmployeeID:   c.Param("id"),
		CategoryCode: req.CategoryCode,
		OtherType:    req.OtherType,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditCategoryAdd, domain.AuditSuccess,
		fmt.Sprintf("required category %s for employee %s", rc.CategoryCode, rc.EmployeeID))
	RespondCreated(c, rc)
}

// Remove handles DELETE /api/v1/required-categories/:id
// @Summary Remove a required category
// @Description Soft-remove the binding; already-uploaded documents are kept. Removing twice is a no-op
// @Tags categories
// @Produce json
// @Param id path string true "Binding ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Category removed"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Binding not found"
// @Security BearerAuth
// @Router /required-categories/{id} [delete]
func (h *CategoryHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid binding ID")
		return
	}

	ctx := c.Request.Context()
	rc, err := h.categoryService.RemoveByID(ctx, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditCategoryDelete, domain.AuditSuccess,
		fmt.Sprintf("removed required category %s of employee %s", rc.CategoryCode, rc.EmployeeID))
	RespondOK(c, gin.H{"message": "category removed"})
}
