package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"edms/internal/service"
)

// ExportHandler handles register download endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// DocumentsCSV handles GET /api/v1/export/documents.csv
// @Summary Download the document register
// @Description Full document register as CSV (UTF-8 with BOM)
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /export/documents.csv [get]
func (h *ExportHandler) DocumentsCSV(c *gin.Context) {
	filename := fmt.Sprintf("documents-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.DocumentsCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log and stop the stream.
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}

// EmployeesXLSX handles GET /api/v1/export/employees.xlsx
// @Summary Download the employee register
// @Description Employee register with per-category document status counts as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /export/employees.xlsx [get]
func (h *ExportHandler) EmployeesXLSX(c *gin.Context) {
	data, err := h.exportService.EmployeesXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
