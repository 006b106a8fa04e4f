package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
)

// LogHandler handles audit trail endpoints.
type LogHandler struct {
	auditService service.AuditService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(auditService service.AuditService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// List handles GET /api/v1/logs
// @Summary Browse the audit trail
// @Description Cursor-paginated audit log, newest first. Pass the returned cursor to fetch the next page
// @Tags logs
// @Produce json
// @Param cursor query string false "Opaque cursor from the previous page"
// @Param page_size query int false "Page size (max 100)" default(20)
// @Param q query string false "Search term (message, performer or IP)"
// @Param action_type query string false "Action type"
// @Param performed_by query string false "Performer username"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} Response{data=port.LogPage} "One page of entries"
// @Failure 400 {object} ErrorResponseBody "Malformed cursor or date"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := port.LogFilter{
		SearchTerm:  c.Query("q"),
		ActionType:  domain.AuditAction(c.Query("action_type")),
		PerformedBy: c.Query("performed_by"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from date")
			return
		}
		filter.FromDate = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to date")
			return
		}
		// The named day is included; the query bound is the next midnight.
		t = t.AddDate(0, 0, 1)
		filter.ToDate = &t
	}

	page, err := h.auditService.List(c.Request.Context(), c.Query("cursor"), pageSize, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, page)
}
