package handler

import (
	"github.com/gin-gonic/gin"

	"edms/internal/service"
)

// StatsHandler handles dashboard endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/dashboard-stats
// @Summary Dashboard statistics
// @Description Document and employee counts, status breakdown and recent uploads
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStats} "Dashboard stats"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /dashboard-stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
