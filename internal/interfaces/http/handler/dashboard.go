package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sellerledger/backend/internal/application/report"
)

// DashboardHandler handles dashboard aggregate endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the dashboard aggregates. ?period=daily renders a 30 day
// profit series, ?period=monthly a 12 month one; daily is the default.
func (h *DashboardHandler) Stats(c *gin.Context) {
	period := report.Period(c.DefaultQuery("period", string(report.PeriodDaily)))
	if period != report.PeriodDaily && period != report.PeriodMonthly {
		h.BadRequest(c, "period must be daily or monthly")
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
