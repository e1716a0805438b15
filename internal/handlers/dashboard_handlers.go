package handlers

import (
	"net/http"

	"binsight/internal/analytics"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers serves the landing dashboard payload.
type DashboardHandlers struct {
	statsService analytics.Service
}

func NewDashboardHandlers(statsService analytics.Service) *DashboardHandlers {
	return &DashboardHandlers{statsService: statsService}
}

// Dashboard returns the latest items, totals, zone list and overall
// utilization. Failures surface as plain text rather than the JSON envelope.
func (h *DashboardHandlers) Dashboard(c echo.Context) error {
	data, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error loading dashboard: "+err.Error())
	}
	return c.JSON(http.StatusOK, data)
}
