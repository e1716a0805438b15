package handlers

import (
	"net/http"

	"binsight/internal/analytics"

	"github.com/labstack/echo/v4"
)

// StatsHandlers serves warehouse statistics.
type StatsHandlers struct {
	statsService analytics.Service
}

func NewStatsHandlers(statsService analytics.Service) *StatsHandlers {
	return &StatsHandlers{statsService: statsService}
}

// WarehouseStats returns the zone utilization, category breakdown, total item
// count and expiring-soon count.
func (h *StatsHandlers) WarehouseStats(c echo.Context) error {
	stats, err := h.statsService.WarehouseStats(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
