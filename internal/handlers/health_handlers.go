package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandlers struct {
	db      Pinger
	cache   Pinger
	version string
}

func NewHealthHandlers(db Pinger, cache Pinger, version string) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache, version: version}
}

func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	services := map[string]string{}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unreachable"
		healthy = false
	} else {
		services["database"] = "ok"
	}
	if err := h.cache.Ping(ctx); err != nil {
		services["cache"] = "unreachable"
		healthy = false
	} else {
		services["cache"] = "ok"
	}

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":   status,
		"version":  h.version,
		"services": services,
	})
}

func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return errorJSON(c, http.StatusServiceUnavailable, "database not ready")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
