package handler

import (
	"net/http"
	"time"

	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler records the process start time.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), now: time.Now}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": util.FormatDuration(h.now().Sub(h.startedAt)),
	})
}
