package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// HealthHandler serves the service metadata endpoints.
type HealthHandler struct {
	googleMapsConfigured bool
}

// NewHealthHandler creates a new handler instance.
func NewHealthHandler(googleMapsConfigured bool) *HealthHandler {
	return &HealthHandler{googleMapsConfigured: googleMapsConfigured}
}

// Root handles GET / requests.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Restaurant Search API",
		"version": apiVersion,
		"status":  "running",
	})
}

// Health handles GET /health requests. It never fails: it only reflects
// whether a Places credential is present so a misconfigured deployment is
// visible before the first search.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":                 "healthy",
		"google_maps_configured": h.googleMapsConfigured,
	})
}
