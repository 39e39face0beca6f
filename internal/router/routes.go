package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/restaurant-search/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Health *handler.HealthHandler
	Search *handler.SearchHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/", handlers.Health.Root)
	e.GET("/health", handlers.Health.Health)

	e.GET("/restaurants/search", handlers.Search.Search)
	e.GET("/restaurants/:place_id", handlers.Search.Details)
}
