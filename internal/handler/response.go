package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/restaurant-search/internal/places"
	"github.com/octobees/restaurant-search/internal/service"
)

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Error sends an error response with a short category and a human-readable
// detail message.
func Error(c echo.Context, status int, category, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: category, Detail: detail})
}

// ServiceError maps pipeline errors onto the HTTP taxonomy: 400 for request
// validation, 502 for provider failures, 404 for unknown places, 500 for a
// missing credential or anything unexpected. Unexpected faults get a
// non-leaking generic detail.
func ServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return Error(c, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, places.ErrNotFound):
		return Error(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, places.ErrUpstream):
		return Error(c, http.StatusBadGateway, "Google Maps API error", err.Error())
	case errors.Is(err, service.ErrNotConfigured):
		return Error(c, http.StatusInternalServerError, "Configuration error",
			"Google Maps API is not configured. Please set GOOGLE_MAPS_API_KEY environment variable.")
	default:
		return Error(c, http.StatusInternalServerError, "Internal server error", "unexpected error")
	}
}
