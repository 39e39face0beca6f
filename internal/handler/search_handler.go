package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/restaurant-search/internal/dto"
	"github.com/octobees/restaurant-search/internal/entity"
)

// RestaurantSearcher is the application service behind the HTTP surface.
type RestaurantSearcher interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Details(ctx context.Context, placeID string) (entity.RestaurantResult, error)
}

// SearchHandler exposes the restaurant search endpoints.
type SearchHandler struct {
	service RestaurantSearcher
}

// NewSearchHandler creates a new handler instance.
func NewSearchHandler(service RestaurantSearcher) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /restaurants/search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	req := dto.SearchRequest{
		Location: strings.TrimSpace(c.QueryParam("location")),
		Cuisine:  strings.TrimSpace(c.QueryParam("cuisine")),
		Country:  strings.TrimSpace(c.QueryParam("country")),
	}

	var parseErr string
	req.MinRating, parseErr = parseOptionalFloat(c.QueryParam("min_rating"), "min_rating")
	if parseErr != "" {
		return Error(c, http.StatusBadRequest, "Validation error", parseErr)
	}
	req.MinReviews, parseErr = parseOptionalInt(c.QueryParam("min_reviews"), "min_reviews")
	if parseErr != "" {
		return Error(c, http.StatusBadRequest, "Validation error", parseErr)
	}
	req.PriceLevel, parseErr = parseOptionalInt(c.QueryParam("price_level"), "price_level")
	if parseErr != "" {
		return Error(c, http.StatusBadRequest, "Validation error", parseErr)
	}
	req.Radius, parseErr = parseOptionalInt(c.QueryParam("radius"), "radius")
	if parseErr != "" {
		return Error(c, http.StatusBadRequest, "Validation error", parseErr)
	}
	req.OpenNow, parseErr = parseOptionalBool(c.QueryParam("open_now"), "open_now")
	if parseErr != "" {
		return Error(c, http.StatusBadRequest, "Validation error", parseErr)
	}

	resp, err := h.service.Search(c.Request().Context(), req)
	if err != nil {
		return ServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Details handles GET /restaurants/:place_id requests.
func (h *SearchHandler) Details(c echo.Context) error {
	result, err := h.service.Details(c.Request().Context(), c.Param("place_id"))
	if err != nil {
		return ServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func parseOptionalFloat(value, name string) (*float64, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ""
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, "invalid " + name
	}
	return &f, ""
}

func parseOptionalInt(value, name string) (*int, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ""
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, "invalid " + name
	}
	return &i, ""
}

func parseOptionalBool(value, name string) (*bool, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ""
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, "invalid " + name
	}
	return &b, ""
}
