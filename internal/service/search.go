package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/octobees/restaurant-search/internal/dto"
	"github.com/octobees/restaurant-search/internal/entity"
	"github.com/octobees/restaurant-search/internal/places"
)

// SearchService runs the search pipeline: validate, build the query, one
// provider call, normalize, post-filter. Everything is request-scoped; there
// is no shared mutable state and concurrent searches are fully independent.
type SearchService struct {
	places   places.Searcher
	validate *validator.Validate
}

// NewSearchService builds the service. A nil searcher models a deployment
// without a Places credential: searches fail with a configuration error while
// the rest of the API keeps serving.
func NewSearchService(searcher places.Searcher) *SearchService {
	return &SearchService{
		places:   searcher,
		validate: validator.New(),
	}
}

// Search executes one search request end to end and echoes the effective
// query parameters in the response.
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	if s.places == nil {
		return dto.SearchResponse{}, ErrNotConfigured
	}

	req = normalizeRequest(req)
	if err := s.validate.Struct(req); err != nil {
		return dto.SearchResponse{}, fmt.Errorf("%w: %s", ErrInvalidRequest, validationDetail(err))
	}

	query, err := BuildQuery(req.Location, req.Cuisine)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	raw, err := s.places.TextSearch(ctx, query, BuildOptions(req))
	if err != nil {
		return dto.SearchResponse{}, err
	}

	results := make([]entity.RestaurantResult, 0, len(raw))
	for _, place := range raw {
		result, err := NormalizePlace(place)
		if err != nil {
			// A record without an identifier cannot be rendered or
			// deduplicated. Drop it and keep the rest of the page.
			slog.Warn("dropping malformed upstream record", "reason", err)
			continue
		}
		results = append(results, result)
	}

	filtered := ApplyFilters(results, req)

	return dto.SearchResponse{
		Restaurants:  filtered,
		TotalResults: len(filtered),
		Query:        req,
	}, nil
}

// Details returns the normalized record for a single place identifier.
func (s *SearchService) Details(ctx context.Context, placeID string) (entity.RestaurantResult, error) {
	if s.places == nil {
		return entity.RestaurantResult{}, ErrNotConfigured
	}

	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return entity.RestaurantResult{}, fmt.Errorf("%w: place_id must not be empty", ErrInvalidRequest)
	}

	place, err := s.places.Details(ctx, placeID)
	if err != nil {
		return entity.RestaurantResult{}, err
	}

	return NormalizePlace(*place)
}

// normalizeRequest trims and canonicalizes the free-text fields so the echo
// in the response reflects what was actually applied.
func normalizeRequest(req dto.SearchRequest) dto.SearchRequest {
	req.Location = strings.TrimSpace(req.Location)
	req.Cuisine = strings.ToLower(strings.TrimSpace(req.Cuisine))
	req.Country = strings.ToLower(strings.TrimSpace(req.Country))
	return req
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "request validation failed"
	}
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return "invalid value for: " + strings.Join(names, ", ")
}
