package service

import (
	"fmt"
	"strings"

	"github.com/octobees/restaurant-search/internal/dto"
	"github.com/octobees/restaurant-search/internal/places"
)

const maxRadiusMeters = 50000

// BuildQuery turns the structured request into the one free-text string sent
// to the provider: "<cuisine> restaurants in <location>", cuisine lower-cased,
// location trimmed but otherwise verbatim. Coordinate-style locations pass
// through unchanged.
func BuildQuery(location, cuisine string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", fmt.Errorf("%w: location must not be empty", ErrInvalidRequest)
	}

	parts := make([]string, 0, 4)
	if c := strings.ToLower(strings.TrimSpace(cuisine)); c != "" {
		parts = append(parts, c)
	}
	parts = append(parts, "restaurants", "in", location)
	return strings.Join(parts, " "), nil
}

// BuildOptions assembles the structured provider options for a request.
//
// Price level is forwarded because the provider constrains it natively;
// open-now is deliberately left out and applied as a post-filter instead,
// since provider-side open-now evaluation at text-search granularity is
// time-zone sensitive and unreliable.
func BuildOptions(req dto.SearchRequest) places.SearchOptions {
	opts := places.SearchOptions{
		Region:     strings.ToLower(strings.TrimSpace(req.Country)),
		PriceLevel: req.PriceLevel,
	}
	if req.Radius != nil {
		opts.Radius = clampRadius(*req.Radius)
	}
	return opts
}

func clampRadius(radius int) int {
	if radius < 1 {
		return 1
	}
	if radius > maxRadiusMeters {
		return maxRadiusMeters
	}
	return radius
}
