package service

import (
	"github.com/octobees/restaurant-search/internal/dto"
	"github.com/octobees/restaurant-search/internal/entity"
)

// ApplyFilters narrows the normalized sequence with the filters the provider
// cannot guarantee. The chain runs in a fixed order — minRating, minReviews,
// priceLevel, openNow — purely for determinism and debuggability; the final
// set does not depend on it. Filtering only removes elements, so the
// provider's relevance order is preserved.
//
// Policy: a place whose relevant field is unknown is EXCLUDED once that
// filter is active. A filter is a promise to the caller ("only rated >= X");
// silently including unrated places would break it. The permissive
// alternative (keep unknowns) was considered and rejected. Price level is
// the one exception: the provider already constrained it on the call, so a
// record that comes back without one is kept.
func ApplyFilters(results []entity.RestaurantResult, req dto.SearchRequest) []entity.RestaurantResult {
	chain := []func(entity.RestaurantResult) bool{
		minRatingFilter(req.MinRating),
		minReviewsFilter(req.MinReviews),
		priceLevelFilter(req.PriceLevel),
		openNowFilter(req.OpenNow),
	}

	filtered := results
	for _, keep := range chain {
		filtered = applyFilter(filtered, keep)
	}
	return filtered
}

func applyFilter(results []entity.RestaurantResult, keep func(entity.RestaurantResult) bool) []entity.RestaurantResult {
	out := make([]entity.RestaurantResult, 0, len(results))
	for _, r := range results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func minRatingFilter(minRating *float64) func(entity.RestaurantResult) bool {
	return func(r entity.RestaurantResult) bool {
		if minRating == nil {
			return true
		}
		return r.Rating != nil && *r.Rating >= *minRating
	}
}

func minReviewsFilter(minReviews *int) func(entity.RestaurantResult) bool {
	return func(r entity.RestaurantResult) bool {
		if minReviews == nil {
			return true
		}
		return r.UserRatingsTotal != nil && *r.UserRatingsTotal >= *minReviews
	}
}

func priceLevelFilter(priceLevel *int) func(entity.RestaurantResult) bool {
	return func(r entity.RestaurantResult) bool {
		if priceLevel == nil || r.PriceLevel == nil {
			return true
		}
		return *r.PriceLevel == *priceLevel
	}
}

func openNowFilter(openNow *bool) func(entity.RestaurantResult) bool {
	return func(r entity.RestaurantResult) bool {
		if openNow == nil || !*openNow {
			return true
		}
		open, known := r.OpenNow()
		return known && open
	}
}
