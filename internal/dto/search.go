package dto

import (
	"github.com/octobees/restaurant-search/internal/entity"
)

// SearchRequest carries the filters accepted by the search endpoint.
//
// Location is the only required field; the remaining filters are independent
// and compose conjunctively. The struct doubles as the query echo in the
// response, which is why every optional field is a pointer with omitempty:
// only the filters the caller actually supplied are echoed back.
type SearchRequest struct {
	Location   string   `query:"location" json:"location" validate:"required"`
	Cuisine    string   `query:"cuisine" json:"cuisine,omitempty"`
	MinRating  *float64 `query:"min_rating" json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	MinReviews *int     `query:"min_reviews" json:"min_reviews,omitempty" validate:"omitempty,gte=0"`
	PriceLevel *int     `query:"price_level" json:"price_level,omitempty" validate:"omitempty,gte=0,lte=4"`
	OpenNow    *bool    `query:"open_now" json:"open_now,omitempty"`
	Radius     *int     `query:"radius" json:"radius,omitempty"`
	Country    string   `query:"country" json:"country,omitempty" validate:"omitempty,len=2,alpha"`
}

// SearchResponse is the payload returned by the search endpoint. TotalResults
// is the length of Restaurants after post-filtering, never the provider's raw
// hit count.
type SearchResponse struct {
	Restaurants  []entity.RestaurantResult `json:"restaurants"`
	TotalResults int                       `json:"total_results"`
	Query        SearchRequest             `json:"query"`
}
