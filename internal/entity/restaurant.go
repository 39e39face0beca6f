package entity

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RestaurantResult is the stable client-facing projection of one place.
//
// Every optional field is independently nullable and absent upstream data is
// surfaced as null, never as a zero value: a missing rating must not read as
// a rating of 0. The rich sub-objects the provider keeps reshaping (opening
// hours, photos, reviews, payment and parking options) are carried as opaque
// structured values instead of exhaustively typed records.
type RestaurantResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Address          *string   `json:"address"`
	Location         *Location `json:"location"`
	Rating           *float64  `json:"rating"`
	UserRatingsTotal *int      `json:"user_ratings_total"`
	PriceLevel       *int      `json:"price_level"`
	Types            []string  `json:"types"`

	OpeningHours map[string]any   `json:"opening_hours"`
	Photos       []map[string]any `json:"photos"`

	Website                  *string `json:"website"`
	PhoneNumber              *string `json:"phone_number"`
	InternationalPhoneNumber *string `json:"international_phone_number"`
	BusinessStatus           *string `json:"business_status"`

	// Service options
	DineIn         *bool `json:"dine_in"`
	Takeout        *bool `json:"takeout"`
	Delivery       *bool `json:"delivery"`
	CurbsidePickup *bool `json:"curbside_pickup"`
	Reservable     *bool `json:"reservable"`

	// Dining times
	ServesBreakfast *bool `json:"serves_breakfast"`
	ServesLunch     *bool `json:"serves_lunch"`
	ServesDinner    *bool `json:"serves_dinner"`
	ServesBrunch    *bool `json:"serves_brunch"`

	// Beverages and food types
	ServesBeer           *bool `json:"serves_beer"`
	ServesWine           *bool `json:"serves_wine"`
	ServesCocktails      *bool `json:"serves_cocktails"`
	ServesCoffee         *bool `json:"serves_coffee"`
	ServesVegetarianFood *bool `json:"serves_vegetarian_food"`
	ServesDessert        *bool `json:"serves_dessert"`

	// Amenities
	OutdoorSeating        *bool `json:"outdoor_seating"`
	LiveMusic             *bool `json:"live_music"`
	GoodForChildren       *bool `json:"good_for_children"`
	GoodForGroups         *bool `json:"good_for_groups"`
	GoodForWatchingSports *bool `json:"good_for_watching_sports"`
	AllowsDogs            *bool `json:"allows_dogs"`
	Restroom              *bool `json:"restroom"`
	MenuForChildren       *bool `json:"menu_for_children"`

	ParkingOptions map[string]any `json:"parking_options"`
	PaymentOptions map[string]any `json:"payment_options"`

	GoogleMapsURI       *string        `json:"google_maps_uri"`
	IconMaskBaseURI     *string        `json:"icon_mask_base_uri"`
	UTCOffsetMinutes    *int           `json:"utc_offset_minutes"`
	CurrentOpeningHours map[string]any `json:"current_opening_hours"`
	EditorialSummary    map[string]any `json:"editorial_summary"`

	Reviews    []map[string]any `json:"reviews"`
	PriceRange *string          `json:"price_range"`

	PlusCode map[string]any `json:"plus_code"`
	Viewport map[string]any `json:"viewport"`
}

// OpenNow reports whether the provider marked the place as currently open.
// Missing opening-hours data reads as unknown, not as closed; the second
// return value distinguishes the two.
func (r RestaurantResult) OpenNow() (bool, bool) {
	if r.OpeningHours == nil {
		return false, false
	}
	open, ok := r.OpeningHours["open_now"].(bool)
	if !ok {
		return false, false
	}
	return open, true
}
