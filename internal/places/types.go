package places

// Place is one raw record from the Places text-search or details payload.
//
// Well-known scalars are typed; optional ones are pointers so that absence
// survives decoding. The loosely specified sub-objects (opening hours,
// photos, reviews, payment/parking options) stay map-shaped on purpose:
// Google grows these independently of us and an exhaustive struct would
// silently drop whatever they add next.
type Place struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	FormattedAddress *string   `json:"formatted_address"`
	Geometry         *Geometry `json:"geometry"`
	Rating           *float64  `json:"rating"`
	UserRatingsTotal *int      `json:"user_ratings_total"`
	PriceLevel       *int      `json:"price_level"`
	Types            []string  `json:"types"`
	BusinessStatus   *string   `json:"business_status"`

	OpeningHours map[string]any   `json:"opening_hours"`
	Photos       []map[string]any `json:"photos"`

	Website                  *string `json:"website"`
	FormattedPhoneNumber     *string `json:"formatted_phone_number"`
	InternationalPhoneNumber *string `json:"international_phone_number"`

	DineIn         *bool `json:"dine_in"`
	Takeout        *bool `json:"takeout"`
	Delivery       *bool `json:"delivery"`
	CurbsidePickup *bool `json:"curbside_pickup"`
	Reservable     *bool `json:"reservable"`

	ServesBreakfast *bool `json:"serves_breakfast"`
	ServesLunch     *bool `json:"serves_lunch"`
	ServesDinner    *bool `json:"serves_dinner"`
	ServesBrunch    *bool `json:"serves_brunch"`

	ServesBeer           *bool `json:"serves_beer"`
	ServesWine           *bool `json:"serves_wine"`
	ServesCocktails      *bool `json:"serves_cocktails"`
	ServesCoffee         *bool `json:"serves_coffee"`
	ServesVegetarianFood *bool `json:"serves_vegetarian_food"`
	ServesDessert        *bool `json:"serves_dessert"`

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
}

// Geometry holds the coordinate data of a place.
type Geometry struct {
	Location *LatLng        `json:"location"`
	Viewport map[string]any `json:"viewport"`
}

// LatLng is a raw coordinate pair. Both members are pointers: a half-present
// coordinate must be detectable so it can map to null rather than to (x, 0).
type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type textSearchPayload struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
}

type detailsPayload struct {
	Result       *Place `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}
