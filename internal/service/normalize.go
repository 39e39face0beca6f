package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/octobees/restaurant-search/internal/entity"
	"github.com/octobees/restaurant-search/internal/places"
)

var idnaProfile = idna.Lookup

// NormalizePlace maps one raw provider record onto the stable output schema.
//
// Known fields are carried over losslessly, unknown fields become nil; the
// rich sub-objects pass through as opaque structured values. The place
// identifier is the only field a result cannot exist without: when it is
// missing the record is malformed and gets dropped by the caller.
func NormalizePlace(p places.Place) (entity.RestaurantResult, error) {
	if strings.TrimSpace(p.PlaceID) == "" {
		return entity.RestaurantResult{}, fmt.Errorf("%w: missing place_id", ErrMalformedRecord)
	}

	result := entity.RestaurantResult{
		PlaceID:          p.PlaceID,
		Name:             p.Name,
		Address:          p.FormattedAddress,
		Location:         normalizeLocation(p.Geometry),
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		PriceLevel:       p.PriceLevel,
		Types:            p.Types,
		BusinessStatus:   p.BusinessStatus,

		OpeningHours: p.OpeningHours,
		Photos:       p.Photos,

		Website:                  normalizeWebsite(p.Website),
		PhoneNumber:              p.FormattedPhoneNumber,
		InternationalPhoneNumber: normalizePhone(p.InternationalPhoneNumber),

		DineIn:         p.DineIn,
		Takeout:        p.Takeout,
		Delivery:       p.Delivery,
		CurbsidePickup: p.CurbsidePickup,
		Reservable:     p.Reservable,

		ServesBreakfast: p.ServesBreakfast,
		ServesLunch:     p.ServesLunch,
		ServesDinner:    p.ServesDinner,
		ServesBrunch:    p.ServesBrunch,

		ServesBeer:           p.ServesBeer,
		ServesWine:           p.ServesWine,
		ServesCocktails:      p.ServesCocktails,
		ServesCoffee:         p.ServesCoffee,
		ServesVegetarianFood: p.ServesVegetarianFood,
		ServesDessert:        p.ServesDessert,

		OutdoorSeating:        p.OutdoorSeating,
		LiveMusic:             p.LiveMusic,
		GoodForChildren:       p.GoodForChildren,
		GoodForGroups:         p.GoodForGroups,
		GoodForWatchingSports: p.GoodForWatchingSports,
		AllowsDogs:            p.AllowsDogs,
		Restroom:              p.Restroom,
		MenuForChildren:       p.MenuForChildren,

		ParkingOptions: p.ParkingOptions,
		PaymentOptions: p.PaymentOptions,

		GoogleMapsURI:       p.GoogleMapsURI,
		IconMaskBaseURI:     p.IconMaskBaseURI,
		UTCOffsetMinutes:    p.UTCOffsetMinutes,
		CurrentOpeningHours: p.CurrentOpeningHours,
		EditorialSummary:    p.EditorialSummary,

		Reviews:    p.Reviews,
		PriceRange: p.PriceRange,

		PlusCode: p.PlusCode,
	}

	if p.Geometry != nil {
		result.Viewport = p.Geometry.Viewport
	}

	return result, nil
}

// normalizeLocation yields a coordinate only when both members are present.
// A half-present pair maps to null, never to a partially zeroed coordinate.
func normalizeLocation(g *places.Geometry) *entity.Location {
	if g == nil || g.Location == nil || g.Location.Lat == nil || g.Location.Lng == nil {
		return nil
	}
	return &entity.Location{Lat: *g.Location.Lat, Lng: *g.Location.Lng}
}

// normalizePhone reformats an international phone number to E.164. Input the
// library cannot parse passes through verbatim: normalization is cosmetic,
// dropping a reachable number is not.
func normalizePhone(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	number, err := phonenumbers.Parse(value, "")
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return &value
	}
	formatted := phonenumbers.Format(number, phonenumbers.E164)
	return &formatted
}

// normalizeWebsite defaults the scheme and converts internationalized hosts
// to their ASCII form. Unparseable input passes through verbatim.
func normalizeWebsite(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	candidate := value
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return &value
	}
	if ascii, err := idnaProfile.ToASCII(u.Hostname()); err == nil && ascii != u.Hostname() {
		host := ascii
		if port := u.Port(); port != "" {
			host += ":" + port
		}
		u.Host = host
	}
	normalized := u.String()
	return &normalized
}
