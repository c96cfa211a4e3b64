package places

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/maps"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const (
	searchRadiusMeters = 5000
	maxPlaces          = 5
)

// Finder is the Google Places backend. *maps.PlacesService satisfies it.
type Finder interface {
	Geocode(ctx context.Context, address string) (gmaps.LatLng, error)
	SearchNearby(ctx context.Context, center gmaps.LatLng, radiusMeters uint, placeType gmaps.PlaceType) ([]gmaps.PlacesSearchResult, error)
	Details(ctx context.Context, placeID string) (maps.Place, error)
}

var titleCaser = cases.Title(language.English)

// humanizeType turns a Places type such as "meal_takeaway" into "Meal Takeaway".
func humanizeType(t string) string {
	return titleCaser.String(strings.ReplaceAll(t, "_", " "))
}

// rating maps an unrated place (0) to the default.
func rating(r float32) float64 {
	if r <= 0 {
		return types.DefaultRating
	}
	return float64(r)
}

func placeURL(p maps.Place) string {
	if p.Website != "" {
		return p.Website
	}
	return p.URL
}

// nearbyDetails geocodes location, lists placeType around it and loads details
// for the first maxPlaces hits. A failed detail lookup drops that place.
func nearbyDetails(ctx context.Context, f Finder, logger *zap.Logger, providerName, location string, placeType gmaps.PlaceType) ([]maps.Place, error) {
	center, err := f.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	hits, err := f.SearchNearby(ctx, center, searchRadiusMeters, placeType)
	if err != nil {
		return nil, err
	}
	if len(hits) > maxPlaces {
		hits = hits[:maxPlaces]
	}

	out := make([]maps.Place, 0, len(hits))
	for _, h := range hits {
		p, err := f.Details(ctx, h.PlaceID)
		if err != nil {
			logger.Warn("place details lookup failed",
				zap.String("provider", providerName),
				zap.String("place_id", h.PlaceID),
				zap.Error(err),
			)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
