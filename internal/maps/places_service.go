package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place represents a simplified place details result.
type Place struct {
	PlaceID    string
	Name       string
	Address    string
	Rating     float32
	PriceLevel int
	Website    string
	URL        string
	Types      []string
}

var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskPlaceID,
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskPriceLevel,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskURL,
	maps.PlaceDetailsFieldMaskTypes,
}

// PlacesService handles interactions with the Google Geocoding and Places APIs.
type PlacesService struct {
	client Client
}

// NewPlacesService creates a PlacesService on top of client.
func NewPlacesService(client Client) *PlacesService {
	return &PlacesService{client: client}
}

// Geocode resolves an address to coordinates. It returns ErrNoMatch when nothing is found.
func (s *PlacesService) Geocode(ctx context.Context, address string) (maps.LatLng, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return maps.LatLng{}, ErrNoMatch
	}
	return results[0].Geometry.Location, nil
}

// SearchNearby lists places of placeType within radiusMeters of center.
func (s *PlacesService) SearchNearby(ctx context.Context, center maps.LatLng, radiusMeters uint, placeType maps.PlaceType) ([]maps.PlacesSearchResult, error) {
	resp, err := s.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &center,
		Radius:   radiusMeters,
		Type:     placeType,
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	return resp.Results, nil
}

// Details looks up name, address, rating, price and website for a place.
func (s *PlacesService) Details(ctx context.Context, placeID string) (Place, error) {
	d, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	})
	if err != nil {
		return Place{}, fmt.Errorf("place details api error: %w", err)
	}
	id := d.PlaceID
	if id == "" {
		id = placeID
	}
	return Place{
		PlaceID:    id,
		Name:       d.Name,
		Address:    d.FormattedAddress,
		Rating:     d.Rating,
		PriceLevel: d.PriceLevel,
		Website:    d.Website,
		URL:        d.URL,
		Types:      d.Types,
	}, nil
}
