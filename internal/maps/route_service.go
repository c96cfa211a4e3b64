package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// RouteQuery describes one directions request.
type RouteQuery struct {
	Origin       string
	Destination  string
	Mode         maps.Mode
	TransitModes []maps.TransitMode
	// DepartureTime is "now" or a unix timestamp in seconds. Empty lets the API decide.
	DepartureTime string
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client Client
}

// NewRouteService creates a RouteService on top of client.
func NewRouteService(client Client) *RouteService {
	return &RouteService{client: client}
}

// Routes returns the primary route and any alternatives for q.
// An empty slice with a nil error means the API answered ZERO_RESULTS.
func (s *RouteService) Routes(ctx context.Context, q RouteQuery) ([]maps.Route, error) {
	r := &maps.DirectionsRequest{
		Origin:        q.Origin,
		Destination:   q.Destination,
		Mode:          q.Mode,
		Alternatives:  true,
		TransitMode:   q.TransitModes,
		DepartureTime: q.DepartureTime,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("directions api error: %w", err)
	}
	return routes, nil
}
