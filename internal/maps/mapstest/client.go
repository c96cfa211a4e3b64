// Package mapstest provides an in-memory maps.Client for tests.
package mapstest

import (
	"context"
	"errors"
	"sync"

	"googlemaps.github.io/maps"
)

var errNotConfigured = errors.New("mapstest: call not configured")

// Client records every request and answers with the configured funcs.
// A nil func makes the call fail.
type Client struct {
	DirectionsFunc   func(r *maps.DirectionsRequest) ([]maps.Route, error)
	GeocodeFunc      func(r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearchFunc func(r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetailsFunc func(r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)

	mu                sync.Mutex
	DirectionsCalls   []maps.DirectionsRequest
	GeocodeCalls      []maps.GeocodingRequest
	NearbySearchCalls []maps.NearbySearchRequest
	PlaceDetailsCalls []maps.PlaceDetailsRequest
}

func (c *Client) Directions(_ context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	c.mu.Lock()
	c.DirectionsCalls = append(c.DirectionsCalls, *r)
	c.mu.Unlock()
	if c.DirectionsFunc == nil {
		return nil, nil, errNotConfigured
	}
	routes, err := c.DirectionsFunc(r)
	return routes, nil, err
}

func (c *Client) Geocode(_ context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	c.mu.Lock()
	c.GeocodeCalls = append(c.GeocodeCalls, *r)
	c.mu.Unlock()
	if c.GeocodeFunc == nil {
		return nil, errNotConfigured
	}
	return c.GeocodeFunc(r)
}

func (c *Client) NearbySearch(_ context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error) {
	c.mu.Lock()
	c.NearbySearchCalls = append(c.NearbySearchCalls, *r)
	c.mu.Unlock()
	if c.NearbySearchFunc == nil {
		return maps.PlacesSearchResponse{}, errNotConfigured
	}
	return c.NearbySearchFunc(r)
}

func (c *Client) PlaceDetails(_ context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	c.mu.Lock()
	c.PlaceDetailsCalls = append(c.PlaceDetailsCalls, *r)
	c.mu.Unlock()
	if c.PlaceDetailsFunc == nil {
		return maps.PlaceDetailsResult{}, errNotConfigured
	}
	return c.PlaceDetailsFunc(r)
}

// GeocodeTo answers every geocoding request with one result at lat,lng.
func GeocodeTo(lat, lng float64) func(*maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	return func(*maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
		return []maps.GeocodingResult{{
			Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: lat, Lng: lng}},
		}}, nil
	}
}
