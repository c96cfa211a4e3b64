package weather

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/openweather"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

type stubBackend struct {
	coords     []openweather.Coordinates
	geoErr     error
	current    string
	currentErr error
	calls      int
}

func (b *stubBackend) Geocode(context.Context, string, int) ([]openweather.Coordinates, error) {
	b.calls++
	return b.coords, b.geoErr
}

func (b *stubBackend) Current(context.Context, float64, float64) (*openweather.CurrentWeather, error) {
	b.calls++
	if b.currentErr != nil {
		return nil, b.currentErr
	}
	var cw openweather.CurrentWeather
	if err := json.Unmarshal([]byte(b.current), &cw); err != nil {
		return nil, err
	}
	return &cw, nil
}

var losAngeles = []openweather.Coordinates{{Name: "Los Angeles", Lat: 34.05, Lon: -118.24}}

func TestService_Fetch(t *testing.T) {
	b := &stubBackend{
		coords:  losAngeles,
		current: `{"main":{"temp":18.44,"feels_like":17.96,"humidity":61},"weather":[{"description":"scattered clouds"}]}`,
	}
	got := NewService(b, zap.NewNop()).Fetch(context.Background(), "Los Angeles", "2024-02-01")

	assert.Equal(t, types.WeatherSnapshot{
		Temperature: "18.4°C",
		FeelsLike:   "18.0°C",
		Status:      "scattered clouds",
		Humidity:    61,
	}, got)
}

func TestService_FetchZeroReadings(t *testing.T) {
	b := &stubBackend{
		coords:  losAngeles,
		current: `{"main":{"temp":0,"feels_like":-2.5,"humidity":0},"weather":[{"description":"freezing fog"}]}`,
	}
	got := NewService(b, zap.NewNop()).Fetch(context.Background(), "Fairbanks", "2024-02-01")

	assert.Equal(t, types.WeatherSnapshot{Temperature: "0.0°C", FeelsLike: "-2.5°C", Status: "freezing fog"}, got)
	assert.False(t, got.IsEmpty())
}

func TestService_FetchDegrades(t *testing.T) {
	tests := []struct {
		name    string
		backend *stubBackend
		calls   int
	}{
		{"geocode error", &stubBackend{geoErr: errors.New("401")}, 1},
		{"unknown location", &stubBackend{}, 1},
		{"weather error", &stubBackend{coords: losAngeles, currentErr: errors.New("timeout")}, 2},
		{"missing main", &stubBackend{coords: losAngeles, current: `{"weather":[{"description":"rain"}]}`}, 2},
		{"missing weather", &stubBackend{coords: losAngeles, current: `{"main":{"temp":1,"feels_like":1,"humidity":1},"weather":[]}`}, 2},
		{"missing humidity", &stubBackend{coords: losAngeles, current: `{"main":{"temp":18.4,"feels_like":18},"weather":[{"description":"clear"}]}`}, 2},
		{"missing description", &stubBackend{coords: losAngeles, current: `{"main":{"temp":18.4,"feels_like":18,"humidity":50},"weather":[{"main":"Clear"}]}`}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewService(tt.backend, zap.NewNop()).Fetch(context.Background(), "Nowhere", "2024-02-01")
			assert.True(t, got.IsEmpty())
			assert.Equal(t, tt.calls, tt.backend.calls)

			raw, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(raw))
		})
	}
}
