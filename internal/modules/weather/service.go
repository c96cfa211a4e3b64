// README: Weather adapter reports current conditions at the destination via OpenWeatherMap.
package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/openweather"
	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const providerName = "weather"

// Backend is the weather data source. *openweather.Client satisfies it.
type Backend interface {
	Geocode(ctx context.Context, location string, limit int) ([]openweather.Coordinates, error)
	Current(ctx context.Context, lat, lon float64) (*openweather.CurrentWeather, error)
}

type Service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(backend Backend, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Fetch returns current conditions at location. The date is accepted for the
// envelope's sake; the backend only serves current weather.
// Any failure yields the empty snapshot.
func (s *Service) Fetch(ctx context.Context, location, date string) types.WeatherSnapshot {
	return provider.Degrade(ctx, s.logger, providerName, location, types.WeatherSnapshot{},
		func(ctx context.Context) (types.WeatherSnapshot, error) {
			w, err := s.fetch(ctx, location)
			return w, provider.Wrap(providerName, location, err)
		})
}

func (s *Service) fetch(ctx context.Context, location string) (types.WeatherSnapshot, error) {
	coords, err := s.backend.Geocode(ctx, location, 1)
	if err != nil {
		return types.WeatherSnapshot{}, err
	}
	if len(coords) == 0 {
		return types.WeatherSnapshot{}, fmt.Errorf("geocode: %w", provider.ErrNoResults)
	}

	cw, err := s.backend.Current(ctx, coords[0].Lat, coords[0].Lon)
	if err != nil {
		return types.WeatherSnapshot{}, err
	}
	if !complete(cw) {
		return types.WeatherSnapshot{}, fmt.Errorf("incomplete weather payload: %w", provider.ErrNoResults)
	}

	return types.WeatherSnapshot{
		Temperature: celsius(*cw.Main.Temp),
		FeelsLike:   celsius(*cw.Main.FeelsLike),
		Status:      cw.Weather[0].Description,
		Humidity:    *cw.Main.Humidity,
	}, nil
}

// complete reports whether every field of the snapshot is present; partial records are rejected.
func complete(cw *openweather.CurrentWeather) bool {
	if cw == nil || cw.Main == nil || len(cw.Weather) == 0 {
		return false
	}
	return cw.Main.Temp != nil && cw.Main.FeelsLike != nil && cw.Main.Humidity != nil &&
		cw.Weather[0].Description != ""
}

func celsius(v float64) string {
	return fmt.Sprintf("%.1f°C", v)
}
