// README: Wires configuration into the provider adapters, the LLM backend and the itinerary composer.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/ai"
	"github.com/deepaklokare24/travel-agent/internal/config"
	"github.com/deepaklokare24/travel-agent/internal/maps"
	"github.com/deepaklokare24/travel-agent/internal/modules/itinerary"
	"github.com/deepaklokare24/travel-agent/internal/modules/places"
	"github.com/deepaklokare24/travel-agent/internal/modules/routing"
	"github.com/deepaklokare24/travel-agent/internal/modules/tips"
	"github.com/deepaklokare24/travel-agent/internal/modules/weather"
	"github.com/deepaklokare24/travel-agent/internal/openweather"
	"github.com/deepaklokare24/travel-agent/internal/search"
)

// NewSearcher returns the configured web-search backend.
func NewSearcher(cfg config.Config) search.Searcher {
	if cfg.Search.Provider == config.SearchSerpAPI {
		return search.NewSerpAPI(cfg.Keys.SerpAPI)
	}
	return search.NewTavily(cfg.Keys.Tavily)
}

// NewGenerator returns the configured LLM backend and a func releasing it.
func NewGenerator(ctx context.Context, cfg config.Config) (ai.TextGenerator, func(), error) {
	switch cfg.LLM.Provider {
	case config.LLMGemini:
		g, err := ai.NewGeminiGenerator(ctx, cfg.Keys.Gemini, cfg.LLM.Model, float32(cfg.LLM.Temperature))
		if err != nil {
			return nil, nil, err
		}
		return g, func() { _ = g.Close() }, nil
	default:
		g, err := ai.NewOpenAIGenerator(cfg.Keys.OpenAI, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			return nil, nil, err
		}
		return g, func() {}, nil
	}
}

// NewComposer builds the itinerary composer with every adapter wired to its provider.
func NewComposer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*itinerary.Service, func(), error) {
	mapsClient, err := maps.NewClient(cfg.Keys.GoogleMaps)
	if err != nil {
		return nil, nil, err
	}
	placesSvc := maps.NewPlacesService(mapsClient)
	searcher := NewSearcher(cfg)

	gen, closeGen, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init %s generator: %w", cfg.LLM.Provider, err)
	}

	adapters := itinerary.Adapters{
		Routing:     routing.NewService(maps.NewRouteService(mapsClient), logger),
		Weather:     weather.NewService(openweather.NewClient(cfg.Keys.OpenWeatherMap), logger),
		Attractions: places.NewAttractionService(searcher, logger),
		Restaurants: places.NewRestaurantService(placesSvc, logger),
		Hotels:      places.NewHotelService(placesSvc, logger),
		Tips:        tips.NewService(searcher, logger),
	}
	svc := itinerary.NewService(adapters, gen, logger, itinerary.Options{
		ProviderTimeout:   cfg.Timeouts.Provider,
		GenerationTimeout: cfg.Timeouts.Generation,
	})
	return svc, closeGen, nil
}
