package places

import (
	"context"
	"strings"

	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const (
	restaurantsProvider = "restaurants"
	defaultPriceLevel   = 2
)

type RestaurantService struct {
	finder Finder
	logger *zap.Logger
}

func NewRestaurantService(finder Finder, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{finder: finder, logger: logger}
}

// Fetch returns up to five restaurants near location, or an empty slice on failure.
func (s *RestaurantService) Fetch(ctx context.Context, location string) []types.Restaurant {
	return provider.Degrade(ctx, s.logger, restaurantsProvider, location, []types.Restaurant{},
		func(ctx context.Context) ([]types.Restaurant, error) {
			places, err := nearbyDetails(ctx, s.finder, s.logger, restaurantsProvider, location, gmaps.PlaceTypeRestaurant)
			if err != nil {
				return nil, provider.Wrap(restaurantsProvider, location, err)
			}

			out := make([]types.Restaurant, 0, len(places))
			for _, p := range places {
				cuisine := "Restaurant"
				if len(p.Types) > 0 {
					cuisine = humanizeType(p.Types[0])
				}
				level := p.PriceLevel
				if level <= 0 {
					level = defaultPriceLevel
				}
				out = append(out, types.Restaurant{
					Name:        p.Name,
					Description: p.Address,
					URL:         placeURL(p),
					Rating:      rating(p.Rating),
					Cuisine:     cuisine,
					PriceLevel:  strings.Repeat("$", level),
				})
			}
			return out, nil
		})
}
