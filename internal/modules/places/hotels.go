package places

import (
	"context"

	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const hotelsProvider = "hotels"

type HotelService struct {
	finder Finder
	logger *zap.Logger
}

func NewHotelService(finder Finder, logger *zap.Logger) *HotelService {
	return &HotelService{finder: finder, logger: logger}
}

// Fetch returns up to five lodgings near location. checkIn is echoed to the
// log only; Places has no availability data.
func (s *HotelService) Fetch(ctx context.Context, location, checkIn string) []types.Hotel {
	return provider.Degrade(ctx, s.logger, hotelsProvider, location, []types.Hotel{},
		func(ctx context.Context) ([]types.Hotel, error) {
			s.logger.Debug("searching lodging", zap.String("location", location), zap.String("check_in", checkIn))

			places, err := nearbyDetails(ctx, s.finder, s.logger, hotelsProvider, location, gmaps.PlaceTypeLodging)
			if err != nil {
				return nil, provider.Wrap(hotelsProvider, location, err)
			}

			out := make([]types.Hotel, 0, len(places))
			for _, p := range places {
				amenities := make([]string, 0, len(p.Types))
				for _, t := range p.Types {
					amenities = append(amenities, humanizeType(t))
				}
				out = append(out, types.Hotel{
					Name:        p.Name,
					Description: p.Address,
					URL:         placeURL(p),
					Rating:      rating(p.Rating),
					Location:    location,
					Amenities:   amenities,
				})
			}
			return out, nil
		})
}
