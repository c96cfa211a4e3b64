// README: Points-of-interest adapters: attractions from web search, restaurants and hotels from Google Places.
package places

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/search"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const (
	attractionsProvider = "attractions"
	maxAttractions      = 5
)

// AttractionService finds tourist attractions with a web search.
type AttractionService struct {
	searcher search.Searcher
	logger   *zap.Logger
}

func NewAttractionService(searcher search.Searcher, logger *zap.Logger) *AttractionService {
	return &AttractionService{searcher: searcher, logger: logger}
}

// Fetch returns up to five attractions in location, or an empty slice on failure.
func (s *AttractionService) Fetch(ctx context.Context, location string) []types.Attraction {
	query := "top tourist attractions in " + location
	return provider.Degrade(ctx, s.logger, attractionsProvider, query, []types.Attraction{},
		func(ctx context.Context) ([]types.Attraction, error) {
			raw, err := s.searcher.Search(ctx, search.Query{
				Text:          query,
				MaxResults:    maxAttractions,
				Depth:         "advanced",
				IncludeImages: true,
			})
			if err != nil {
				return nil, provider.Wrap(attractionsProvider, query, err)
			}

			out := []types.Attraction{}
			if len(raw) > maxAttractions {
				raw = raw[:maxAttractions]
			}
			for i, msg := range raw {
				r, err := search.Decode(msg)
				if err != nil {
					s.logger.Warn("skipping malformed search result",
						zap.String("provider", attractionsProvider), zap.Int("index", i), zap.Error(err))
					continue
				}
				out = append(out, types.Attraction{
					Title:       r.String("Unknown Attraction", "title"),
					Description: r.String("No description available", "content", "snippet"),
					URL:         r.String("", "url", "link"),
					Image:       r.String("", "image_url", "thumbnail"),
					Rating:      r.Float("rating", types.DefaultRating),
					Category:    "Tourist Spot",
				})
			}
			return out, nil
		})
}
