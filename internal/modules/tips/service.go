// README: Local-tips adapter searches the web for customs and practical advice at the destination.
package tips

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/search"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const (
	providerName = "local_tips"
	maxTips      = 3
)

type Service struct {
	searcher search.Searcher
	logger   *zap.Logger
}

func NewService(searcher search.Searcher, logger *zap.Logger) *Service {
	return &Service{searcher: searcher, logger: logger}
}

// Fetch returns up to three tips for location, or an empty slice on failure.
func (s *Service) Fetch(ctx context.Context, location string) []types.LocalTip {
	query := "local tips and customs in " + location
	return provider.Degrade(ctx, s.logger, providerName, query, []types.LocalTip{},
		func(ctx context.Context) ([]types.LocalTip, error) {
			raw, err := s.searcher.Search(ctx, search.Query{Text: query, MaxResults: maxTips, Depth: "advanced"})
			if err != nil {
				return nil, provider.Wrap(providerName, query, err)
			}

			out := []types.LocalTip{}
			if len(raw) > maxTips {
				raw = raw[:maxTips]
			}
			for i, msg := range raw {
				r, err := search.Decode(msg)
				if err != nil {
					s.logger.Warn("skipping malformed search result",
						zap.String("provider", providerName), zap.Int("index", i), zap.Error(err))
					continue
				}
				out = append(out, types.LocalTip{
					Title:       r.String("Local Tip", "title"),
					Description: r.String("No description available", "content", "snippet"),
					URL:         r.String("", "url", "link"),
					Category:    "Local Tips",
				})
			}
			return out, nil
		})
}
