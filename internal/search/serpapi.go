package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const serpAPIEndpoint = "https://serpapi.com/search.json"

// SerpAPI searches Google through serpapi.com. Hits carry "link" where
// Tavily carries "url".
type SerpAPI struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewSerpAPI(apiKey string) *SerpAPI {
	return &SerpAPI{apiKey: apiKey, endpoint: serpAPIEndpoint, http: defaultHTTPClient}
}

func (s *SerpAPI) WithEndpoint(u string) *SerpAPI {
	s.endpoint = u
	return s
}

type serpResponse struct {
	Error          string            `json:"error"`
	OrganicResults []json.RawMessage `json:"organic_results"`
}

func (s *SerpAPI) Search(ctx context.Context, q Query) ([]json.RawMessage, error) {
	v := url.Values{}
	v.Set("engine", "google")
	v.Set("q", q.Text)
	v.Set("api_key", s.apiKey)
	if q.MaxResults > 0 {
		v.Set("num", strconv.Itoa(q.MaxResults))
	}

	var out serpResponse
	if err := doJSON(ctx, s.http, http.MethodGet, s.endpoint+"?"+v.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("serpapi: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("serpapi: %s", out.Error)
	}
	return out.OrganicResults, nil
}
