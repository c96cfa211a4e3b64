package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily searches via the Tavily search API.
type Tavily struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewTavily(apiKey string) *Tavily {
	return &Tavily{apiKey: apiKey, endpoint: tavilyEndpoint, http: defaultHTTPClient}
}

// WithEndpoint overrides the API URL.
func (t *Tavily) WithEndpoint(u string) *Tavily {
	t.endpoint = u
	return t
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth,omitempty"`
	IncludeImages bool   `json:"include_images"`
	MaxResults    int    `json:"max_results,omitempty"`
}

type tavilyResponse struct {
	Results []json.RawMessage `json:"results"`
}

func (t *Tavily) Search(ctx context.Context, q Query) ([]json.RawMessage, error) {
	var out tavilyResponse
	err := doJSON(ctx, t.http, http.MethodPost, t.endpoint, tavilyRequest{
		APIKey:        t.apiKey,
		Query:         q.Text,
		SearchDepth:   q.Depth,
		IncludeImages: q.IncludeImages,
		MaxResults:    q.MaxResults,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}
	return out.Results, nil
}
