// README: OpenWeatherMap client for direct geocoding and current conditions.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client talks to the OpenWeatherMap REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at another host (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Coordinates is one direct-geocoding match.
type Coordinates struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentWeather mirrors the parts of /data/2.5/weather we read.
// Pointers distinguish a missing field from a zero reading.
type CurrentWeather struct {
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Geocode returns at most limit places matching location.
func (c *Client) Geocode(ctx context.Context, location string, limit int) ([]Coordinates, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", strconv.Itoa(limit))

	var out []Coordinates
	if err := c.getJSON(ctx, "/geo/1.0/direct", q, &out); err != nil {
		return nil, fmt.Errorf("openweather: geocode: %w", err)
	}
	return out, nil
}

// Current returns current conditions at lat,lon in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", "metric")

	var out CurrentWeather
	if err := c.getJSON(ctx, "/data/2.5/weather", q, &out); err != nil {
		return nil, fmt.Errorf("openweather: current weather: %w", err)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	q.Set("appid", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if json.Unmarshal(body, &ae) == nil && ae.Message != "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, ae.Message)
		}
		return fmt.Errorf("api error (status %d)", resp.StatusCode)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
