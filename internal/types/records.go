// README: Normalized provider records embedded in the itinerary envelope.
package types

import "encoding/json"

// TransportationOption is one way of travelling between origin and destination.
type TransportationOption struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// WeatherSnapshot holds current conditions at the destination.
// The zero value means "unavailable" and is serialized as an empty object.
type WeatherSnapshot struct {
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	Status      string `json:"status"`
	Humidity    int    `json:"humidity"`
}

func (w WeatherSnapshot) IsEmpty() bool {
	return w == WeatherSnapshot{}
}

func (w WeatherSnapshot) MarshalJSON() ([]byte, error) {
	if w.IsEmpty() {
		return []byte("{}"), nil
	}
	type snapshot WeatherSnapshot
	return json.Marshal(snapshot(w))
}

// DefaultRating is used whenever a provider does not report a rating.
const DefaultRating = 4.0

type Attraction struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
}

type Restaurant struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Rating      float64 `json:"rating"`
	Cuisine     string  `json:"cuisine"`
	PriceLevel  string  `json:"price_level"`
}

type Hotel struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Rating      float64  `json:"rating"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
}

type LocalTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}
