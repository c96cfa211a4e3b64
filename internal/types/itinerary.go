package types

import "time"

// ItineraryMetadata echoes the content flags and party size.
type ItineraryMetadata struct {
	IncludesWeather   bool `json:"includes_weather"`
	IncludesLocalTips bool `json:"includes_local_tips"`
	NumberOfTravelers int  `json:"number_of_travelers"`
}

// RequestDetails echoes the request together with the computed trip length.
type RequestDetails struct {
	FromLocation      string      `json:"from_location"`
	ToLocation        string      `json:"to_location"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	DurationDays      int         `json:"duration_days"`
	Preferences       Preferences `json:"preferences"`
	NumberOfTravelers int         `json:"number_of_travelers"`
}

// ItineraryResponse is the envelope returned for a composed trip. The generated
// narrative sits next to the raw provider data, it never replaces it.
type ItineraryResponse struct {
	Itinerary          string                 `json:"itinerary"`
	FromLocation       string                 `json:"from_location"`
	ToLocation         string                 `json:"to_location"`
	StartDate          string                 `json:"start_date"`
	EndDate            string                 `json:"end_date"`
	GeneratedAt        time.Time              `json:"generated_at"`
	Metadata           ItineraryMetadata      `json:"metadata"`
	TransportationInfo []TransportationOption `json:"transportation_info"`
	WeatherInfo        WeatherSnapshot        `json:"weather_info"`
	Attractions        []Attraction           `json:"attractions"`
	Restaurants        []Restaurant           `json:"restaurants"`
	Hotels             []Hotel                `json:"hotels"`
	LocalTips          []LocalTip             `json:"local_tips"`
	RequestDetails     RequestDetails         `json:"request_details"`
}
