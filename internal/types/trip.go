// README: Trip request value objects shared by the boundary and the itinerary composer.
package types

import "strings"

// TransportMode is the traveler's preferred way of getting to the destination.
type TransportMode string

const (
	TransportCar    TransportMode = "car"
	TransportTrain  TransportMode = "train"
	TransportFlight TransportMode = "flight"
	TransportMixed  TransportMode = "mixed"
)

// ParseTransportMode resolves a free-form preference. Unknown or empty values fall back to mixed.
func ParseTransportMode(v string) TransportMode {
	switch TransportMode(strings.ToLower(strings.TrimSpace(v))) {
	case TransportCar:
		return TransportCar
	case TransportTrain:
		return TransportTrain
	case TransportFlight:
		return TransportFlight
	default:
		return TransportMixed
	}
}

type Preferences struct {
	Budget            string   `json:"budget"`
	Interests         []string `json:"interests"`
	Transportation    string   `json:"transportation"`
	AccommodationType string   `json:"accommodation_type"`
	Pace              string   `json:"pace"`
}

// Mode returns the resolved transportation mode.
func (p Preferences) Mode() TransportMode {
	return ParseTransportMode(p.Transportation)
}

// TripRequest is one itinerary request. Dates stay as ISO strings until the composer parses them.
type TripRequest struct {
	FromLocation      string      `json:"from_location"`
	ToLocation        string      `json:"to_location"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	Preferences       Preferences `json:"preferences"`
	NumberOfTravelers int         `json:"number_of_travelers"`
	IncludeWeather    bool        `json:"include_weather"`
	IncludeLocalTips  bool        `json:"include_local_tips"`
}
