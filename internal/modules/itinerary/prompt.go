package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deepaklokare24/travel-agent/internal/types"
)

// Gathered is everything the provider adapters returned for one request.
type Gathered struct {
	Transportation []types.TransportationOption
	Weather        types.WeatherSnapshot
	Attractions    []types.Attraction
	Restaurants    []types.Restaurant
	Hotels         []types.Hotel
	LocalTips      []types.LocalTip
}

// BuildPrompt renders the generation prompt for req. days must come from DurationDays.
func BuildPrompt(req types.TripRequest, days int, g Gathered) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day travel itinerary from %s to %s.\n\n", days, req.FromLocation, req.ToLocation)

	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Start Date: %s\n", req.StartDate)
	fmt.Fprintf(&b, "- End Date: %s\n", req.EndDate)
	fmt.Fprintf(&b, "- Duration: %d days\n", days)
	fmt.Fprintf(&b, "- Travelers: %d\n", req.NumberOfTravelers)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Preferences.Budget)
	fmt.Fprintf(&b, "- Transportation: %s\n", req.Preferences.Transportation)
	fmt.Fprintf(&b, "- Accommodation: %s\n", req.Preferences.AccommodationType)
	if len(req.Preferences.Interests) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Preferences.Interests, ", "))
	}
	if req.Preferences.Pace != "" {
		fmt.Fprintf(&b, "- Pace: %s\n", req.Preferences.Pace)
	}

	b.WriteString("\nAVAILABLE INFORMATION:\n")
	section(&b, "Transportation Options", g.Transportation)
	section(&b, "Local Attractions", g.Attractions)
	section(&b, "Restaurants", g.Restaurants)
	section(&b, "Hotels", g.Hotels)
	section(&b, "Weather", g.Weather)
	section(&b, "Local Tips", g.LocalTips)

	b.WriteString("Format the response as a detailed day-by-day itinerary starting with:\n")
	fmt.Fprintf(&b, "\"%s\"\n\n", OpeningLine(days, req.FromLocation, req.ToLocation))

	b.WriteString(`Include for each day:
1. Date and day number
2. Morning activities with times
3. Afternoon activities with times
4. Evening activities with times
5. Restaurant recommendations for meals
6. Transportation details
7. Hotel/accommodation information

End with practical travel tips.`)

	return b.String()
}

// OpeningLine is the sentence every generated itinerary must start with.
func OpeningLine(days int, from, to string) string {
	return fmt.Sprintf("Here is your %d-day itinerary from %s to %s:", days, from, to)
}

func section(b *strings.Builder, title string, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		raw = []byte("[]")
	}
	fmt.Fprintf(b, "%s:\n%s\n\n", title, raw)
}
