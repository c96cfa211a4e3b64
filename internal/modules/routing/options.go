package routing

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/types"
)

const optionType = "transportation"

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// stripHTML turns a Directions html_instructions string into plain text.
func stripHTML(s string) string {
	s = htmlTag.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

// formatDuration renders d the way the Directions API does ("5 hours 48 mins").
func formatDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	days, mins := mins/(24*60), mins%(24*60)
	hours, mins := mins/60, mins%60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if mins > 0 && days == 0 {
		parts = append(parts, plural(mins, "min"))
	}
	if len(parts) == 0 {
		return "1 min"
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func legOption(p modePlan, index int, route gmaps.Route, leg *gmaps.Leg) types.TransportationOption {
	title := p.label
	if route.Summary != "" {
		title = fmt.Sprintf("%s via %s", p.label, route.Summary)
	} else if index > 0 {
		title = fmt.Sprintf("%s (alternative %d)", p.label, index)
	}

	steps := make([]string, 0, len(leg.Steps)+4)
	for _, st := range leg.Steps {
		if st == nil {
			continue
		}
		text := stripHTML(st.HTMLInstructions)
		if td := st.TransitDetails; td != nil {
			text += transitSuffix(td)
		}
		if text != "" {
			steps = append(steps, text)
		}
	}
	if p.mode == gmaps.TravelModeDriving {
		steps = append(steps, drivingExtras(leg)...)
	}

	return types.TransportationOption{
		Type:  optionType,
		Title: title,
		Description: fmt.Sprintf("From %s to %s. Duration: %s. Distance: %s.",
			leg.StartAddress, leg.EndAddress, formatDuration(leg.Duration), leg.Distance.HumanReadable),
		Steps: steps,
	}
}

func transitSuffix(td *gmaps.TransitDetails) string {
	line := td.Line.ShortName
	if line == "" {
		line = td.Line.Name
	}
	if line == "" || td.DepartureStop.Name == "" {
		return ""
	}
	return fmt.Sprintf(" (%s from %s to %s, %d stops)", line, td.DepartureStop.Name, td.ArrivalStop.Name, td.NumStops)
}

func drivingExtras(leg *gmaps.Leg) []string {
	rest := "Take a rest stop every 2-3 hours of driving"
	if stops := int(leg.Duration.Hours() / 2.5); stops > 0 {
		rest = fmt.Sprintf("%s (about %d for this drive)", rest, stops)
	}
	return []string{
		rest,
		"Check parking availability and rates at your destination",
		"Have your vehicle serviced before the trip: tires, oil and brakes",
		fmt.Sprintf("Estimated fuel cost: $%.2f", EstimateFuelCost(leg.Distance.Meters)),
	}
}

func flightOption(origin, destination string) types.TransportationOption {
	return types.TransportationOption{
		Type:        optionType,
		Title:       fmt.Sprintf("Flight from %s to %s", origin, destination),
		Description: "Flight schedules and fares are not available here. Check a flight search service for current options.",
		Steps: []string{
			"Compare fares on a flight search service such as Google Flights, Kayak or Skyscanner",
			fmt.Sprintf("Check which airports serve %s and %s", origin, destination),
			"Book ground transportation from the arrival airport",
		},
	}
}

func noRoutesOption(origin, destination string) types.TransportationOption {
	return types.TransportationOption{
		Type:        optionType,
		Title:       "No direct routes found",
		Description: fmt.Sprintf("No direct routes were found from %s to %s.", origin, destination),
		Steps: []string{
			"Consider flying to a nearby airport",
			"Look for connecting bus or train services through a nearby hub city",
			"Check regional transit agencies for seasonal or limited services",
		},
	}
}
