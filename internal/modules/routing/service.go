// README: Routing adapter turns Directions results into transportation options per travel mode.
package routing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/maps"
	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

const (
	providerName      = "routing"
	maxRoutesPerQuery = 2
	transitDepartHour = 9
)

// Router is the directions backend. *maps.RouteService satisfies it.
type Router interface {
	Routes(ctx context.Context, q maps.RouteQuery) ([]gmaps.Route, error)
}

type modePlan struct {
	label    string
	mode     gmaps.Mode
	submodes []gmaps.TransitMode
}

var (
	drivingPlan = modePlan{label: "Driving", mode: gmaps.TravelModeDriving}
	trainPlan   = modePlan{label: "Train", mode: gmaps.TravelModeTransit,
		submodes: []gmaps.TransitMode{gmaps.TransitModeTrain, gmaps.TransitModeRail}}
	transitPlan = modePlan{label: "Public Transit", mode: gmaps.TravelModeTransit,
		submodes: []gmaps.TransitMode{gmaps.TransitModeBus, gmaps.TransitModeTrain, gmaps.TransitModeSubway}}
)

// plansFor lists the directions queries for mode in priority order. Flight has none.
func plansFor(mode types.TransportMode) []modePlan {
	switch mode {
	case types.TransportCar:
		return []modePlan{drivingPlan}
	case types.TransportTrain:
		return []modePlan{trainPlan}
	case types.TransportFlight:
		return nil
	default:
		return []modePlan{transitPlan, drivingPlan}
	}
}

type Service struct {
	router Router
	logger *zap.Logger
	now    func() time.Time
}

func NewService(router Router, logger *zap.Logger) *Service {
	return &Service{router: router, logger: logger, now: time.Now}
}

// Fetch returns the transportation options from origin to destination on date.
// It never fails: a broken adapter yields an empty slice.
func (s *Service) Fetch(ctx context.Context, origin, destination, date string, mode types.TransportMode) []types.TransportationOption {
	query := fmt.Sprintf("%s -> %s (%s)", origin, destination, mode)
	return provider.Degrade(ctx, s.logger, providerName, query, []types.TransportationOption{},
		func(ctx context.Context) ([]types.TransportationOption, error) {
			opts, err := s.fetch(ctx, origin, destination, date, mode)
			return opts, provider.Wrap(providerName, query, err)
		})
}

// fetch returns ErrFallback with the no-routes option when every directions query failed.
func (s *Service) fetch(ctx context.Context, origin, destination, date string, mode types.TransportMode) ([]types.TransportationOption, error) {
	if mode == types.TransportFlight {
		return []types.TransportationOption{flightOption(origin, destination)}, nil
	}

	options := []types.TransportationOption{}
	var failures []error
	for _, p := range plansFor(mode) {
		q := maps.RouteQuery{
			Origin:       origin,
			Destination:  destination,
			Mode:         p.mode,
			TransitModes: p.submodes,
		}
		if p.mode == gmaps.TravelModeTransit {
			q.DepartureTime = s.departureTime(date)
		}

		routes, err := s.router.Routes(ctx, q)
		if err != nil {
			s.logger.Warn("directions query failed",
				zap.String("provider", providerName),
				zap.String("mode", string(p.mode)),
				zap.Error(provider.Wrap(providerName, origin+" -> "+destination, err)),
			)
			failures = append(failures, fmt.Errorf("%s: %w", p.label, err))
			continue
		}

		n := 0
		for _, r := range routes {
			if n == maxRoutesPerQuery {
				break
			}
			if len(r.Legs) == 0 || r.Legs[0] == nil {
				continue
			}
			options = append(options, legOption(p, n, r, r.Legs[0]))
			n++
		}
	}

	if len(options) == 0 {
		fallback := []types.TransportationOption{noRoutesOption(origin, destination)}
		if len(failures) == len(plansFor(mode)) {
			return fallback, fmt.Errorf("%w: %w", provider.ErrFallback, errors.Join(failures...))
		}
		return fallback, nil
	}
	return options, nil
}

// departureTime is 09:00 local on date while that is still ahead, otherwise "now".
func (s *Service) departureTime(date string) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "now"
	}
	depart := d.Add(transitDepartHour * time.Hour)
	if !depart.After(s.now()) {
		return "now"
	}
	return strconv.FormatInt(depart.Unix(), 10)
}
