// README: Itinerary composer fans out to the provider adapters, builds the prompt and wraps the generated text.
package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deepaklokare24/travel-agent/internal/ai"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

type RoutingFetcher interface {
	Fetch(ctx context.Context, origin, destination, date string, mode types.TransportMode) []types.TransportationOption
}

type WeatherFetcher interface {
	Fetch(ctx context.Context, location, date string) types.WeatherSnapshot
}

type AttractionFetcher interface {
	Fetch(ctx context.Context, location string) []types.Attraction
}

type RestaurantFetcher interface {
	Fetch(ctx context.Context, location string) []types.Restaurant
}

type HotelFetcher interface {
	Fetch(ctx context.Context, location, checkIn string) []types.Hotel
}

type TipFetcher interface {
	Fetch(ctx context.Context, location string) []types.LocalTip
}

// Adapters bundles the six provider adapters. Each one absorbs its own failures.
type Adapters struct {
	Routing     RoutingFetcher
	Weather     WeatherFetcher
	Attractions AttractionFetcher
	Restaurants RestaurantFetcher
	Hotels      HotelFetcher
	Tips        TipFetcher
}

type Options struct {
	ProviderTimeout   time.Duration
	GenerationTimeout time.Duration
}

const (
	defaultProviderTimeout   = 15 * time.Second
	defaultGenerationTimeout = 90 * time.Second
)

var composeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "travel_agent",
	Name:      "compose_duration_seconds",
	Help:      "Wall time of one itinerary composition.",
	Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 60, 90, 120},
}, []string{"outcome"})

type Service struct {
	adapters  Adapters
	generator ai.TextGenerator
	logger    *zap.Logger
	opts      Options
	now       func() time.Time
}

func NewService(adapters Adapters, generator ai.TextGenerator, logger *zap.Logger, opts Options) *Service {
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = defaultProviderTimeout
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = defaultGenerationTimeout
	}
	return &Service{
		adapters:  adapters,
		generator: generator,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// Compose produces the itinerary envelope for req. Provider failures degrade
// to empty sections; date and generation failures fail the whole request.
func (s *Service) Compose(ctx context.Context, req types.TripRequest) (resp *types.ItineraryResponse, err error) {
	started := time.Now()
	ctx, span := otel.Tracer("itinerary").Start(ctx, "Compose")
	span.SetAttributes(
		attribute.String("trip.from", req.FromLocation),
		attribute.String("trip.to", req.ToLocation),
	)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		composeDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
		span.End()
	}()

	days, err := DurationDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(
		zap.String("from", req.FromLocation),
		zap.String("to", req.ToLocation),
		zap.Int("days", days),
	)
	log.Info("composing itinerary")

	g, err := s.gather(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Debug("providers joined",
		zap.Int("transportation", len(g.Transportation)),
		zap.Bool("weather", !g.Weather.IsEmpty()),
		zap.Int("attractions", len(g.Attractions)),
		zap.Int("restaurants", len(g.Restaurants)),
		zap.Int("hotels", len(g.Hotels)),
		zap.Int("local_tips", len(g.LocalTips)),
	)

	genCtx, cancel := context.WithTimeout(ctx, s.opts.GenerationTimeout)
	defer cancel()
	text, err := s.generator.Generate(genCtx, BuildPrompt(req, days, g))
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	return &types.ItineraryResponse{
		Itinerary:    text,
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		GeneratedAt:  s.now().UTC(),
		Metadata: types.ItineraryMetadata{
			IncludesWeather:   req.IncludeWeather,
			IncludesLocalTips: req.IncludeLocalTips,
			NumberOfTravelers: req.NumberOfTravelers,
		},
		TransportationInfo: g.Transportation,
		WeatherInfo:        g.Weather,
		Attractions:        g.Attractions,
		Restaurants:        g.Restaurants,
		Hotels:             g.Hotels,
		LocalTips:          g.LocalTips,
		RequestDetails: types.RequestDetails{
			FromLocation:      req.FromLocation,
			ToLocation:        req.ToLocation,
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			DurationDays:      days,
			Preferences:       req.Preferences,
			NumberOfTravelers: req.NumberOfTravelers,
		},
	}, nil
}

// gather runs the six adapters concurrently, each under its own deadline.
func (s *Service) gather(ctx context.Context, req types.TripRequest) (Gathered, error) {
	var out Gathered
	a := s.adapters
	eg, gctx := errgroup.WithContext(ctx)

	run := func(fn func(ctx context.Context)) {
		eg.Go(func() error {
			c, cancel := context.WithTimeout(gctx, s.opts.ProviderTimeout)
			defer cancel()
			fn(c)
			return nil
		})
	}

	run(func(c context.Context) {
		out.Transportation = a.Routing.Fetch(c, req.FromLocation, req.ToLocation, req.StartDate, req.Preferences.Mode())
	})
	run(func(c context.Context) { out.Weather = a.Weather.Fetch(c, req.ToLocation, req.StartDate) })
	run(func(c context.Context) { out.Attractions = a.Attractions.Fetch(c, req.ToLocation) })
	run(func(c context.Context) { out.Restaurants = a.Restaurants.Fetch(c, req.ToLocation) })
	run(func(c context.Context) { out.Hotels = a.Hotels.Fetch(c, req.ToLocation, req.StartDate) })
	run(func(c context.Context) { out.LocalTips = a.Tips.Fetch(c, req.ToLocation) })

	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return Gathered{}, fmt.Errorf("gather provider data: %w", err)
	}
	return out, nil
}
