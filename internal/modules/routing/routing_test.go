package routing

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"github.com/deepaklokare24/travel-agent/internal/maps"
	"github.com/deepaklokare24/travel-agent/internal/provider"
	"github.com/deepaklokare24/travel-agent/internal/types"
)

type stubRouter struct {
	calls  []maps.RouteQuery
	routes map[gmaps.Mode][]gmaps.Route
	errs   map[gmaps.Mode]error
	panics bool
}

func (r *stubRouter) Routes(_ context.Context, q maps.RouteQuery) ([]gmaps.Route, error) {
	if r.panics {
		panic("boom")
	}
	r.calls = append(r.calls, q)
	if err := r.errs[q.Mode]; err != nil {
		return nil, err
	}
	return r.routes[q.Mode], nil
}

func route(summary, start, end string, d time.Duration, meters int) gmaps.Route {
	return gmaps.Route{
		Summary: summary,
		Legs: []*gmaps.Leg{{
			StartAddress: start,
			EndAddress:   end,
			Duration:     d,
			Distance:     gmaps.Distance{HumanReadable: "613 km", Meters: meters},
			Steps: []*gmaps.Step{
				{HTMLInstructions: "Head <b>south</b> on <b>Market St</b>"},
				{HTMLInstructions: "Merge onto <b>I-5 S</b><div style=\"font-size:0.9em\">Toll road</div>"},
			},
		}},
	}
}

func newTestService(r Router) *Service {
	s := NewService(r, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local) }
	return s
}

func TestFetch_ModeDispatch(t *testing.T) {
	tests := []struct {
		name      string
		mode      types.TransportMode
		wantModes []gmaps.Mode
	}{
		{"car queries driving only", types.TransportCar, []gmaps.Mode{gmaps.TravelModeDriving}},
		{"train queries transit only", types.TransportTrain, []gmaps.Mode{gmaps.TravelModeTransit}},
		{"mixed queries transit then driving", types.TransportMixed, []gmaps.Mode{gmaps.TravelModeTransit, gmaps.TravelModeDriving}},
		{"unknown behaves like mixed", types.ParseTransportMode("hovercraft"), []gmaps.Mode{gmaps.TravelModeTransit, gmaps.TravelModeDriving}},
		{"flight makes no calls", types.TransportFlight, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubRouter{}
			newTestService(r).Fetch(context.Background(), "San Francisco", "Los Angeles", "2024-02-01", tt.mode)

			var got []gmaps.Mode
			for _, c := range r.calls {
				got = append(got, c.Mode)
			}
			assert.Equal(t, tt.wantModes, got)
		})
	}
}

func TestFetch_TrainSubmodes(t *testing.T) {
	r := &stubRouter{}
	newTestService(r).Fetch(context.Background(), "A", "B", "2024-02-01", types.TransportTrain)

	require.Len(t, r.calls, 1)
	assert.Equal(t, []gmaps.TransitMode{gmaps.TransitModeTrain, gmaps.TransitModeRail}, r.calls[0].TransitModes)
}

func TestFetch_Flight(t *testing.T) {
	r := &stubRouter{}
	got := newTestService(r).Fetch(context.Background(), "San Francisco", "Los Angeles", "2024-02-01", types.TransportFlight)

	require.Len(t, got, 1)
	assert.Equal(t, "transportation", got[0].Type)
	assert.Contains(t, got[0].Description, "flight search")
	assert.Empty(t, r.calls)
}

func TestFetch_MixedOrderingAndCap(t *testing.T) {
	r := &stubRouter{routes: map[gmaps.Mode][]gmaps.Route{
		gmaps.TravelModeTransit: {
			route("Amtrak", "SF", "LA", 9*time.Hour, 650000),
			route("Greyhound", "SF", "LA", 8*time.Hour, 620000),
			route("FlixBus", "SF", "LA", 10*time.Hour, 640000),
		},
		gmaps.TravelModeDriving: {
			route("I-5 S", "SF", "LA", 5*time.Hour+48*time.Minute, 613000),
		},
	}}
	got := newTestService(r).Fetch(context.Background(), "SF", "LA", "2024-02-01", types.TransportMixed)

	require.Len(t, got, 3)
	assert.Equal(t, "Public Transit via Amtrak", got[0].Title)
	assert.Equal(t, "Public Transit via Greyhound", got[1].Title)
	assert.Equal(t, "Driving via I-5 S", got[2].Title)
	assert.Equal(t, "From SF to LA. Duration: 5 hours 48 mins. Distance: 613 km.", got[2].Description)
}

func TestFetch_DrivingExtras(t *testing.T) {
	r := &stubRouter{routes: map[gmaps.Mode][]gmaps.Route{
		gmaps.TravelModeDriving: {route("I-5 S", "SF", "LA", 6*time.Hour, 613000)},
	}}
	got := newTestService(r).Fetch(context.Background(), "SF", "LA", "2024-02-01", types.TransportCar)

	require.Len(t, got, 1)
	steps := got[0].Steps
	require.Len(t, steps, 6)
	assert.Equal(t, "Head south on Market St", steps[0])
	assert.Equal(t, "Merge onto I-5 S Toll road", steps[1])
	assert.Contains(t, steps[2], "rest stop every 2-3 hours")
	assert.Contains(t, steps[3], "parking")
	assert.Contains(t, steps[4], "serviced")
	assert.Equal(t, "Estimated fuel cost: $53.33", steps[5])
}

func TestFetch_TransitHasNoDrivingExtras(t *testing.T) {
	r := &stubRouter{routes: map[gmaps.Mode][]gmaps.Route{
		gmaps.TravelModeTransit: {route("", "SF", "LA", 9*time.Hour, 650000)},
	}}
	got := newTestService(r).Fetch(context.Background(), "SF", "LA", "2024-02-01", types.TransportTrain)

	require.Len(t, got, 1)
	assert.Equal(t, "Train", got[0].Title)
	for _, s := range got[0].Steps {
		assert.False(t, strings.HasPrefix(s, "Estimated fuel cost"))
	}
}

func TestFetch_PartialFailure(t *testing.T) {
	r := &stubRouter{
		errs: map[gmaps.Mode]error{gmaps.TravelModeTransit: errors.New("OVER_QUERY_LIMIT")},
		routes: map[gmaps.Mode][]gmaps.Route{
			gmaps.TravelModeDriving: {route("US-101 S", "SF", "LA", 7*time.Hour, 700000)},
		},
	}
	got := newTestService(r).Fetch(context.Background(), "SF", "LA", "2024-02-01", types.TransportMixed)

	require.Len(t, got, 1)
	assert.Equal(t, "Driving via US-101 S", got[0].Title)
	assert.Len(t, r.calls, 2)
}

func TestFetch_NoRoutes(t *testing.T) {
	r := &stubRouter{errs: map[gmaps.Mode]error{gmaps.TravelModeDriving: errors.New("down")}}
	got := newTestService(r).Fetch(context.Background(), "Honolulu", "Tokyo", "2024-02-01", types.TransportMixed)

	require.Len(t, got, 1)
	assert.Equal(t, "No direct routes found", got[0].Title)
	assert.NotEmpty(t, got[0].Steps)
}

func TestFetch_FallbackReason(t *testing.T) {
	tests := []struct {
		name         string
		router       *stubRouter
		wantFallback bool
	}{
		{"every mode failed", &stubRouter{errs: map[gmaps.Mode]error{
			gmaps.TravelModeTransit: errors.New("OVER_QUERY_LIMIT"),
			gmaps.TravelModeDriving: errors.New("REQUEST_DENIED"),
		}}, true},
		{"one mode failed, other empty", &stubRouter{errs: map[gmaps.Mode]error{
			gmaps.TravelModeDriving: errors.New("REQUEST_DENIED"),
		}}, false},
		{"zero results", &stubRouter{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestService(tt.router).fetch(context.Background(), "Honolulu", "Tokyo", "2024-02-01", types.TransportMixed)

			require.Len(t, got, 1)
			assert.Equal(t, "No direct routes found", got[0].Title)
			if tt.wantFallback {
				assert.ErrorIs(t, err, provider.ErrFallback)
				assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFetch_AllModesFailedKeepsNoRoutesOption(t *testing.T) {
	r := &stubRouter{errs: map[gmaps.Mode]error{gmaps.TravelModeDriving: errors.New("down")}}
	got := newTestService(r).Fetch(context.Background(), "Oakland", "Reno", "2024-02-01", types.TransportCar)

	require.Len(t, got, 1)
	assert.Equal(t, "No direct routes found", got[0].Title)
}

func TestFetch_PanicDegradesToEmpty(t *testing.T) {
	got := newTestService(&stubRouter{panics: true}).Fetch(context.Background(), "A", "B", "2024-02-01", types.TransportCar)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDepartureTime(t *testing.T) {
	s := newTestService(&stubRouter{})

	future := time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)
	assert.Equal(t, strconv.FormatInt(future.Unix(), 10), s.departureTime("2024-02-01"))
	assert.Equal(t, "now", s.departureTime("2023-12-31"))
	assert.Equal(t, "now", s.departureTime("not-a-date"))

	r := &stubRouter{}
	s = newTestService(r)
	s.Fetch(context.Background(), "A", "B", "2024-02-01", types.TransportMixed)
	require.Len(t, r.calls, 2)
	assert.NotEmpty(t, r.calls[0].DepartureTime)
	assert.Empty(t, r.calls[1].DepartureTime)
}

func TestEstimateFuelCost(t *testing.T) {
	assert.Equal(t, 0.0, EstimateFuelCost(0))
	assert.InDelta(t, 0.0869919, EstimateFuelCost(1000), 1e-6)
	assert.Equal(t, EstimateFuelCost(613000), EstimateFuelCost(613000))

	prev := EstimateFuelCost(0)
	for _, m := range []int{1, 500, 1609, 100000, 613000, 4500000} {
		cur := EstimateFuelCost(m)
		assert.Greater(t, cur, prev, "meters=%d", m)
		prev = cur
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{20 * time.Second, "1 min"},
		{45 * time.Minute, "45 mins"},
		{time.Hour + time.Minute, "1 hour 1 min"},
		{5*time.Hour + 48*time.Minute, "5 hours 48 mins"},
		{2 * time.Hour, "2 hours"},
		{26*time.Hour + 10*time.Minute, "1 day 2 hours"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.in))
		})
	}
}
