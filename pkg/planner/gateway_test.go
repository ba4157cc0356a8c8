package planner

import (
	"context"
	"errors"
	"sync"

	"github.com/travigo/planner/pkg/ctdf"
	"golang.org/x/exp/slices"
)

var errUpstream = errors.New("upstream unavailable")

// fakeGateway serves a small fixed slice of the Boston network. Route lists
// come back in routeOrder, stops in catalog order.
type fakeGateway struct {
	stops      []ctdf.Stop
	routes     map[string]ctdf.Route
	routeOrder []string
	routeStops map[string][]string

	stopsErr      error
	routesErr     map[string]error
	stopsOnErr    map[string]error
	panicOnStopID string

	mu                 sync.Mutex
	routesServingCalls []string
	stopsOnCalls       []string
}

func newFakeGateway() *fakeGateway {
	stops := []ctdf.Stop{
		{ID: "place-harsq", Name: "Harvard", Latitude: 42.373362, Longitude: -71.118956},
		{ID: "place-knncl", Name: "Kendall/MIT", Latitude: 42.362491, Longitude: -71.086176},
		{ID: "place-pktrm", Name: "Park Street", Latitude: 42.356395, Longitude: -71.062424},
		{ID: "place-dwnxg", Name: "Downtown Crossing", Latitude: 42.355518, Longitude: -71.060225},
		{ID: "place-ogmnl", Name: "Oak Grove", Latitude: 42.43668, Longitude: -71.071097},
		{ID: "place-state", Name: "State", Latitude: 42.358978, Longitude: -71.057598},
		{ID: "place-forhl", Name: "Forest Hills", Latitude: 42.300523, Longitude: -71.113686},
		{ID: "place-wondl", Name: "Wonderland", Latitude: 42.41342, Longitude: -70.991648},
		{ID: "place-aport", Name: "Airport", Latitude: 42.374262, Longitude: -71.030395},
		{ID: "place-aqucl", Name: "Aquarium", Latitude: 42.359784, Longitude: -71.051652},
		{ID: "place-gover", Name: "Government Center", Latitude: 42.359705, Longitude: -71.059215},
		{ID: "place-bomnl", Name: "Bowdoin", Latitude: 42.361365, Longitude: -71.062037},
		{ID: "place-coecl", Name: "Copley", Latitude: 42.349974, Longitude: -71.077447},
		{ID: "place-hymnl", Name: "Hynes Convention Center", Latitude: 42.347888, Longitude: -71.087903},
		{ID: "place-kencl", Name: "Kenmore", Latitude: 42.348949, Longitude: -71.095169},
		{ID: "Boat-Long", Name: "Long Wharf", Latitude: 42.360795, Longitude: -71.049897},
		{ID: "Boat-Charlestown", Name: "Charlestown Navy Yard", Latitude: 42.372756, Longitude: -71.052528},
	}

	routes := map[string]ctdf.Route{
		"Red":     {ID: "Red", Name: "Red Line", Type: ctdf.RouteTypeSubway, Color: "DA291C"},
		"Orange":  {ID: "Orange", Name: "Orange Line", Type: ctdf.RouteTypeSubway, Color: "ED8B00"},
		"Blue":    {ID: "Blue", Name: "Blue Line", Type: ctdf.RouteTypeSubway, Color: "003DA5"},
		"Green-B": {ID: "Green-B", Name: "Green Line B", Type: ctdf.RouteTypeLightRail, Color: "00843D"},
		"Green-C": {ID: "Green-C", Name: "Green Line C", Type: ctdf.RouteTypeLightRail, Color: "00843D"},
		"Shuttle": {ID: "Shuttle", Name: "Harvard - Kenmore Shuttle", Type: ctdf.RouteTypeBus},
		"Boat-F4": {ID: "Boat-F4", Name: "Charlestown Ferry", Type: ctdf.RouteTypeFerry, Color: "008EAA"},
	}

	return &fakeGateway{
		stops:      stops,
		routes:     routes,
		routeOrder: []string{"Red", "Orange", "Blue", "Green-B", "Green-C", "Shuttle", "Boat-F4"},
		routeStops: map[string][]string{
			"Red":     {"place-harsq", "place-knncl", "place-pktrm", "place-dwnxg"},
			"Orange":  {"place-ogmnl", "place-state", "place-dwnxg", "place-forhl"},
			"Blue":    {"place-wondl", "place-aport", "place-aqucl", "place-state", "place-gover", "place-bomnl"},
			"Green-B": {"place-gover", "place-pktrm", "place-coecl", "place-hymnl", "place-kencl"},
			"Green-C": {"place-gover", "place-pktrm", "place-coecl", "place-kencl"},
			"Shuttle": {"place-harsq", "place-kencl"},
			"Boat-F4": {"Boat-Long", "Boat-Charlestown"},
		},
		routesErr:  map[string]error{},
		stopsOnErr: map[string]error{},
	}
}

func (g *fakeGateway) Stops(ctx context.Context) ([]ctdf.Stop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.stopsErr != nil {
		return nil, g.stopsErr
	}

	return slices.Clone(g.stops), nil
}

func (g *fakeGateway) RoutesServing(ctx context.Context, stopID string) ([]ctdf.Route, error) {
	g.mu.Lock()
	g.routesServingCalls = append(g.routesServingCalls, stopID)
	g.mu.Unlock()

	if stopID == g.panicOnStopID {
		panic("corrupt route record")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.routesErr[stopID]; err != nil {
		return nil, err
	}

	var routes []ctdf.Route
	for _, routeID := range g.routeOrder {
		if slices.Contains(g.routeStops[routeID], stopID) {
			routes = append(routes, g.routes[routeID])
		}
	}

	return routes, nil
}

func (g *fakeGateway) StopsOn(ctx context.Context, routeID string) ([]ctdf.Stop, error) {
	g.mu.Lock()
	g.stopsOnCalls = append(g.stopsOnCalls, routeID)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.stopsOnErr[routeID]; err != nil {
		return nil, err
	}

	var stops []ctdf.Stop
	for _, stopID := range g.routeStops[routeID] {
		for _, stop := range g.stops {
			if stop.ID == stopID {
				stops = append(stops, stop)
			}
		}
	}

	return stops, nil
}

func (g *fakeGateway) stopsOnCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.stopsOnCalls)
}
