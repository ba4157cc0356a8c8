package planner

import (
	"context"

	"github.com/travigo/planner/pkg/ctdf"
)

// DirectRoutes returns the routes serving both stops, in the origin's order.
// An empty result means there is no direct route.
func (p *Planner) DirectRoutes(ctx context.Context, originID string, destinationID string) []ctdf.Route {
	return p.newSearch().directRoutes(ctx, originID, destinationID)
}

func (s *search) directRoutes(ctx context.Context, originID string, destinationID string) []ctdf.Route {
	originRoutes := s.routesServing(ctx, originID)
	destinationRoutes := s.routesServing(ctx, destinationID)

	return intersectRoutes(originRoutes, destinationRoutes)
}

func intersectRoutes(originRoutes []ctdf.Route, destinationRoutes []ctdf.Route) []ctdf.Route {
	destinationIDs := routeIDSet(destinationRoutes)

	var common []ctdf.Route
	for _, route := range originRoutes {
		if _, ok := destinationIDs[route.ID]; ok {
			common = append(common, route)
		}
	}

	return common
}

func routeIDSet(routes []ctdf.Route) map[string]ctdf.Route {
	set := make(map[string]ctdf.Route, len(routes))
	for _, route := range routes {
		set[route.ID] = route
	}

	return set
}
