package dataaggregator

import (
	"context"

	"github.com/travigo/planner/pkg/ctdf"
	"github.com/travigo/planner/pkg/dataaggregator/query"
)

func (a *Aggregator) Stops(ctx context.Context) ([]ctdf.Stop, error) {
	return Lookup[[]ctdf.Stop](ctx, a, query.StopCatalog{})
}

func (a *Aggregator) RoutesServing(ctx context.Context, stopID string) ([]ctdf.Route, error) {
	return Lookup[[]ctdf.Route](ctx, a, query.RoutesForStop{StopID: stopID})
}

func (a *Aggregator) StopsOn(ctx context.Context, routeID string) ([]ctdf.Stop, error) {
	return Lookup[[]ctdf.Stop](ctx, a, query.StopsForRoute{RouteID: routeID})
}
