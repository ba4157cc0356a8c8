package planner

import (
	"context"

	"github.com/travigo/planner/pkg/ctdf"
)

// Gateway is the transit data the planner needs. Implementations return an
// error rather than an empty result when the upstream call fails.
type Gateway interface {
	Stops(ctx context.Context) ([]ctdf.Stop, error)
	RoutesServing(ctx context.Context, stopID string) ([]ctdf.Route, error)
	StopsOn(ctx context.Context, routeID string) ([]ctdf.Stop, error)
}
