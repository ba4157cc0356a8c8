package mbta

import (
	"context"
	"reflect"

	"github.com/travigo/planner/pkg/ctdf"
	"github.com/travigo/planner/pkg/dataaggregator/query"
	"github.com/travigo/planner/pkg/dataaggregator/source"
	"github.com/travigo/planner/pkg/mbta"
)

type Source struct {
	Client *mbta.Client
}

func (s Source) GetName() string {
	return "MBTA V3 API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]ctdf.Stop{}),
		reflect.TypeOf([]ctdf.Route{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.StopCatalog:
		return s.Client.Stops(ctx)
	case query.StopsForRoute:
		return s.Client.StopsOn(ctx, q.RouteID)
	case query.RoutesForStop:
		return s.Client.RoutesServing(ctx, q.StopID)
	default:
		return nil, source.UnsupportedSourceError
	}
}
