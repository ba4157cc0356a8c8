package planner

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/ctdf"
)

// search holds the per-request state of one planning call. Failed route and
// stop lookups are logged, counted and treated as empty results.
type search struct {
	gateway     Gateway
	concurrency int

	upstreamErrors atomic.Int64
}

func (s *search) routesServing(ctx context.Context, stopID string) []ctdf.Route {
	routes, err := s.gateway.RoutesServing(ctx, stopID)
	if err != nil {
		s.upstreamErrors.Add(1)
		log.Error().Err(err).Str("stop", stopID).Msg("Failed to get routes for stop")
		return nil
	}

	return routes
}

func (s *search) stopsOn(ctx context.Context, routeID string) []ctdf.Stop {
	stops, err := s.gateway.StopsOn(ctx, routeID)
	if err != nil {
		s.upstreamErrors.Add(1)
		log.Error().Err(err).Str("route", routeID).Msg("Failed to get stops for route")
		return nil
	}

	return stops
}

func (s *search) errorCount() int {
	return int(s.upstreamErrors.Load())
}
