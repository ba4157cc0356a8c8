package planner

import (
	"context"
	"iter"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/planner/pkg/ctdf"
)

// TransferCandidate is a stop on an origin route that at least one
// destination route also serves.
type TransferCandidate struct {
	OriginRoute ctdf.Route
	Stop        ctdf.Stop

	// Destination routes serving Stop, in the order the provider listed the
	// routes for Stop.
	ConnectingRoutes []ctdf.Route
}

func (c TransferCandidate) Plan() *ctdf.TransferPlan {
	return &ctdf.TransferPlan{
		OriginRoute:      c.OriginRoute.Reference(),
		TransferStop:     c.Stop.Reference(),
		DestinationRoute: c.ConnectingRoutes[0].Reference(),
	}
}

// FindTransfer returns the first one-transfer plan between the two stops, or
// nil when none exists. First means first in origin-route order and then stop
// order along that route; it is not the shortest or fastest option.
func (p *Planner) FindTransfer(ctx context.Context, originID string, destinationID string) *ctdf.TransferPlan {
	return p.newSearch().findTransfer(ctx, originID, destinationID)
}

// TransferCandidates yields every transfer point between the two stops in
// search order. Lookups happen as the sequence is consumed, so stopping early
// saves the remaining network calls.
func (p *Planner) TransferCandidates(ctx context.Context, originID string, destinationID string) iter.Seq[TransferCandidate] {
	return func(yield func(TransferCandidate) bool) {
		s := p.newSearch()

		originRoutes := s.routesServing(ctx, originID)
		destinationRoutes := s.routesServing(ctx, destinationID)

		for candidate := range s.transferCandidates(ctx, originRoutes, destinationRoutes) {
			if !yield(candidate) {
				return
			}
		}
	}
}

func (s *search) findTransfer(ctx context.Context, originID string, destinationID string) *ctdf.TransferPlan {
	originRoutes := s.routesServing(ctx, originID)
	destinationRoutes := s.routesServing(ctx, destinationID)

	log.Info().
		Int("originroutes", len(originRoutes)).
		Int("destinationroutes", len(destinationRoutes)).
		Msg("Looking for transfers")

	for candidate := range s.transferCandidates(ctx, originRoutes, destinationRoutes) {
		plan := candidate.Plan()

		log.Info().
			Str("stop", plan.TransferStop.Name).
			Str("from", plan.OriginRoute.Name).
			Str("to", plan.DestinationRoute.Name).
			Msg("Found transfer")

		return plan
	}

	return nil
}

// transferCandidates is a depth-two search: origin routes, the stops on each,
// then the routes serving each of those stops checked against the destination
// routes.
func (s *search) transferCandidates(ctx context.Context, originRoutes []ctdf.Route, destinationRoutes []ctdf.Route) iter.Seq[TransferCandidate] {
	destinationRouteMap := routeIDSet(destinationRoutes)

	return func(yield func(TransferCandidate) bool) {
		if len(destinationRouteMap) == 0 {
			return
		}

		for _, originRoute := range originRoutes {
			if ctx.Err() != nil {
				return
			}

			stops := s.stopsOn(ctx, originRoute.ID)
			servingRoutes := s.routeLookup(ctx, stops)

			for i, stop := range stops {
				if ctx.Err() != nil {
					return
				}

				connecting := connectingRoutes(servingRoutes(i), destinationRouteMap)
				if len(connecting) == 0 {
					continue
				}

				candidate := TransferCandidate{
					OriginRoute:      originRoute,
					Stop:             stop,
					ConnectingRoutes: connecting,
				}
				if !yield(candidate) {
					return
				}
			}
		}
	}
}

// routeLookup returns the routes serving stops[i]. Sequential searches look
// each stop up on demand; concurrent searches fetch the whole route's stops up
// front with a bounded pool so results are still read back in stop order.
func (s *search) routeLookup(ctx context.Context, stops []ctdf.Stop) func(int) []ctdf.Route {
	if s.concurrency <= 1 || len(stops) <= 1 {
		return func(i int) []ctdf.Route {
			return s.routesServing(ctx, stops[i].ID)
		}
	}

	results := make([][]ctdf.Route, len(stops))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.concurrency)
	for i := range stops {
		p.Go(func(ctx context.Context) error {
			results[i] = s.routesServing(ctx, stops[i].ID)
			return nil
		})
	}
	_ = p.Wait()

	return func(i int) []ctdf.Route {
		return results[i]
	}
}

// connectingRoutes keeps the routes that also serve the destination, resolved
// to the destination's own route records.
func connectingRoutes(stopRoutes []ctdf.Route, destinationRouteMap map[string]ctdf.Route) []ctdf.Route {
	var connecting []ctdf.Route
	for _, route := range stopRoutes {
		if destinationRoute, ok := destinationRouteMap[route.ID]; ok {
			connecting = append(connecting, destinationRoute)
		}
	}

	return connecting
}
