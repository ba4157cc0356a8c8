package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/ctdf"
)

// Planner answers origin/destination questions with at most one transfer.
// It keeps no state between calls and is safe for concurrent use.
type Planner struct {
	Gateway Gateway

	// Number of concurrent route lookups per origin route during the transfer
	// search. 1 keeps the search fully sequential.
	TransferConcurrency int
}

func New(gateway Gateway, transferConcurrency int) *Planner {
	if transferConcurrency < 1 {
		transferConcurrency = 1
	}

	return &Planner{
		Gateway:             gateway,
		TransferConcurrency: transferConcurrency,
	}
}

func (p *Planner) newSearch() *search {
	concurrency := p.TransferConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &search{
		gateway:     p.Gateway,
		concurrency: concurrency,
	}
}

// Plan resolves both names to stops, then looks for a direct route and only
// if there is none a single-transfer route. It always returns a result; the
// outcome tells the caller which fields are populated.
func (p *Planner) Plan(ctx context.Context, originName string, destinationName string) (result *ctdf.PlanResult) {
	defer func() {
		if r := recover(); r != nil {
			cause := fmt.Errorf("panic while planning: %v", r)
			log.Error().
				Err(cause).
				Str("origin", originName).
				Str("destination", destinationName).
				Msg("Unexpected failure planning route")

			result = ctdf.NewUnexpectedFailureResult(cause)
		}
	}()

	log.Info().Str("origin", originName).Str("destination", destinationName).Msg("Planning route")

	origin, failure := p.resolve(ctx, ctdf.ResolutionSideOrigin, originName)
	if failure != nil {
		return failure
	}

	destination, failure := p.resolve(ctx, ctdf.ResolutionSideDestination, destinationName)
	if failure != nil {
		return failure
	}

	s := p.newSearch()

	direct := s.directRoutes(ctx, origin.ID, destination.ID)
	if err := ctx.Err(); err != nil {
		return ctdf.NewUpstreamFailureResult(err)
	}
	if len(direct) > 0 {
		log.Info().Int("routes", len(direct)).Msg("Found direct routes")

		result = ctdf.NewDirectRoutesResult(origin, destination, direct)
		result.UpstreamErrors = s.errorCount()
		return result
	}

	transfer := s.findTransfer(ctx, origin.ID, destination.ID)
	if err := ctx.Err(); err != nil {
		return ctdf.NewUpstreamFailureResult(err)
	}
	if transfer != nil {
		result = ctdf.NewTransferResult(origin, destination, transfer)
	} else {
		log.Info().Str("origin", origin.ID).Str("destination", destination.ID).Msg("No route found")
		result = ctdf.NewNoRouteResult(origin, destination)
	}

	result.UpstreamErrors = s.errorCount()
	if result.UpstreamErrors > 0 {
		log.Warn().Int("upstreamerrors", result.UpstreamErrors).Msg("Route search ran with failed lookups")
	}

	return result
}

func (p *Planner) resolve(ctx context.Context, side ctdf.ResolutionSide, name string) (*ctdf.Stop, *ctdf.PlanResult) {
	stop, err := p.ResolveStop(ctx, name)
	if err == nil {
		return stop, nil
	}

	if errors.Is(err, ErrStopNotFound) {
		return nil, ctdf.NewResolutionFailureResult(side, name)
	}

	log.Error().Err(err).Str("side", string(side)).Msg("Failed to fetch stop catalog")

	return nil, ctdf.NewUpstreamFailureResult(err)
}
