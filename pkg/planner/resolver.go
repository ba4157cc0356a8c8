package planner

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/ctdf"
	"golang.org/x/exp/slices"
)

var ErrStopNotFound = errors.New("no stop matches name")

// ResolveStop fetches the stop catalog and returns the first stop whose name
// contains name, ignoring case. Any error other than ErrStopNotFound means the
// catalog itself could not be fetched.
func (p *Planner) ResolveStop(ctx context.Context, name string) (*ctdf.Stop, error) {
	log.Info().Str("name", name).Msg("Searching for stop")

	stops, err := p.Gateway.Stops(ctx)
	if err != nil {
		return nil, err
	}

	stop := MatchStop(stops, name)
	if stop == nil {
		log.Warn().Str("name", name).Msg("No stop found matching name")
		return nil, ErrStopNotFound
	}

	log.Info().Str("name", name).Str("stop", stop.ID).Str("stopname", stop.Name).Msg("Found stop")

	return stop, nil
}

// MatchStop is a plain substring match in catalog order. The first match wins
// even when a later stop would be a better fit; an empty name matches nothing.
func MatchStop(stops []ctdf.Stop, name string) *ctdf.Stop {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil
	}

	index := slices.IndexFunc(stops, func(stop ctdf.Stop) bool {
		return strings.Contains(strings.ToLower(stop.Name), query)
	})
	if index < 0 {
		return nil
	}

	stop := stops[index]
	return &stop
}
