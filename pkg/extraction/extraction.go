package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/llm"
	"github.com/travigo/planner/pkg/util"
)

const (
	SourceLLM       = "llm"
	SourceHeuristic = "heuristic"
	SourceCache     = "cache"
)

const promptTemplate = `Extract the origin and destination locations from this transit query.

Query: "%s"

Instructions:
- Return ONLY the two location names separated by a pipe |
- Use the exact location names mentioned
- If only destination is mentioned, use "none" for origin
- If locations are unclear, use "none"
- Do not include words like "station" or "stop" unless part of the name

Format: origin|destination

Examples:
- "how do I get from park street to harvard" → park street|harvard
- "i wanna go to park street from northeastern university" → northeastern university|park street
- "take me to harvard" → none|harvard
- "northeastern to park street" → northeastern|park street

Response:`

type Locations struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Source      string `json:"source"`
}

// Extractor reads origin and destination names out of free text. Without a
// completer it only uses the heuristic parser; Cache is optional.
type Extractor struct {
	Completer llm.Completer
	Cache     *Cache
}

func (e *Extractor) Provider() string {
	if e.Completer == nil {
		return ""
	}

	return e.Completer.Provider()
}

func (e *Extractor) Extract(ctx context.Context, query string) Locations {
	if e.Cache != nil {
		if locations, ok := e.Cache.Get(ctx, query); ok {
			locations.Source = SourceCache
			return locations
		}
	}

	locations := e.extract(ctx, query)

	log.Info().
		Str("origin", locations.Origin).
		Str("destination", locations.Destination).
		Str("source", locations.Source).
		Msg("Extracted locations")

	if e.Cache != nil && locations.Source == SourceLLM {
		e.Cache.Set(ctx, query, locations)
	}

	return locations
}

func (e *Extractor) extract(ctx context.Context, query string) Locations {
	if e.Completer != nil {
		completion, err := e.Completer.Complete(ctx, llm.CompletionRequest{
			User:        fmt.Sprintf(promptTemplate, query),
			MaxTokens:   50,
			Temperature: 0,
		})

		if err != nil {
			log.Error().Err(err).Str("provider", e.Completer.Provider()).Msg("LLM extraction failed")
		} else if locations, ok := parseCompletion(completion); ok {
			return locations
		} else {
			log.Warn().Str("completion", util.TrimString(completion, 200)).Msg("LLM extraction returned no pipe separated answer")
		}
	}

	origin, destination := ExtractBasic(query)

	return Locations{
		Origin:      origin,
		Destination: destination,
		Source:      SourceHeuristic,
	}
}

// parseCompletion reads "origin|destination", where either side may be "none".
func parseCompletion(completion string) (Locations, bool) {
	parts := strings.Split(completion, "|")
	if len(parts) < 2 {
		return Locations{}, false
	}

	return Locations{
		Origin:      placeName(parts[0]),
		Destination: placeName(parts[1]),
		Source:      SourceLLM,
	}, true
}

func placeName(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "none") {
		return ""
	}

	return value
}
