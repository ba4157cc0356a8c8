package agent

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/dataaggregator/global"
	"github.com/travigo/planner/pkg/extraction"
	"github.com/travigo/planner/pkg/llm"
	"github.com/travigo/planner/pkg/planner"
	"github.com/travigo/planner/pkg/redis_client"
)

// Setup wires the planner and the extractor from config. Redis must already be
// connected for the extraction cache to be used.
func Setup(cfg *config.Config) *Handler {
	aggregator := global.Setup(cfg.MBTA)
	tripPlanner := planner.New(aggregator, cfg.Planner.TransferConcurrency)

	extractor := &extraction.Extractor{}

	completer, err := llm.New(cfg.LLM)
	if err != nil {
		log.Warn().Err(err).Msg("LLM extraction unavailable, using basic extraction")
	} else {
		extractor.Completer = completer
	}

	if redis_client.Client != nil && cfg.Redis.ExtractionCacheTTL > 0 {
		extractor.Cache = &extraction.Cache{}
		extractor.Cache.Setup(redis_client.Client, cfg.Redis.ExtractionCacheTTL)
	}

	return NewHandler(tripPlanner, extractor)
}
