package global

import (
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/dataaggregator"
	mbtasource "github.com/travigo/planner/pkg/dataaggregator/source/mbta"
	"github.com/travigo/planner/pkg/mbta"
)

// Setup builds the aggregator with every transit data source the config enables.
func Setup(cfg config.MBTAConfig) *dataaggregator.Aggregator {
	aggregator := &dataaggregator.Aggregator{}

	client := mbta.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout)
	client.PageLimit = cfg.PageLimit

	aggregator.RegisterSource(mbtasource.Source{
		Client: client,
	})

	return aggregator
}
