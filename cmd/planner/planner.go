package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/api"
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/consumer"
	"github.com/travigo/planner/pkg/planner"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("PLANNER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("PLANNER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "planner",
		Description: "MBTA trip planner agent - runs the web API, the queue consumer and one-off plans",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML config file, " + config.DefaultPath + " is read when present",
				EnvVars: []string{"PLANNER_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			consumer.RegisterCLI(),
			planner.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
