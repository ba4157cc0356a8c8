package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/agent"
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the trip planner web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides the configured address",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if cfg.Redis.Enabled() {
						if err := redis_client.Connect(cfg.Redis); err != nil {
							return err
						}
					}

					listen := cfg.Server.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
					}

					handler := agent.Setup(cfg)

					log.Info().Str("listen", listen).Msg("Starting web API")

					return SetupServer(listen, handler, cfg.MBTA.APIKey != "")
				},
			},
		},
	}
}
