package planner

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Plan a single trip and print the answer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "origin",
				Usage:    "origin stop name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "destination",
				Usage:    "destination stop name",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "print the full plan result",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			tripPlanner := New(global.Setup(cfg.MBTA), cfg.Planner.TransferConcurrency)
			result := tripPlanner.Plan(c.Context, c.String("origin"), c.String("destination"))

			if c.Bool("debug") {
				pretty.Println(result)
			}

			fmt.Println(Text(result))

			if !result.OK() {
				return cli.Exit(ErrorMessage(result), 1)
			}

			return nil
		},
	}
}
