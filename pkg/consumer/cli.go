package consumer

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/travigo/planner/pkg/agent"
	"github.com/travigo/planner/pkg/config"
	"github.com/travigo/planner/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "queue-consumer",
		Usage: "Answers agent messages from the Redis request queue",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run queue consumer",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if !cfg.Redis.Enabled() {
						return errors.New("queue consumer needs a redis address")
					}
					if err := redis_client.Connect(cfg.Redis); err != nil {
						return err
					}

					responses, err := redis_client.QueueConnection.OpenQueue(cfg.Queue.ResponseQueue)
					if err != nil {
						return err
					}

					redisConsumer := RedisConsumer{
						QueueName:       cfg.Queue.RequestQueue,
						NumberConsumers: cfg.Queue.Consumers,
						BatchSize:       int(cfg.Queue.PrefetchLimit),
						Timeout:         cfg.Queue.PollDuration,
						PollDuration:    cfg.Queue.PollDuration,
						StatsListen:     cfg.Queue.StatsListen,
						Consumer:        NewMessageBatchConsumer(agent.Setup(cfg), responses),
					}
					if err := redisConsumer.Setup(); err != nil {
						return err
					}

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
		},
	}
}
