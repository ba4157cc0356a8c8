package redis_client

import (
	"context"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/config"
)

var Client *redis.Client
var QueueConnection rmq.Connection

const connectionTag = "planner"

const maxConnectRetries = 5

func Connect(cfg config.RedisConfig) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second

	err := backoff.RetryNotify(func() error {
		return client.Ping(context.Background()).Err()
	}, backoff.WithMaxRetries(retryBackoff, maxConnectRetries), func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", cfg.Address).Str("retry", wait.String()).Msg("Redis not reachable")
	})
	if err != nil {
		client.Close()
		return err
	}

	queueConnection, err := rmq.OpenConnectionWithRedisClient(connectionTag, client, nil)
	if err != nil {
		client.Close()
		return err
	}

	Client = client
	QueueConnection = queueConnection

	log.Info().Str("address", cfg.Address).Int("database", cfg.Database).Msg("Redis client setup")

	return nil
}
