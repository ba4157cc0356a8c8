package extraction

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "planner:extraction:"

// Cache keeps extracted place names for repeated queries. It never holds
// transit data.
type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup(client *redis.Client, ttl time.Duration) {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))

	c.Cache = cache.New[string](redisStore)
}

func (c *Cache) Get(ctx context.Context, query string) (Locations, bool) {
	var locations Locations

	value, err := c.Cache.Get(ctx, cacheKey(query))
	if err != nil {
		return locations, false
	}

	if err := json.Unmarshal([]byte(value), &locations); err != nil {
		log.Warn().Err(err).Msg("Discarding unreadable cached extraction")
		return locations, false
	}

	return locations, true
}

func (c *Cache) Set(ctx context.Context, query string, locations Locations) {
	value, err := json.Marshal(locations)
	if err != nil {
		return
	}

	if err := c.Cache.Set(ctx, cacheKey(query), string(value)); err != nil {
		log.Error().Err(err).Msg("Failed to cache extraction")
	}
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
