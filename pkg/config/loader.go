package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "planner.yml"

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8002",
		},
		MBTA: MBTAConfig{
			BaseURL:   "https://api-v3.mbta.com",
			Timeout:   10 * time.Second,
			PageLimit: 500,
		},
		Planner: PlannerConfig{
			TransferConcurrency: 4,
		},
		LLM: LLMConfig{
			AnthropicModel: "claude-sonnet-4-20250514",
			OpenAIModel:    "gpt-4o-mini",
			Timeout:        30 * time.Second,
		},
		Redis: RedisConfig{
			ExtractionCacheTTL: time.Hour,
		},
		Queue: QueueConfig{
			RequestQueue:  "planner-requests",
			ResponseQueue: "planner-responses",
			Consumers:     2,
			PrefetchLimit: 10,
			PollDuration:  time.Second,
			StatsListen:   ":3333",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path,
// then a .env file and the process environment. An empty path reads
// DefaultPath when it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}

	if err := applyEnvironment(cfg, util.GetEnvironmentVariables()); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	if cfg.MBTA.APIKey == "" {
		log.Warn().Msg("MBTA_API_KEY not set, requests will be rate limited")
	}

	return cfg, nil
}

func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("Loaded config file")

	return nil
}

func applyEnvironment(cfg *Config, env map[string]string) error {
	if env["PORT"] != "" {
		cfg.Server.Listen = ":" + env["PORT"]
	}

	setString(&cfg.MBTA.APIKey, env["MBTA_API_KEY"])
	setString(&cfg.MBTA.BaseURL, env["MBTA_BASE_URL"])

	switch provider := strings.ToLower(env["LLM_PROVIDER"]); provider {
	case "":
	case "anthropic", "openai":
		cfg.LLM.Provider = provider
	default:
		log.Warn().Str("provider", provider).Msg("Ignoring unknown LLM_PROVIDER")
	}
	setString(&cfg.LLM.AnthropicAPIKey, env["ANTHROPIC_API_KEY"])
	setString(&cfg.LLM.AnthropicModel, env["ANTHROPIC_MODEL"])
	setString(&cfg.LLM.OpenAIAPIKey, env["OPENAI_API_KEY"])
	setString(&cfg.LLM.OpenAIModel, env["OPENAI_MODEL"])

	setString(&cfg.Redis.Address, env["PLANNER_REDIS_ADDRESS"])
	setString(&cfg.Redis.Password, env["PLANNER_REDIS_PASSWORD"])

	if err := setInt(&cfg.Redis.Database, "PLANNER_REDIS_DATABASE", env); err != nil {
		return err
	}
	if err := setInt(&cfg.Planner.TransferConcurrency, "PLANNER_TRANSFER_CONCURRENCY", env); err != nil {
		return err
	}

	return nil
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func setInt(target *int, key string, env map[string]string) error {
	if env[key] == "" {
		return nil
	}

	n, err := strconv.Atoi(env[key])
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	*target = n

	return nil
}
