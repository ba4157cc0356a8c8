package config

import "time"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	MBTA    MBTAConfig    `yaml:"mbta"`
	Planner PlannerConfig `yaml:"planner"`
	LLM     LLMConfig     `yaml:"llm"`
	Redis   RedisConfig   `yaml:"redis"`
	Queue   QueueConfig   `yaml:"queue"`
}

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type MBTAConfig struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	PageLimit int           `yaml:"page_limit" validate:"gt=0"`
}

type PlannerConfig struct {
	// Number of concurrent routes-serving lookups per origin route in the
	// transfer search. 1 keeps the search fully sequential.
	TransferConcurrency int `yaml:"transfer_concurrency" validate:"gte=1,lte=64"`
}

type LLMConfig struct {
	// Empty means pick whichever provider has a key, Anthropic first.
	Provider string `yaml:"provider" validate:"omitempty,oneof=anthropic openai"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`

	OpenAIAPIKey string `yaml:"openai_api_key"`
	OpenAIModel  string `yaml:"openai_model"`

	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`

	ExtractionCacheTTL time.Duration `yaml:"extraction_cache_ttl" validate:"gte=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type QueueConfig struct {
	RequestQueue  string        `yaml:"request_queue" validate:"required"`
	ResponseQueue string        `yaml:"response_queue" validate:"required,nefield=RequestQueue"`
	Consumers     int           `yaml:"consumers" validate:"gte=1"`
	PrefetchLimit int64         `yaml:"prefetch_limit" validate:"gte=1"`
	PollDuration  time.Duration `yaml:"poll_duration" validate:"gt=0"`
	StatsListen   string        `yaml:"stats_listen"`
}
