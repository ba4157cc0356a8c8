package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/planner/pkg/config"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

var ErrNoProvider = errors.New("no llm provider configured")

var ErrEmptyCompletion = errors.New("llm returned no text")

type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Completer turns a prompt into a single block of text.
type Completer interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
	Provider() string
}

// New picks the completer from config. An explicit provider must have its key
// set; otherwise Anthropic is preferred over OpenAI when both keys exist.
func New(cfg config.LLMConfig) (Completer, error) {
	provider := cfg.Provider
	if provider == "" {
		switch {
		case cfg.AnthropicAPIKey != "":
			provider = ProviderAnthropic
		case cfg.OpenAIAPIKey != "":
			provider = ProviderOpenAI
		default:
			return nil, ErrNoProvider
		}
	}

	var completer Completer
	switch provider {
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: %s selected without an api key", ErrNoProvider, provider)
		}
		completer = NewAnthropicCompleter(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.Timeout)
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: %s selected without an api key", ErrNoProvider, provider)
		}
		completer = NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout)
	default:
		return nil, fmt.Errorf("%w: unknown provider %s", ErrNoProvider, provider)
	}

	log.Info().Str("provider", completer.Provider()).Msg("LLM completer configured")

	return completer, nil
}
