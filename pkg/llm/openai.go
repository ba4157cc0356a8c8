package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type OpenAICompleter struct {
	Client  *openai.Client
	Model   string
	Timeout time.Duration
}

func NewOpenAICompleter(apiKey string, model string, timeout time.Duration) *OpenAICompleter {
	return NewOpenAICompleterWithConfig(openai.DefaultConfig(apiKey), model, timeout)
}

func NewOpenAICompleterWithConfig(clientConfig openai.ClientConfig, model string, timeout time.Duration) *OpenAICompleter {
	return &OpenAICompleter{
		Client:  openai.NewClientWithConfig(clientConfig),
		Model:   model,
		Timeout: timeout,
	}
}

func (c *OpenAICompleter) Provider() string {
	return ProviderOpenAI
}

func (c *OpenAICompleter) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var messages []openai.ChatCompletionMessage
	if request.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.User,
	})

	response, err := c.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   request.MaxTokens,
		Temperature: float32(request.Temperature),
	})
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
