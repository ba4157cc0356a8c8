package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL   = "https://api-v3.mbta.com"
	DefaultTimeout   = 10 * time.Second
	DefaultPageLimit = 500

	// Stations only; generic stop markers and entrances are excluded.
	LocationTypeStation = "1"
)

type Client struct {
	APIKey    string
	BaseURL   string
	PageLimit int

	HTTPClient *http.Client
}

func NewClient(apiKey string, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		APIKey:    apiKey,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		PageLimit: DefaultPageLimit,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) HasAPIKey() bool {
	return c.APIKey != ""
}

func (c *Client) get(ctx context.Context, operation string, path string, params url.Values, out any) error {
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}

	requestURL := fmt.Sprintf("%s%s?%s", c.BaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &GatewayError{Operation: operation, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.api+json")

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &GatewayError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("MBTA API request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &GatewayError{Operation: operation, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Operation: operation, Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &GatewayError{Operation: operation, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}
