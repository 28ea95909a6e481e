// Package openai provides an LLMClient implementation on OpenAI-compatible
// chat completion endpoints (OpenAI and Volcengine Ark).
package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/config"
)

// Client implements the LLMClient interface using the OpenAI chat API.
type Client struct {
	client    *openai.Client
	model     string
	provider  string
	maxTokens int
}

// Option customizes the client.
type Option func(*openai.ClientConfig)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *openai.ClientConfig) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// NewClient creates a new chat completion client.
func NewClient(cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM API key is required")
	}

	model := cfg.Model
	if model == "" {
		if cfg.Provider == config.ProviderArk {
			return nil, errors.New("Ark endpoint id is required")
		}
		model = config.DefaultOpenAIModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.Endpoint()
	for _, opt := range opts {
		opt(&clientCfg)
	}

	return &Client{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		provider:  cfg.Provider,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Model returns the model or endpoint id requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one chat completion and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature(req.Temperature),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", c.provider)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from %s", c.provider)
	}
	return content, nil
}

// temperature keeps an explicit zero on the wire; the request field is omitempty.
func temperature(t float32) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
