package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey signals that no API key was provisioned. It is a
// startup failure; the service must not come up without a credential.
var ErrMissingAPIKey = errors.New("OpenAI API key not configured")

// Config holds the parameters for the OpenAI chat-completion client.
// The generation parameters are fixed per process; every request uses
// the same model, temperature, token cap and repetition penalties.
type Config struct {
	APIKey           string
	BaseURL          string
	Model            string
	Temperature      float32
	MaxTokens        int
	PresencePenalty  float32
	FrequencyPenalty float32
}

// OpenAIClient is a Client backed by the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	config Config
}

// Ensure OpenAIClient implements the Client interface.
var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a chat-completion client. It fails fast with
// ErrMissingAPIKey when no key is configured.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Complete performs a single chat completion attempt. No retries; the
// caller owns the fallback policy.
func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	llmMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		llmMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:            c.config.Model,
		Messages:         llmMessages,
		Temperature:      c.config.Temperature,
		MaxTokens:        c.config.MaxTokens,
		PresencePenalty:  c.config.PresencePenalty,
		FrequencyPenalty: c.config.FrequencyPenalty,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
