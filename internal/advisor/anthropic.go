package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicConfig configures AnthropicGenerator.
type AnthropicConfig struct {
	// APIKey is the Anthropic API key. Empty disables live generation.
	APIKey string

	// Model is the Claude model to use.
	Model string

	// MaxTokens is the maximum response tokens.
	MaxTokens int64

	// BaseURL overrides the API endpoint; used by tests.
	BaseURL string
}

// AnthropicGenerator implements Generator with the Anthropic Messages API.
type AnthropicGenerator struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int64
}

// NewAnthropicGenerator creates a generator. The SDK's own retries are
// disabled; a failed call goes straight to the fallback answer.
func NewAnthropicGenerator(cfg AnthropicConfig) *AnthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &AnthropicGenerator{
		client:    anthropic.NewClient(opts...),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Generate sends prompt as a single user message and joins the text blocks of the reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling anthropic: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
