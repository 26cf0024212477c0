package assistant

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Defaults point at Together.ai's OpenAI-compatible endpoint with a small
// instruct model. Both are overridable via server config so the proxy works
// against any OpenAI-compatible provider.
const (
	DefaultBaseURL = "https://api.together.xyz/v1"
	DefaultModel   = "mistralai/Mistral-7B-Instruct-v0.2"

	systemPrompt = "You are a helpful AI assistant specializing in job search, career advice, resumes, and interview preparation. Keep answers practical and concise."
)

// ProxyClient forwards a user's prompt to a third-party chat-completion API.
//
// PER-USER CREDENTIALS:
// The API key is supplied by the user on every call, never stored server
// side. That's why Complete takes the key as a parameter and builds a fresh
// openai.Client per request instead of holding one — the client embeds the
// bearer token at construction time.
type ProxyClient struct {
	baseURL string
	model   string
}

// NewProxyClient creates a ProxyClient. Empty baseURL or model fall back to
// the Together.ai defaults.
func NewProxyClient(baseURL, model string) *ProxyClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &ProxyClient{baseURL: baseURL, model: model}
}

// Complete sends the prompt to the configured provider and returns the
// completion text.
//
// Errors (network failure, non-2xx status, empty choices) are returned as
// plain errors; the service layer wraps them in apperror.Unavailable so the
// handler can surface a user-visible "assistant unavailable" state.
func (c *ProxyClient) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("assistant: API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("assistant: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant: provider returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
