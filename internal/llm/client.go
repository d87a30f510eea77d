// Package llm fronts an OpenAI-compatible chat-completion provider.
package llm

import (
	"context"
	"fmt"

	"examprep/internal/config"
	"examprep/internal/domain"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client wraps the OpenAI-compatible chat completion API
type Client struct {
	client openai.Client
	model  string
}

// New creates a client against the configured provider. No automatic
// retry happens at this layer; quota, auth and network failures surface
// to the caller.
func New(cfg config.LLMConfig) *Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Chat sends a full role-tagged message history and returns the model's
// reply text.
func (c *Client) Chat(ctx context.Context, messages []domain.Message) (string, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleSystem:
			params = append(params, openai.SystemMessage(msg.Content))
		case domain.RoleAssistant:
			params = append(params, openai.AssistantMessage(msg.Content))
		default:
			params = append(params, openai.UserMessage(msg.Content))
		}
	}

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: params,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return res.Choices[0].Message.Content, nil
}

// Complete sends a single prompt with an optional system preamble.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []domain.Message{}
	if system != "" {
		messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: system})
	}
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: prompt})
	return c.Chat(ctx, messages)
}
