package interview

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/deerk/mock-interviewer/internal/config"
)

const (
	completionTemperature = 0.7
	completionMaxTokens   = 1000
)

type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Ping(ctx context.Context) error
}

type openAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	return &openAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (p *openAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		log.WithError(err).Error("OpenAI completion call failed")
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Ping issues a minimal completion to verify credentials and connectivity
// before the server starts accepting traffic.
func (p *openAIProvider) Ping(ctx context.Context) error {
	_, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Hello"},
		},
		MaxTokens: 5,
	})
	if err != nil {
		return fmt.Errorf("openai connectivity check failed: %w", err)
	}
	return nil
}
