package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurmister/ytsum/internal/core/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Summarizer using OpenAI chat completions (official SDK).
type OpenAI struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAI creates a new OpenAI summarizer.
func NewOpenAI(cfg config.SummarizeConfig, apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY)")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := openai.ChatModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.ChatModelGPT4o
	}

	return &OpenAI{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name.
func (o *OpenAI) Name() string {
	return "openai"
}

// Complete sends one prompt to the chat-completion endpoint.
func (o *OpenAI) Complete(ctx context.Context, p Prompt) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		MaxTokens:   openai.Int(int64(p.maxTokens())),
		Temperature: openai.Float(0.5),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
