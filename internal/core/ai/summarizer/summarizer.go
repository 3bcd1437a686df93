// Package summarizer provides text summarization via hosted chat-completion
// services.
package summarizer

import (
	"context"
	"fmt"

	"github.com/nurmister/ytsum/internal/core/config"
)

// DefaultMaxTokens bounds the completion length of a single call.
const DefaultMaxTokens = 500

// Prompt is one chat-completion request: a fixed instruction plus the text
// to work on.
type Prompt struct {
	System string
	User   string

	// MaxTokens caps the completion; zero means DefaultMaxTokens.
	MaxTokens int
}

// Summarizer generates text from a prompt via a chat-completion service.
type Summarizer interface {
	// Complete sends one prompt and returns the generated text.
	Complete(ctx context.Context, p Prompt) (string, error)

	// Name returns the provider name.
	Name() string
}

// New creates a new Summarizer based on configuration. The apiKey comes
// from the caller (read from the environment at startup), never from the
// provider itself.
func New(provider string, cfg config.SummarizeConfig, apiKey string) (Summarizer, error) {
	switch provider {
	case "openai":
		return NewOpenAI(cfg, apiKey)
	case "anthropic":
		return NewAnthropic(cfg, apiKey)
	default:
		return nil, fmt.Errorf("unsupported summarization provider: %s", provider)
	}
}

func (p Prompt) maxTokens() int {
	if p.MaxTokens > 0 {
		return p.MaxTokens
	}
	return DefaultMaxTokens
}
