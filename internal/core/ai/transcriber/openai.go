package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurmister/ytsum/internal/core/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements Transcriber using the OpenAI Whisper API.
type OpenAI struct {
	client *openai.Client
	model  string
	lang   string
}

// NewOpenAI creates a new OpenAI transcriber.
func NewOpenAI(cfg config.TranscribeConfig, apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
		lang:   cfg.Language,
	}, nil
}

// Name returns the provider name.
func (o *OpenAI) Name() string {
	return "openai"
}

// Transcribe converts an audio file to plain text using OpenAI Whisper.
func (o *OpenAI) Transcribe(ctx context.Context, filePath string) (string, error) {
	if err := CheckUploadSize(filePath, MaxUploadBytes); err != nil {
		return "", err
	}

	req := openai.AudioRequest{
		Model:    o.model,
		FilePath: filePath,
		Language: o.lang,
		Format:   openai.AudioResponseFormatText,
	}

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcription API error: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
