// Package transcriber provides speech-to-text transcription via hosted
// services.
package transcriber

import (
	"context"
	"fmt"
	"os"

	"github.com/nurmister/ytsum/internal/core/config"
)

// MaxUploadBytes is the upload ceiling of the hosted speech-to-text
// service (25MB for OpenAI Whisper).
const MaxUploadBytes = 25 * 1024 * 1024

// Transcriber converts an audio file to plain transcript text.
type Transcriber interface {
	// Transcribe converts an audio file to text.
	Transcribe(ctx context.Context, filePath string) (string, error)

	// Name returns the provider name.
	Name() string
}

// New creates a new Transcriber based on configuration. The apiKey comes
// from the caller (read from the environment at startup).
func New(provider string, cfg config.TranscribeConfig, apiKey string) (Transcriber, error) {
	switch provider {
	case "openai":
		return NewOpenAI(cfg, apiKey)
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s", provider)
	}
}

// CheckUploadSize rejects files over the service's upload ceiling before
// any network call is made.
func CheckUploadSize(filePath string, limit int64) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Size() > limit {
		return fmt.Errorf("%s is %.1f MB, over the %d MB upload limit; re-fetch at a lower bitrate",
			filePath, float64(info.Size())/(1024*1024), limit/(1024*1024))
	}

	return nil
}
