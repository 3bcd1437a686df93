package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nurmister/ytsum/internal/core/ai/output"
	"github.com/nurmister/ytsum/internal/core/ai/transcriber"
	"github.com/nurmister/ytsum/internal/core/config"
)

var (
	transcribeAudioDir string
	transcribeOutDir   string
	transcribeLanguage string
	transcribeModel    string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <name>",
	Short: "Transcribe an audio file via OpenAI Whisper",
	Long: `Transcribe a fetched audio file to plain text using the OpenAI Whisper
API and write the transcript to the transcripts directory.

The name may be given with or without the .opus extension. Files over the
25 MB upload limit are rejected before any network call.

Examples:
  ytsum transcribe ist_means_ist
  ytsum transcribe talk --language de --audio-dir /data/audio`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	transcribeCmd.Flags().StringVar(&transcribeAudioDir, "audio-dir", "", `audio input directory (default "audio")`)
	transcribeCmd.Flags().StringVarP(&transcribeOutDir, "out-dir", "o", "", `transcript output directory (default "transcripts")`)
	transcribeCmd.Flags().StringVarP(&transcribeLanguage, "language", "l", "", `audio language code (default "en")`)
	transcribeCmd.Flags().StringVar(&transcribeModel, "model", "", `transcription model (default "whisper-1")`)
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := config.LoadOrDefault()
	if transcribeAudioDir != "" {
		cfg.AudioDir = transcribeAudioDir
	}
	if transcribeOutDir != "" {
		cfg.TranscriptDir = transcribeOutDir
	}
	if transcribeLanguage != "" {
		cfg.Transcribe.Language = transcribeLanguage
	}
	if transcribeModel != "" {
		cfg.Transcribe.Model = transcribeModel
	}

	// Credentials are checked before any file or network work.
	creds := config.CredentialsFromEnv()
	t, err := transcriber.New("openai", cfg.Transcribe, creds.OpenAIKey)
	if err != nil {
		return err
	}

	audioPath := filepath.Join(cfg.AudioDir, output.EnsureExt(name, ".opus"))
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not found: %s", audioPath)
	}

	color.Cyan("Transcribing %s...", filepath.Base(audioPath))

	text, err := t.Transcribe(cmd.Context(), audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	base := strings.TrimSuffix(name, ".opus")
	outPath := filepath.Join(cfg.TranscriptDir, output.EnsureExt(base, ".txt"))
	if err := output.WriteText(outPath, text+"\n"); err != nil {
		return err
	}

	color.Green("Transcript saved to %s", outPath)
	return nil
}
