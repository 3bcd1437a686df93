// Package cli implements the ytsum command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ytsum",
	Short: "Download, transcribe, and summarize a video's audio",
	Long: `ytsum is a three-stage pipeline for turning a video into a text summary.

Each stage is a separate command, run manually in order:

  ytsum fetch <url> <name>      download and compress the audio track
  ytsum transcribe <name>       transcribe the audio via OpenAI Whisper
  ytsum summarize <name>        summarize the transcript via a chat model

Stages hand off through plain files: fetch writes audio/<name>.opus,
transcribe writes transcripts/<name>.txt, summarize writes
summaries/<name>.txt. API keys are read from OPENAI_API_KEY and
ANTHROPIC_API_KEY.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
