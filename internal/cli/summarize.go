package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nurmister/ytsum/internal/core/ai"
	"github.com/nurmister/ytsum/internal/core/ai/output"
	"github.com/nurmister/ytsum/internal/core/ai/summarizer"
	"github.com/nurmister/ytsum/internal/core/config"
)

var (
	summarizeInDir     string
	summarizeOutDir    string
	summarizeType      string
	summarizeVerbosity string
	summarizeProvider  string
	summarizeModel     string
	summarizeParallel  int
)

var resultStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("10"))

var summarizeCmd = &cobra.Command{
	Use:   "summarize <name>",
	Short: "Summarize a transcript via a chat-completion model",
	Long: `Summarize a transcript file and write the summary to the summaries
directory.

Long transcripts are split into overlapping, sentence-aligned chunks; each
chunk is summarized independently and the partial summaries are recombined
in transcript order. If the combined result is still long, one extra
combine pass compresses it further.

The mode is the combination of --type and --verbosity:

  extractive    key points quoted directly from the text
  abstractive   main ideas rephrased in the model's own words
  succinct      short output
  verbose       detailed output with minimal compression

Examples:
  ytsum summarize ist_means_ist
  ytsum summarize talk --type extractive --verbosity verbose
  ytsum summarize talk --provider anthropic --parallel 4`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeInDir, "in-dir", "", `transcript input directory (default "transcripts")`)
	summarizeCmd.Flags().StringVarP(&summarizeOutDir, "out-dir", "o", "", `summary output directory (default "summaries")`)
	summarizeCmd.Flags().StringVarP(&summarizeType, "type", "t", string(summarizer.Abstractive), "summarization type: extractive or abstractive")
	summarizeCmd.Flags().StringVarP(&summarizeVerbosity, "verbosity", "V", string(summarizer.Succinct), "summary verbosity: succinct or verbose")
	summarizeCmd.Flags().StringVarP(&summarizeProvider, "provider", "p", "", "chat-completion provider: openai or anthropic")
	summarizeCmd.Flags().StringVar(&summarizeModel, "model", "", `chat model (default "gpt-4o")`)
	summarizeCmd.Flags().IntVar(&summarizeParallel, "parallel", 0, "concurrent chunk requests (default 1)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := config.LoadOrDefault()
	if summarizeInDir != "" {
		cfg.TranscriptDir = summarizeInDir
	}
	if summarizeOutDir != "" {
		cfg.SummaryDir = summarizeOutDir
	}
	if summarizeProvider != "" {
		cfg.Summarize.Provider = summarizeProvider
	}
	if summarizeModel != "" {
		cfg.Summarize.Model = summarizeModel
	}
	if summarizeParallel > 0 {
		cfg.Summarize.Parallel = summarizeParallel
	}

	// Configuration errors surface before any file or network work.
	mode, err := summarizer.ParseMode(summarizeType, summarizeVerbosity)
	if err != nil {
		return err
	}

	creds := config.CredentialsFromEnv()
	key := creds.OpenAIKey
	if cfg.Summarize.Provider == "anthropic" {
		key = creds.AnthropicKey
	}

	s, err := summarizer.New(cfg.Summarize.Provider, cfg.Summarize, key)
	if err != nil {
		return err
	}

	transcriptPath := filepath.Join(cfg.TranscriptDir, output.EnsureExt(name, ".txt"))
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("transcript file not found: %s", transcriptPath)
	}

	pipeline := ai.NewPipeline(s, mode, cfg.Summarize, func(format string, args ...interface{}) {
		color.Cyan(format, args...)
	})

	result, err := pipeline.Summarize(cmd.Context(), string(data))
	if err != nil {
		if done := completedCount(result); done > 0 {
			color.Yellow("%d of %d chunk summaries completed before the failure; re-run to retry", done, result.ChunkCount)
		}
		return err
	}

	outPath := filepath.Join(cfg.SummaryDir, output.EnsureExt(strings.TrimSuffix(name, ".txt"), ".txt"))
	if err := output.WriteText(outPath, result.Final+"\n"); err != nil {
		return err
	}

	label := fmt.Sprintf("Summary (%s, %d chunks) saved to %s", mode, result.ChunkCount, outPath)
	if result.ChunkCount == 0 {
		label = fmt.Sprintf("Transcript was empty; wrote empty summary to %s", outPath)
	}
	fmt.Println(resultStyle.Render(label))

	return nil
}

func completedCount(r *ai.Result) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range r.ChunkSummaries {
		if s != "" {
			n++
		}
	}
	return n
}
