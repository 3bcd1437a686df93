package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nurmister/ytsum/internal/core/config"
	"github.com/nurmister/ytsum/internal/core/fetcher"
)

var (
	fetchDir     string
	fetchBitrate int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url> <name>",
	Short: "Download a video's audio as compressed Opus",
	Long: `Download the highest-quality audio track of a video and compress it to
Opus at a low bitrate, 16 kHz mono. Whisper resamples to 16 kHz mono
internally, so nothing useful is lost and the file stays well under the
transcription upload limit.

Requires yt-dlp and ffmpeg on PATH.

Examples:
  ytsum fetch "https://www.youtube.com/watch?v=2StKxMKWfbU" ist_means_ist
  ytsum fetch "https://youtu.be/abc123" talk --bitrate 48 --dir /data/audio`,
	Args: cobra.ExactArgs(2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchDir, "dir", "d", "", `output directory (default "audio")`)
	fetchCmd.Flags().IntVarP(&fetchBitrate, "bitrate", "b", 0, "Opus bitrate in kbps (default 32)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	url, name := args[0], args[1]

	cfg := config.LoadOrDefault()
	if fetchDir != "" {
		cfg.AudioDir = fetchDir
	}
	if fetchBitrate > 0 {
		cfg.Fetch.BitrateKbps = fetchBitrate
	}

	f := fetcher.New(cfg.Fetch)
	if err := f.CheckTools(); err != nil {
		return err
	}

	outPath := fetcher.OutputPath(cfg.AudioDir, name)

	color.Cyan("Downloading audio from %s...", url)
	if err := f.Fetch(cmd.Context(), url, outPath); err != nil {
		return err
	}

	color.Green("Audio saved to %s", outPath)
	return nil
}
