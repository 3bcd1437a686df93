// Package fetcher downloads a video's audio track and compresses it for
// transcription.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nurmister/ytsum/internal/core/config"
)

// DefaultBitrateKbps is the default Opus bitrate. Whisper resamples to
// 16 kHz mono internally, so speech survives aggressive compression.
const DefaultBitrateKbps = 32

// Fetcher downloads audio with yt-dlp and converts it to Opus with ffmpeg.
type Fetcher struct {
	bitrateKbps int

	// Binary names, overridable in tests
	ytdlpBin  string
	ffmpegBin string
}

// New creates a Fetcher from configuration.
func New(cfg config.FetchConfig) *Fetcher {
	bitrate := cfg.BitrateKbps
	if bitrate <= 0 {
		bitrate = DefaultBitrateKbps
	}

	return &Fetcher{
		bitrateKbps: bitrate,
		ytdlpBin:    "yt-dlp",
		ffmpegBin:   "ffmpeg",
	}
}

// CheckTools verifies that yt-dlp and ffmpeg are on PATH. Called before any
// download so a missing tool is reported as a setup problem, not a failed
// fetch.
func (f *Fetcher) CheckTools() error {
	for _, bin := range []string{f.ytdlpBin, f.ffmpegBin} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found in PATH: %w", bin, err)
		}
	}
	return nil
}

// OutputPath returns the audio file path for a name, appending the .opus
// extension if the name doesn't carry it.
func OutputPath(dir, name string) string {
	if filepath.Ext(name) != ".opus" {
		name += ".opus"
	}
	return filepath.Join(dir, name)
}

// Fetch downloads the best audio for url and writes the compressed Opus
// file to outPath. Intermediate files live in a per-run staging directory
// that is removed on return; outPath appears only on success.
func (f *Fetcher) Fetch(ctx context.Context, url, outPath string) error {
	staging, err := os.MkdirTemp("", "ytsum-"+uuid.NewString()[:8]+"-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	// Download the best audio as FLAC; yt-dlp appends the extension.
	flacBase := filepath.Join(staging, "audio")
	if err := f.run(ctx, f.ytdlpBin, downloadArgs(url, flacBase)...); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	flacPath := flacBase + ".flac"
	if _, err := os.Stat(flacPath); err != nil {
		return fmt.Errorf("download produced no audio file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Convert into the staging dir, then move into place so a failed
	// conversion never leaves a partial output file.
	opusTmp := filepath.Join(staging, "audio.opus")
	if err := f.run(ctx, f.ffmpegBin, convertArgs(flacPath, opusTmp, f.bitrateKbps)...); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.Rename(opusTmp, outPath); err != nil {
		// Staging may sit on another filesystem; fall back to a copy.
		data, readErr := os.ReadFile(opusTmp)
		if readErr != nil {
			return fmt.Errorf("failed to move output: %w", err)
		}
		if writeErr := os.WriteFile(outPath, data, 0644); writeErr != nil {
			return fmt.Errorf("failed to write output: %w", writeErr)
		}
	}

	return nil
}

// downloadArgs builds the yt-dlp invocation for a best-quality FLAC grab.
func downloadArgs(url, outBase string) []string {
	return []string{
		"--format", "bestaudio/best",
		"--no-playlist",
		"--extract-audio",
		"--audio-format", "flac",
		"--audio-quality", "0",
		"--output", outBase + ".%(ext)s",
		"--quiet",
		"--no-warnings",
		url,
	}
}

// convertArgs builds the ffmpeg invocation: Opus at the configured bitrate,
// 16 kHz mono, 120 ms frames.
func convertArgs(inPath, outPath string, bitrateKbps int) []string {
	return []string{
		"-y",
		"-i", inPath,
		"-c:a", "libopus",
		"-b:a", fmt.Sprintf("%dk", bitrateKbps),
		"-ar", "16000",
		"-ac", "1",
		"-frame_duration", "120",
		outPath,
	}
}

// run executes an external tool, folding its stderr into the error.
func (f *Fetcher) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w\nstderr: %s", name, err, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}

	return nil
}
