package fetcher

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nurmister/ytsum/internal/core/config"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		file     string
		expected string
	}{
		{
			name:     "Bare name gets extension",
			dir:      "audio",
			file:     "talk",
			expected: filepath.Join("audio", "talk.opus"),
		},
		{
			name:     "Existing extension kept",
			dir:      "audio",
			file:     "talk.opus",
			expected: filepath.Join("audio", "talk.opus"),
		},
		{
			name:     "Other extension is not replaced",
			dir:      "audio",
			file:     "talk.v2",
			expected: filepath.Join("audio", "talk.v2.opus"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.dir, tt.file); got != tt.expected {
				t.Errorf("OutputPath(%q, %q) = %q; want %q", tt.dir, tt.file, got, tt.expected)
			}
		})
	}
}

func TestDownloadArgs(t *testing.T) {
	args := downloadArgs("https://example.com/v/123", "/tmp/stage/audio")

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"--format bestaudio/best",
		"--no-playlist",
		"--audio-format flac",
		"--output /tmp/stage/audio.%(ext)s",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("downloadArgs missing %q: %v", want, args)
		}
	}

	if args[len(args)-1] != "https://example.com/v/123" {
		t.Errorf("URL is not the final argument: %v", args)
	}
}

func TestConvertArgs(t *testing.T) {
	args := convertArgs("in.flac", "out.opus", 48)

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-i in.flac",
		"-c:a libopus",
		"-b:a 48k",
		"-ar 16000",
		"-ac 1",
		"-frame_duration 120",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("convertArgs missing %q: %v", want, args)
		}
	}

	if args[len(args)-1] != "out.opus" {
		t.Errorf("output path is not the final argument: %v", args)
	}
}

func TestNewAppliesDefaultBitrate(t *testing.T) {
	f := New(config.FetchConfig{})
	if f.bitrateKbps != DefaultBitrateKbps {
		t.Errorf("bitrate = %d; want %d", f.bitrateKbps, DefaultBitrateKbps)
	}

	f = New(config.FetchConfig{BitrateKbps: 48})
	if f.bitrateKbps != 48 {
		t.Errorf("bitrate = %d; want 48", f.bitrateKbps)
	}
}
