package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yml"
	AppDirName     = "ytsum"
)

// ConfigDir returns the standard config directory for ytsum.
// Windows: %APPDATA%\ytsum\
// macOS/Linux: ~/.config/ytsum/
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, AppDirName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// ConfigPath returns the path to the config file.
// e.g., ~/.config/ytsum/config.yml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

type Config struct {
	// Stage output directories
	AudioDir      string `yaml:"audio_dir,omitempty"`
	TranscriptDir string `yaml:"transcript_dir,omitempty"`
	SummaryDir    string `yaml:"summary_dir,omitempty"`

	Fetch      FetchConfig      `yaml:"fetch,omitempty"`
	Transcribe TranscribeConfig `yaml:"transcribe,omitempty"`
	Summarize  SummarizeConfig  `yaml:"summarize,omitempty"`
}

// FetchConfig holds settings for the audio download stage.
type FetchConfig struct {
	// Opus bitrate in kbps. Whisper resamples to 16 kHz mono internally,
	// so low bitrates lose nothing at the transcription stage.
	BitrateKbps int `yaml:"bitrate_kbps,omitempty"`
}

// TranscribeConfig holds settings for the speech-to-text stage.
type TranscribeConfig struct {
	Model    string `yaml:"model,omitempty"`
	Language string `yaml:"language,omitempty"`
}

// SummarizeConfig holds settings for the summarization stage.
type SummarizeConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`

	// Chunking parameters, in words
	MaxChunkWords int `yaml:"max_chunk_words,omitempty"`
	OverlapWords  int `yaml:"overlap_words,omitempty"`

	// A combined summary longer than this triggers one extra combine pass.
	CombineThresholdWords int `yaml:"combine_threshold_words,omitempty"`

	// Concurrency and throttling for per-chunk calls
	Parallel       int `yaml:"parallel,omitempty"`
	RequestsPerMin int `yaml:"requests_per_min,omitempty"`
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Credentials holds API keys for the hosted services. Keys are read from the
// environment once at startup and passed into constructors; the service
// clients never look them up ambiently.
type Credentials struct {
	OpenAIKey    string
	AnthropicKey string
}

// CredentialsFromEnv reads API keys from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
	}
}

// DefaultConfig returns a config with sensible defaults. The chunking
// defaults keep each chunk comfortably inside the chat model's context
// window.
func DefaultConfig() *Config {
	return &Config{
		AudioDir:      "audio",
		TranscriptDir: "transcripts",
		SummaryDir:    "summaries",
		Fetch: FetchConfig{
			BitrateKbps: 32,
		},
		Transcribe: TranscribeConfig{
			Model:    "whisper-1",
			Language: "en",
		},
		Summarize: SummarizeConfig{
			Provider:              "openai",
			Model:                 "gpt-4o",
			MaxChunkWords:         750,
			OverlapWords:          75,
			CombineThresholdWords: 1500,
			Parallel:              1,
			RequestsPerMin:        60,
			TimeoutSeconds:        120,
		},
	}
}

// Exists checks if config file exists
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config from ~/.config/ytsum/config.yml
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.AudioDir = expandPath(cfg.AudioDir)
	cfg.TranscriptDir = expandPath(cfg.TranscriptDir)
	cfg.SummaryDir = expandPath(cfg.SummaryDir)
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads the config, falling back to defaults if no config
// file exists or it cannot be parsed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save writes the config to ~/.config/ytsum/config.yml
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.AudioDir == "" {
		c.AudioDir = def.AudioDir
	}
	if c.TranscriptDir == "" {
		c.TranscriptDir = def.TranscriptDir
	}
	if c.SummaryDir == "" {
		c.SummaryDir = def.SummaryDir
	}
	if c.Fetch.BitrateKbps <= 0 {
		c.Fetch.BitrateKbps = def.Fetch.BitrateKbps
	}
	if c.Transcribe.Model == "" {
		c.Transcribe.Model = def.Transcribe.Model
	}
	if c.Transcribe.Language == "" {
		c.Transcribe.Language = def.Transcribe.Language
	}
	if c.Summarize.Provider == "" {
		c.Summarize.Provider = def.Summarize.Provider
	}
	if c.Summarize.Model == "" {
		c.Summarize.Model = def.Summarize.Model
	}
	if c.Summarize.MaxChunkWords <= 0 {
		c.Summarize.MaxChunkWords = def.Summarize.MaxChunkWords
	}
	if c.Summarize.OverlapWords <= 0 {
		c.Summarize.OverlapWords = def.Summarize.OverlapWords
	}
	if c.Summarize.CombineThresholdWords <= 0 {
		c.Summarize.CombineThresholdWords = def.Summarize.CombineThresholdWords
	}
	if c.Summarize.Parallel <= 0 {
		c.Summarize.Parallel = def.Summarize.Parallel
	}
	if c.Summarize.RequestsPerMin <= 0 {
		c.Summarize.RequestsPerMin = def.Summarize.RequestsPerMin
	}
	if c.Summarize.TimeoutSeconds <= 0 {
		c.Summarize.TimeoutSeconds = def.Summarize.TimeoutSeconds
	}
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
