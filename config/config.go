// Package config manages application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey indicates no YouTube Data API credential was found in the
// environment, the .env file, or the config file.
var ErrMissingAPIKey = errors.New("config: YOUTUBE_API_KEY not set")

// Config holds all application configuration for transcript collection.
type Config struct {
	// APIKey is the YouTube Data API v3 key.
	APIKey string `json:"api_key"`

	// OutputDir is the directory transcripts are written to.
	OutputDir string `json:"output_dir"`
	// SkipExisting skips videos whose transcript file already exists.
	SkipExisting bool `json:"skip_existing"`

	// MaxVideos limits how many videos to process (0 = all).
	MaxVideos int `json:"max_videos"`
	// Languages is the ordered transcript language preference.
	// Empty means any available language.
	Languages []string `json:"languages"`

	// APIDelay is the spacing between YouTube Data API requests.
	APIDelay time.Duration `json:"api_delay"`
	// TranscriptDelay is the spacing between transcript downloads.
	TranscriptDelay time.Duration `json:"transcript_delay"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:       "transcriptions",
		SkipExisting:    true,
		MaxVideos:       0,
		APIDelay:        time.Second,
		TranscriptDelay: 500 * time.Millisecond,
	}
}

// Load loads configuration from a .env file, an optional config file, and
// environment variables, then validates it.
// Priority: env vars > config file > defaults. The .env file only supplies
// values to the environment and never overrides variables already set.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytscribe.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytscribe.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytscribe", "ytscribe.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTSCRIBE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTSCRIBE_SKIP_EXISTING"); v != "" {
		c.SkipExisting = v == "true" || v == "1"
	}
	if v := os.Getenv("YTSCRIBE_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("YTSCRIBE_LANGUAGES"); v != "" {
		c.Languages = splitLanguages(v)
	}
	if v := os.Getenv("YTSCRIBE_API_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.APIDelay = d
		}
	}
	if v := os.Getenv("YTSCRIBE_TRANSCRIPT_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TranscriptDelay = d
		}
	}
}

// splitLanguages parses a comma-separated language list, dropping blanks.
func splitLanguages(s string) []string {
	var langs []string
	for _, lang := range strings.Split(s, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("max_videos must be non-negative")
	}
	if c.APIDelay < 0 {
		return fmt.Errorf("api_delay must be non-negative")
	}
	if c.TranscriptDelay < 0 {
		return fmt.Errorf("transcript_delay must be non-negative")
	}
	return nil
}
