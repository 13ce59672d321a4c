// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings. All fields are optional:
// without an API key the LLM features fall back to the Claude Code CLI,
// and without a lexicon path the embedded word list is used.
type Config struct {
	// APIKey enables the direct Anthropic API backend.
	APIKey string `env:"ANTHROPIC_API_KEY"`

	// Model is the model used for conversion and quiz generation.
	Model string `env:"LEESGRAAD_MODEL" envDefault:"claude-sonnet-4-20250514"`

	// LexiconPath overrides the embedded frequent-word list with an
	// external CSV file.
	LexiconPath string `env:"LEESGRAAD_LEXICON"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
