package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete wildtrace configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// StorageConfig configures the incident store
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite database path
}

// LexiconConfig configures the term lexicon
type LexiconConfig struct {
	Path string `yaml:"path,omitempty"` // Optional YAML lexicon file; empty = built-in lexicon
}

// HTTPConfig configures the article fetcher
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host"` // Requests per second per host
}

// CacheConfig configures enrichment response caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// LLMConfig configures the optional enrichment provider
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty"` // openai, anthropic, ollama, "" = disabled
	Model     string `yaml:"model,omitempty"`
	APIKey    string `yaml:"-"` // Never persisted; from environment only
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".wildtrace")

	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(base, "incidents.db"),
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Wildtrace/0.3 (+https://github.com/rpradhan/wildtrace)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  1.0,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     filepath.Join(base, "cache"),
			TTL:     7 * 24 * time.Hour,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}
