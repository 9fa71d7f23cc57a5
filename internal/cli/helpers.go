package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rpradhan/wildtrace/internal/cache"
	"github.com/rpradhan/wildtrace/internal/detect"
	"github.com/rpradhan/wildtrace/internal/lexicon"
	"github.com/rpradhan/wildtrace/internal/llm"
	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/normalize"
	"github.com/rpradhan/wildtrace/internal/pipeline"
	"github.com/rpradhan/wildtrace/internal/store"
)

// loadConfig layers the config file over the built-in defaults. Flags are
// applied by the individual commands on top of this.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		if data, err := os.ReadFile(file); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config %s: %v\n", file, err)
			}
		}
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	if jsonOut {
		cfg.Output.JSON = true
	}
	return cfg
}

// openLexicon returns the configured lexicon, or the built-in one when no
// file is configured.
func openLexicon(cfg *model.Config) (*lexicon.Lexicon, error) {
	if cfg.Lexicon.Path == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", cfg.Lexicon.Path, err)
	}
	return lex, nil
}

// openStore opens the incident database from configuration.
func openStore(cfg *model.Config) (*store.Store, error) {
	s, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open incident store: %w", err)
	}
	return s, nil
}

// resolveAPIKey fills cfg.LLM.APIKey and BaseURL from the environment for
// the selected provider.
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// buildAnnotator assembles the annotation pipeline from configuration,
// including the optional enricher when an LLM provider is set.
func buildAnnotator(cfg *model.Config) (*pipeline.Annotator, error) {
	lex, err := openLexicon(cfg)
	if err != nil {
		return nil, err
	}

	detector := detect.NewDetector(lex)
	norm := normalize.NewNormalizer(lex)

	opts := []pipeline.Option{pipeline.WithVerbose(cfg.Output.Verbose)}

	if cfg.LLM.Provider != "" {
		if err := resolveAPIKey(cfg); err != nil {
			return nil, err
		}
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("initialize LLM provider: %w", err)
		}

		var c cache.Cache
		if cfg.Cache.Enabled {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		}
		opts = append(opts, pipeline.WithEnricher(llm.NewEnricher(provider, c, norm)))
	}

	return pipeline.NewAnnotator(detector, norm, opts...), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
