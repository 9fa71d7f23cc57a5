package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/cache"
	"github.com/rpradhan/wildtrace/internal/llm"
	"github.com/rpradhan/wildtrace/internal/normalize"
)

var enrichTimeout time.Duration

// enrichCmd runs only the LLM extraction, without the deterministic detector.
var enrichCmd = &cobra.Command{
	Use:   "enrich [narrative]",
	Short: "Extract entities from a narrative with an LLM",
	Long: `Enrich sends a narrative to the configured LLM provider and prints the
filtered extraction: whitelisted species, normalized district, and incident
keywords. Unlike annotate there is no detector fallback; a provider must be
configured and a failed call is an error.

Example:
  wildtrace enrich --llm-provider openai "Two poachers arrested with tusks"
  wildtrace enrich --llm-provider ollama --llm-model llama3.1:8b "..."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	enrichCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	enrichCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable enrichment response cache")
	enrichCmd.Flags().DurationVar(&enrichTimeout, "timeout", time.Minute, "overall timeout")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	narrative, err := narrativeFromArgsOrStdin(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
	defer cancel()

	cfg := loadConfig()
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cfg.LLM.Provider == "" {
		return fmt.Errorf("no LLM provider configured (use --llm-provider or set llm.provider in the config)")
	}

	if err := resolveAPIKey(cfg); err != nil {
		return err
	}
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}
	enricher := llm.NewEnricher(provider, c, normalize.NewNormalizer(lex))

	enrichment, err := enricher.Enrich(ctx, narrative)
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printJSON(enrichment)
	}

	fmt.Printf("Animals:  %s\n", joinOrDash(enrichment.Animals))
	fmt.Printf("District: %s\n", orDash(enrichment.Location))
	fmt.Printf("Keywords: %s\n", joinOrDash(enrichment.Keywords))
	return nil
}
