package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	llmProvider     string
	llmModel        string
	noCache         bool
	annotateTimeout time.Duration
)

// annotateCmd runs the full annotation pipeline on one narrative.
var annotateCmd = &cobra.Command{
	Use:   "annotate [narrative]",
	Short: "Annotate a narrative with species, tags and district",
	Long: `Annotate runs the full pipeline on a narrative: entity detection, tag
assignment, and location normalization. With --llm-provider an LLM
enrichment pass runs first; its output is filtered against the species
whitelist and any failure falls back to the deterministic detector.

Example:
  wildtrace annotate "Two poachers arrested with elephant tusks near Rourkela"
  wildtrace annotate --llm-provider openai "..." `,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama; empty = disabled)")
	annotateCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	annotateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable enrichment response cache")
	annotateCmd.Flags().DurationVar(&annotateTimeout, "timeout", time.Minute, "overall timeout")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	narrative, err := narrativeFromArgsOrStdin(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), annotateTimeout)
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

	annotator, err := buildAnnotator(cfg)
	if err != nil {
		return err
	}

	annotation := annotator.Annotate(ctx, narrative)

	if cfg.Output.JSON {
		return printJSON(annotation)
	}

	fmt.Printf("Species:  %s\n", joinOrDash(annotation.Species))
	fmt.Printf("Tags:     %s\n", joinOrDash(annotation.Tags))
	fmt.Printf("District: %s\n", orDash(annotation.District))
	if annotation.Enriched {
		fmt.Println("Enriched: yes")
	}
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
