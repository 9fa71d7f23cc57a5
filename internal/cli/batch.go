package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	batchSave    bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Annotate narratives from a file in parallel",
	Long: `Batch annotates many narratives concurrently:
- Read narratives from the input file (one per line, # starts a comment)
- Annotate them in parallel with a configurable worker count
- Optionally save each annotated narrative as an incident with --save

Example:
  wildtrace batch narratives.txt
  wildtrace batch narratives.txt --concurrency 8 --save
  wildtrace batch narratives.txt --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "save each annotated narrative as an incident")

	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama; empty = disabled)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable enrichment response cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
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
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	annotator, err := buildAnnotator(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Reading narratives from %s\n", file)

	processor := worker.NewBatchProcessor(annotator, cfg.Concurrency.Workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Annotated %d narratives with %d workers\n\n", len(results), cfg.Concurrency.Workers)

	if cfg.Output.JSON {
		return printJSON(results)
	}

	saved := 0
	if batchSave {
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, result := range results {
			inc := resultToIncident(result)
			if _, err := s.Create(ctx, inc); err != nil {
				fmt.Fprintf(os.Stderr, "save failed for narrative %d: %v\n", result.Index+1, err)
				continue
			}
			saved++
		}
	}

	for _, result := range results {
		fmt.Printf("%3d  %-50s  species: %s  tags: %s\n",
			result.Index+1,
			truncate(result.Narrative, 50),
			joinOrDash(result.Annotation.Species),
			joinOrDash(result.Annotation.Tags))
	}

	if batchSave {
		fmt.Fprintf(os.Stderr, "\nSaved %d of %d incidents\n", saved, len(results))
	}
	return nil
}

func resultToIncident(result *worker.AnnotateResult) model.Incident {
	return model.Incident{
		Description: result.Narrative,
		Species:     result.Annotation.Species,
		Tags:        result.Annotation.Tags,
		District:    result.Annotation.District,
	}
}
