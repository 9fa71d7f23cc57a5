package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/fetch"
	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/worker"
)

var (
	scanTimeout   time.Duration
	scanUserAgent string
	scanMaxBytes  int64
	scanSave      bool
	ignoreRobots  bool
)

// scanCmd fetches an article and annotates its text.
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a news article and annotate it",
	Long: `Scan downloads an article, extracts its visible text, and runs the
annotation pipeline on it. robots.txt is honored and fetches are
rate-limited per host.

Example:
  wildtrace scan https://example.com/news/leopard-skins-seized
  wildtrace scan https://example.com/news/poachers-arrested --save`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&scanUserAgent, "ua", "", "HTTP User-Agent (default from config)")
	scanCmd.Flags().Int64Var(&scanMaxBytes, "max-bytes", 0, "max response bytes to read (default from config)")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "save the annotated article as an incident")
	scanCmd.Flags().BoolVar(&ignoreRobots, "ignore-robots", false, "skip the robots.txt check")

	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama; empty = disabled)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable enrichment response cache")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg := loadConfig()
	if scanUserAgent != "" {
		cfg.HTTP.UserAgent = scanUserAgent
	}
	if scanMaxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = scanMaxBytes
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
	}

	var crawlDelay time.Duration
	if !ignoreRobots {
		robots := fetch.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
		allowed, delay, err := robots.CanFetch(ctx, url)
		if err != nil {
			return fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return fmt.Errorf("robots.txt disallows fetching %s", url)
		}
		crawlDelay = delay
	}

	limiter := worker.NewLimiter(cfg.HTTP.RatePerHost, 1)
	if err := limiter.WaitWithDelay(ctx, url, crawlDelay); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	fetcher := fetch.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes)
	article, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Fetched %q (%d bytes of text)\n", article.Title, len(article.Text))
	}

	annotator, err := buildAnnotator(cfg)
	if err != nil {
		return err
	}
	annotation := annotator.Annotate(ctx, article.Text)

	if scanSave {
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		created, err := s.Create(ctx, model.Incident{
			Description: article.Text,
			Source:      article.FinalURL,
			Species:     annotation.Species,
			Tags:        annotation.Tags,
			District:    annotation.District,
		})
		if err != nil {
			return fmt.Errorf("save incident: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved as incident %d\n", created.ID)
	}

	if cfg.Output.JSON {
		return printJSON(struct {
			URL      string   `json:"url"`
			Title    string   `json:"title"`
			Species  []string `json:"species"`
			Tags     []string `json:"tags"`
			District string   `json:"district,omitempty"`
			Enriched bool     `json:"enriched"`
		}{
			URL:      article.FinalURL,
			Title:    article.Title,
			Species:  annotation.Species,
			Tags:     annotation.Tags,
			District: annotation.District,
			Enriched: annotation.Enriched,
		})
	}

	fmt.Printf("Title:    %s\n", orDash(article.Title))
	fmt.Printf("Species:  %s\n", joinOrDash(annotation.Species))
	fmt.Printf("Tags:     %s\n", joinOrDash(annotation.Tags))
	fmt.Printf("District: %s\n", orDash(annotation.District))
	return nil
}
