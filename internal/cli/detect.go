package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/detect"
)

// detectCmd runs only the deterministic detector, no store and no LLM.
var detectCmd = &cobra.Command{
	Use:   "detect [narrative]",
	Short: "Extract species and product labels from a narrative",
	Long: `Detect runs the deterministic entity detector on a narrative and prints
the canonical species and product labels it finds.

The narrative is taken from the argument, or from stdin when omitted.

Example:
  wildtrace detect "Forest officials seized leopard skins from smugglers in Angul"
  cat article.txt | wildtrace detect`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	narrative, err := narrativeFromArgsOrStdin(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}

	labels := detect.NewDetector(lex).Detect(narrative)

	if cfg.Output.JSON {
		return printJSON(struct {
			Species []string `json:"species"`
		}{Species: labels})
	}

	if len(labels) == 0 {
		fmt.Fprintln(os.Stderr, "No species or products detected")
		return nil
	}
	for _, label := range labels {
		fmt.Println(label)
	}
	return nil
}

// narrativeFromArgsOrStdin returns the first argument, or the whole of
// stdin when no argument is given.
func narrativeFromArgsOrStdin(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	narrative := strings.TrimSpace(string(data))
	if narrative == "" {
		return "", fmt.Errorf("no narrative given (pass as argument or on stdin)")
	}
	return narrative, nil
}
