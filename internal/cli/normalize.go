package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/normalize"
)

// normalizeCmd groups the single-value normalizers.
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize locations, species and compound phrases",
}

var normalizeLocationCmd = &cobra.Command{
	Use:   "location <name>",
	Short: "Map a location name onto the district gazetteer",
	Long: `Map a free-text location onto a known district. Aliases resolve to their
district ("Rourkela" -> "Sundargarh"); unknown places come back title-cased.

Example:
  wildtrace normalize location "near Rourkela"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args[0], func(n *normalize.Normalizer, s string) string {
			return n.Location(s)
		})
	},
}

var normalizeSpeciesCmd = &cobra.Command{
	Use:   "species <name>",
	Short: "Collapse a species or product label into its filter group",
	Long: `Collapse fragmented species names into one group ("Tortoise" and
"Sea Turtle" both become "Turtles") so facet counts line up.

Example:
  wildtrace normalize species "Indian Flapshell Turtle"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args[0], func(_ *normalize.Normalizer, s string) string {
			return normalize.Species(s)
		})
	},
}

var normalizeCompoundCmd = &cobra.Command{
	Use:   "compound <phrase>",
	Short: "Split a species-product phrase into its species",
	Long: `Reduce a compound phrase to its species part when the phrase names a
known animal product ("tiger skin" -> "Tiger"). Phrases without a product
indicator come back unchanged.

Example:
  wildtrace normalize compound "pangolin scales"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args[0], func(n *normalize.Normalizer, s string) string {
			return n.CompoundPhrase(s)
		})
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.AddCommand(normalizeLocationCmd)
	normalizeCmd.AddCommand(normalizeSpeciesCmd)
	normalizeCmd.AddCommand(normalizeCompoundCmd)
}

func runNormalize(input string, fn func(*normalize.Normalizer, string) string) error {
	cfg := loadConfig()
	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}

	result := fn(normalize.NewNormalizer(lex), input)

	if cfg.Output.JSON {
		return printJSON(struct {
			Input  string `json:"input"`
			Result string `json:"result"`
		}{Input: input, Result: result})
	}
	fmt.Println(result)
	return nil
}
