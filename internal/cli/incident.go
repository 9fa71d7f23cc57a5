package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/normalize"
	"github.com/rpradhan/wildtrace/internal/store"
)

var (
	incDate     string
	incDistrict string
	incSource   string
	incNotes    string
	incSpecies  []string
	incTags     []string
	noAnnotate  bool

	listDistrict string
	listSpecies  string
	listTag      string
	listFrom     string
	listTo       string
	listSearch   string
	listLimit    int
)

// incidentCmd groups the incident CRUD commands.
var incidentCmd = &cobra.Command{
	Use:   "incident",
	Short: "Manage the incident database",
}

var incidentAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Record a new incident",
	Long: `Record an incident. Unless --no-annotate is given, species, tags and
district are derived from the description; explicit flags always win.

Example:
  wildtrace incident add "Leopard skins seized in Angul" --date 2026-03-14 --source "Local daily"`,
	Args: cobra.ExactArgs(1),
	RunE: runIncidentAdd,
}

var incidentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one incident",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncidentGet,
}

var incidentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incidents, newest first",
	Long: `List incidents with optional filters.

Example:
  wildtrace incident list --district Angul --species "Leopard" --from 2026-01-01`,
	RunE: runIncidentList,
}

var incidentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an incident",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncidentUpdate,
}

var incidentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an incident",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncidentDelete,
}

var incidentStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show incident counts per species group",
	RunE:  runIncidentStats,
}

func init() {
	rootCmd.AddCommand(incidentCmd)
	incidentCmd.AddCommand(incidentAddCmd)
	incidentCmd.AddCommand(incidentGetCmd)
	incidentCmd.AddCommand(incidentListCmd)
	incidentCmd.AddCommand(incidentUpdateCmd)
	incidentCmd.AddCommand(incidentDeleteCmd)
	incidentCmd.AddCommand(incidentStatsCmd)

	for _, cmd := range []*cobra.Command{incidentAddCmd, incidentUpdateCmd} {
		cmd.Flags().StringVar(&incDate, "date", "", "incident date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&incDistrict, "district", "", "district (normalized against the gazetteer)")
		cmd.Flags().StringVar(&incSource, "source", "", "source of the report")
		cmd.Flags().StringVar(&incNotes, "notes", "", "free-form notes")
		cmd.Flags().StringSliceVar(&incSpecies, "species", nil, "species labels (overrides detection)")
		cmd.Flags().StringSliceVar(&incTags, "tags", nil, "tags (overrides assignment)")
	}
	incidentAddCmd.Flags().BoolVar(&noAnnotate, "no-annotate", false, "skip automatic annotation")

	incidentListCmd.Flags().StringVar(&listDistrict, "district", "", "filter by district")
	incidentListCmd.Flags().StringVar(&listSpecies, "species", "", "filter by species label")
	incidentListCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
	incidentListCmd.Flags().StringVar(&listFrom, "from", "", "earliest date (YYYY-MM-DD)")
	incidentListCmd.Flags().StringVar(&listTo, "to", "", "latest date (YYYY-MM-DD)")
	incidentListCmd.Flags().StringVar(&listSearch, "search", "", "substring search in description and notes")
	incidentListCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum incidents to return (0 = all)")
}

func runIncidentAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}
	norm := normalize.NewNormalizer(lex)

	inc := model.Incident{
		Date:        incDate,
		Description: args[0],
		Source:      incSource,
		Notes:       incNotes,
		Species:     incSpecies,
		Tags:        incTags,
	}
	if incDistrict != "" {
		inc.District = norm.Location(incDistrict)
	}

	if !noAnnotate {
		annotator, err := buildAnnotator(cfg)
		if err != nil {
			return err
		}
		inc = annotator.AnnotateIncident(ctx, inc)
	}

	created, err := s.Create(ctx, inc)
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printJSON(created)
	}
	fmt.Printf("Created incident %d\n", created.ID)
	printIncident(created)
	return nil
}

func runIncidentGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	inc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printJSON(inc)
	}
	printIncident(inc)
	return nil
}

func runIncidentList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	incidents, err := s.List(ctx, store.Filter{
		District: listDistrict,
		Species:  listSpecies,
		Tag:      listTag,
		DateFrom: listFrom,
		DateTo:   listTo,
		Search:   listSearch,
		Limit:    listLimit,
	})
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printJSON(incidents)
	}

	if len(incidents) == 0 {
		fmt.Println("No incidents found")
		return nil
	}
	for _, inc := range incidents {
		fmt.Printf("%-5d %-12s %-14s %s\n", inc.ID, orDash(inc.Date), orDash(inc.District), truncate(inc.Description, 60))
	}
	return nil
}

func runIncidentUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	inc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}
	norm := normalize.NewNormalizer(lex)

	if cmd.Flags().Changed("date") {
		inc.Date = incDate
	}
	if cmd.Flags().Changed("district") {
		inc.District = norm.Location(incDistrict)
	}
	if cmd.Flags().Changed("source") {
		inc.Source = incSource
	}
	if cmd.Flags().Changed("notes") {
		inc.Notes = incNotes
	}
	if cmd.Flags().Changed("species") {
		inc.Species = incSpecies
	}
	if cmd.Flags().Changed("tags") {
		inc.Tags = incTags
	}

	updated, err := s.Update(ctx, inc)
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated incident %d\n", updated.ID)
	printIncident(updated)
	return nil
}

func runIncidentDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted incident %d\n", id)
	return nil
}

func runIncidentStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	counts, err := s.SpeciesCounts(ctx)
	if err != nil {
		return err
	}

	// Collapse individual labels into their species groups
	grouped := make(map[string]int)
	for label, n := range counts {
		grouped[normalize.Species(label)] += n
	}

	if cfg.Output.JSON {
		return printJSON(grouped)
	}

	groups := make([]string, 0, len(grouped))
	for group := range grouped {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if grouped[groups[i]] != grouped[groups[j]] {
			return grouped[groups[i]] > grouped[groups[j]]
		}
		return groups[i] < groups[j]
	})

	for _, group := range groups {
		fmt.Printf("%-24s %d\n", group, grouped[group])
	}
	return nil
}

func printIncident(inc model.Incident) {
	fmt.Printf("ID:          %d\n", inc.ID)
	fmt.Printf("Date:        %s\n", orDash(inc.Date))
	fmt.Printf("District:    %s\n", orDash(inc.District))
	fmt.Printf("Species:     %s\n", joinOrDash(inc.Species))
	fmt.Printf("Tags:        %s\n", joinOrDash(inc.Tags))
	fmt.Printf("Source:      %s\n", orDash(inc.Source))
	fmt.Printf("Description: %s\n", inc.Description)
	if inc.Notes != "" {
		fmt.Printf("Notes:       %s\n", inc.Notes)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid incident id %q", s)
	}
	return id, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
