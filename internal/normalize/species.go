package normalize

import (
	"strings"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

// speciesGroups unifies fragmented species names so filter facets count
// correctly ("Turtle", "Sea Turtle" and "Tortoise" are one group).
var speciesGroups = map[string]string{
	"turtle":                  "Turtles",
	"turtles":                 "Turtles",
	"sea turtle":              "Turtles",
	"sea turtles":             "Turtles",
	"tortoise":                "Turtles",
	"tortoises":               "Turtles",
	"indian flapshell turtle": "Turtles",
	"softshell turtle":        "Turtles",

	"elephant":       "Elephants",
	"elephants":      "Elephants",
	"asian elephant": "Elephants",
	"tusker":         "Elephants",

	"leopard":      "Leopards",
	"leopards":     "Leopards",
	"leopard skin": "Leopard Skin",

	"pangolin":        "Pangolins",
	"pangolins":       "Pangolins",
	"pangolin scale":  "Pangolin Scales",
	"pangolin scales": "Pangolin Scales",
	"scales":          "Pangolin Scales",

	"tiger":              "Tigers",
	"tigers":             "Tigers",
	"royal bengal tiger": "Tigers",

	"ivory": "Ivory",
	"tusk":  "Ivory",
	"tusks": "Ivory",

	"deer":         "Deer",
	"spotted deer": "Deer",
	"barking deer": "Deer",

	"snake":  "Snakes",
	"cobra":  "Snakes",
	"python": "Snakes",

	"myna":     "Birds",
	"parrot":   "Birds",
	"parakeet": "Birds",
}

// Species collapses a species or product label into its filter group.
// Exact lookups are tried first, then a handful of guarded partial-match
// rules (an "elephant skin" is a skin, not an elephant). Unknown names are
// title-cased and returned as-is.
func Species(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return name
	}

	if group, ok := speciesGroups[lower]; ok {
		return group
	}

	switch {
	case strings.Contains(lower, "turtle") || strings.Contains(lower, "tortoise"):
		return "Turtles"
	case strings.Contains(lower, "elephant") && !containsAny(lower, "skin", "ivory", "tusk"):
		return "Elephants"
	case strings.Contains(lower, "pangolin") && !containsAny(lower, "scale", "skin"):
		return "Pangolins"
	case strings.Contains(lower, "leopard") && !strings.Contains(lower, "skin"):
		return "Leopards"
	case strings.Contains(lower, "tiger") && !strings.Contains(lower, "skin"):
		return "Tigers"
	}

	return lexicon.Title(name)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
