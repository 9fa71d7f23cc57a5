package normalize

import (
	"strings"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

// Generic terms that are never acceptable species names.
var genericTerms = map[string]bool{
	"animal":    true,
	"animals":   true,
	"wildlife":  true,
	"creature":  true,
	"creatures": true,
}

// CompoundPhrase strips a known product indicator from a compound phrase
// and returns the species part: "tiger skin" -> "Tiger". The leading token
// must validate against the species whitelist; anything else, including a
// phrase with no product indicator at all, comes back unchanged.
func (n *Normalizer) CompoundPhrase(phrase string) string {
	lower := strings.ToLower(strings.TrimSpace(phrase))

	for _, indicator := range n.lex.ProductIndicators() {
		if !strings.Contains(lower, " "+indicator) && !strings.Contains(lower, indicator+" ") {
			continue
		}
		parts := strings.Fields(lower)
		if len(parts) < 2 {
			continue
		}
		species := parts[0]
		if genericTerms[species] || !n.lex.IsKnownSpecies(species) {
			continue
		}
		return lexicon.Title(species)
	}

	return phrase
}

// FilterSpecies cleans a list of externally supplied animal names (typically
// LLM output): generic terms are dropped, compound product names are reduced
// to their species, plurals are singularized, and only whitelisted species
// survive. The result is deduplicated but keeps first-seen order.
func (n *Normalizer) FilterSpecies(animals []string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, animal := range animals {
		lower := strings.ToLower(strings.TrimSpace(animal))
		if lower == "" || genericTerms[lower] {
			continue
		}

		if split := n.CompoundPhrase(animal); split != animal {
			lower = strings.ToLower(split)
		}
		if !n.lex.IsKnownSpecies(lower) {
			continue
		}

		// Singularize for consistent faceting ("tigers" and "tiger" must
		// count together).
		if strings.HasSuffix(lower, "s") && n.lex.IsKnownSpecies(strings.TrimSuffix(lower, "s")) {
			lower = strings.TrimSuffix(lower, "s")
		}

		label := lexicon.Title(lower)
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}

	return out
}
