package normalize

import (
	"strings"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

// Location maps a free-text location string onto the fixed district
// gazetteer. Rules are tried in order and the first hit wins:
//
//  1. exact alias match ("Rourkela" -> "Sundargarh")
//  2. exact district match
//  3. a district name contained in the input ("Angul District" -> "Angul")
//  4. an alias contained in the input ("near Rourkela" -> "Sundargarh")
//
// Anything unmatched is returned title-cased rather than rejected.
func (n *Normalizer) Location(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return name
	}

	if district, ok := n.lex.DistrictForAlias(lower); ok {
		return district
	}

	for _, district := range n.lex.Districts() {
		if strings.ToLower(district) == lower {
			return district
		}
	}

	for _, district := range n.lex.Districts() {
		if strings.Contains(lower, strings.ToLower(district)) {
			return district
		}
	}

	for _, alias := range n.lex.AliasKeys() {
		if strings.Contains(lower, alias) {
			return n.lex.AliasDistrict(alias)
		}
	}

	return lexicon.Title(name)
}
