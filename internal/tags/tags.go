// Package tags assigns predefined incident category tags from narrative
// keywords. Like the entity detector it is deterministic and auditable:
// every tag can be traced to the keyword rule that fired.
package tags

import (
	"regexp"
	"strings"

	"github.com/rpradhan/wildtrace/internal/model"
)

// Predefined tags, in display order.
var Predefined = []string{
	"Animal Hunting", "Animal Killing", "Poaching", "Animal Smuggling",
	"Illegal Wildlife Trade", "Animal Capture", "Animal Injury/Cruelty",
	"Seizure of Animal Products", "Illegal Weapon Usage", "Forest Law Violation",
	"Arrest/Legal Action", "Rescue and Rehabilitation",
}

var tagKeywords = map[string][]string{
	"Animal Hunting": {
		"hunt", "hunting", "hunter", "hunted", "game", "trophy", "safari",
		"stalk", "track", "pursue", "chase",
	},
	"Animal Killing": {
		"kill", "killed", "killing", "slaughter", "slaughtered", "murder",
		"death", "dead", "fatal", "lethal", "execute", "executed",
	},
	"Poaching": {
		"poach", "poacher", "poaching", "illegal hunt", "wildlife crime",
		"endangered species", "protected animal", "banned hunt",
	},
	"Animal Smuggling": {
		"smuggle", "smuggling", "smuggler", "contraband", "illegal transport",
		"border crossing", "hidden cargo", "traffick", "trafficking",
	},
	"Illegal Wildlife Trade": {
		"trade", "trading", "market", "black market", "illegal sale",
		"wildlife commerce", "animal trafficking", "commercial poaching",
	},
	"Animal Capture": {
		"capture", "captured", "trap", "trapped", "net", "cage", "caught",
		"seize", "seized",
	},
	"Animal Injury/Cruelty": {
		"injure", "injured", "injury", "cruelty", "abuse", "torture",
		"mutilate", "mutilated", "wound", "wounded", "suffer", "suffering",
	},
	"Seizure of Animal Products": {
		"seize", "seized", "confiscate", "confiscated", "ivory", "tusk",
		"skin", "hide", "fur", "scale", "horn", "bone", "meat", "product",
	},
	"Illegal Weapon Usage": {
		"weapon", "gun", "rifle", "firearm", "poison", "trap", "snare",
		"explosive", "bomb", "illegal weapon", "prohibited weapon",
	},
	"Forest Law Violation": {
		"forest", "protected area", "national park", "sanctuary", "reserve",
		"conservation area", "wildlife reserve", "violation", "trespass",
	},
	"Arrest/Legal Action": {
		"arrest", "arrested", "detain", "detained", "charge", "charged",
		"prosecute", "prosecuted", "court", "legal", "law enforcement",
	},
	"Rescue and Rehabilitation": {
		"rescue", "rescued", "rehabilitate", "rehabilitation", "save",
		"saved", "release", "released", "recovery", "treatment", "care",
	},
}

// Assigner matches incident text against the tag keyword rules.
type Assigner struct {
	patterns map[string][]*regexp.Regexp
}

// NewAssigner compiles the keyword patterns once.
func NewAssigner() *Assigner {
	patterns := make(map[string][]*regexp.Regexp, len(tagKeywords))
	for tag, keywords := range tagKeywords {
		compiled := make([]*regexp.Regexp, len(keywords))
		for i, keyword := range keywords {
			// Word boundaries so "hunt" does not fire inside "shunted".
			compiled[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		}
		patterns[tag] = compiled
	}
	return &Assigner{patterns: patterns}
}

// Assign returns the tags matching an incident, in Predefined order.
// An incident with no matching rules gets no tags; that is not an error.
func (a *Assigner) Assign(incident model.Incident) []string {
	text := strings.ToLower(strings.Join([]string{
		incident.Description,
		strings.Join(incident.Species, " "),
		incident.District,
		incident.Notes,
		incident.Source,
	}, " "))

	assigned := make(map[string]bool)
	for tag, patterns := range a.patterns {
		for _, p := range patterns {
			if p.MatchString(text) {
				assigned[tag] = true
				break
			}
		}
	}

	// Combination rules layered on top of the per-tag keywords.
	if strings.Contains(text, "poaching") ||
		(strings.Contains(text, "hunting") && strings.Contains(text, "illegal")) {
		assigned["Poaching"] = true
	}
	if strings.Contains(text, "smuggling") || strings.Contains(text, "trafficking") {
		assigned["Animal Smuggling"] = true
		assigned["Illegal Wildlife Trade"] = true
	}

	// Fallback: a clearly wildlife-related narrative with no rule hits still
	// gets a best-guess tag from coarse context.
	if len(assigned) == 0 && containsAny(text, "wildlife", "animal", "species", "conservation") {
		switch {
		case containsAny(text, "kill", "dead", "death"):
			assigned["Animal Killing"] = true
		case containsAny(text, "arrest", "seize"):
			assigned["Arrest/Legal Action"] = true
		case containsAny(text, "rescue", "save"):
			assigned["Rescue and Rehabilitation"] = true
		}
	}

	var result []string
	for _, tag := range Predefined {
		if assigned[tag] {
			result = append(result, tag)
		}
	}
	return result
}

// AssignText is a convenience for callers with only a narrative.
func (a *Assigner) AssignText(description string) []string {
	return a.Assign(model.Incident{Description: description})
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
