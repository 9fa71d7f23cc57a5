package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the static term lists and canonicalization data the
// extraction engine runs on. A Lexicon is immutable after construction and
// safe for concurrent use; callers must not modify returned slices.
type Lexicon struct {
	animals        []string
	birds          []string
	products       []string
	contextSignals []string
	canonical      map[string]string

	speciesWhitelist  map[string]bool
	productIndicators []string

	districts       []string
	districtAliases map[string]string
	aliasKeys       []string // sorted, for deterministic substring matching
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	return build(defaultFile())
}

// Load reads a YAML lexicon file. Sections left empty in the file fall back
// to the built-in defaults, so a file may override just the canonical map or
// just the district aliases. An unreadable or malformed file is an error:
// the engine cannot run without its reference data.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	def := defaultFile()
	if len(f.Animals) == 0 {
		f.Animals = def.Animals
	}
	if len(f.Birds) == 0 {
		f.Birds = def.Birds
	}
	if len(f.Products) == 0 {
		f.Products = def.Products
	}
	if len(f.ContextSignals) == 0 {
		f.ContextSignals = def.ContextSignals
	}
	if len(f.Canonical) == 0 {
		f.Canonical = def.Canonical
	}
	if len(f.SpeciesWhitelist) == 0 {
		f.SpeciesWhitelist = def.SpeciesWhitelist
	}
	if len(f.ProductIndicators) == 0 {
		f.ProductIndicators = def.ProductIndicators
	}
	if len(f.Districts) == 0 {
		f.Districts = def.Districts
	}
	if len(f.DistrictAliases) == 0 {
		f.DistrictAliases = def.DistrictAliases
	}

	return build(f), nil
}

// File is the YAML shape of an external lexicon.
type File struct {
	Animals           []string          `yaml:"animals"`
	Birds             []string          `yaml:"birds"`
	Products          []string          `yaml:"products"`
	ContextSignals    []string          `yaml:"context_signals"`
	Canonical         map[string]string `yaml:"canonical"`
	SpeciesWhitelist  []string          `yaml:"species_whitelist"`
	ProductIndicators []string          `yaml:"product_indicators"`
	Districts         []string          `yaml:"districts"`
	DistrictAliases   map[string]string `yaml:"district_aliases"`
}

func build(f File) *Lexicon {
	lex := &Lexicon{
		animals:           lowerAll(f.Animals),
		birds:             lowerAll(f.Birds),
		products:          lowerAll(f.Products),
		contextSignals:    lowerAll(f.ContextSignals),
		canonical:         make(map[string]string, len(f.Canonical)),
		speciesWhitelist:  make(map[string]bool, len(f.SpeciesWhitelist)),
		productIndicators: lowerAll(f.ProductIndicators),
		districts:         append([]string(nil), f.Districts...),
		districtAliases:   make(map[string]string, len(f.DistrictAliases)),
	}

	for term, label := range f.Canonical {
		lex.canonical[strings.ToLower(term)] = label
	}
	for _, s := range f.SpeciesWhitelist {
		lex.speciesWhitelist[strings.ToLower(s)] = true
	}
	for alias, district := range f.DistrictAliases {
		lex.districtAliases[strings.ToLower(alias)] = district
	}

	lex.aliasKeys = make([]string, 0, len(lex.districtAliases))
	for alias := range lex.districtAliases {
		lex.aliasKeys = append(lex.aliasKeys, alias)
	}
	sort.Strings(lex.aliasKeys)

	return lex
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return out
}

// AnimalTerms returns the animal term list.
func (l *Lexicon) AnimalTerms() []string { return l.animals }

// BirdTerms returns the bird term list.
func (l *Lexicon) BirdTerms() []string { return l.birds }

// ProductTerms returns the wildlife-product term list.
func (l *Lexicon) ProductTerms() []string { return l.products }

// ContextSignalTerms returns the context-signal term list.
func (l *Lexicon) ContextSignalTerms() []string { return l.contextSignals }

// Canonicalize maps a raw matched term to its canonical display label.
// Unmapped terms fall back to the title-cased input; Canonicalize never fails.
func (l *Lexicon) Canonicalize(term string) string {
	if label, ok := l.canonical[strings.ToLower(strings.TrimSpace(term))]; ok {
		return label
	}
	return Title(term)
}

// IsKnownSpecies reports whether the term is in the species whitelist used
// by the compound-name splitter.
func (l *Lexicon) IsKnownSpecies(term string) bool {
	return l.speciesWhitelist[strings.ToLower(strings.TrimSpace(term))]
}

// ProductIndicators returns the product suffix/substring list for the
// compound-name splitter.
func (l *Lexicon) ProductIndicators() []string { return l.productIndicators }

// Districts returns the canonical district gazetteer in its fixed order.
func (l *Lexicon) Districts() []string { return l.districts }

// DistrictForAlias looks up a known location alias (city, landmark,
// spelling variant) and returns its district.
func (l *Lexicon) DistrictForAlias(name string) (string, bool) {
	district, ok := l.districtAliases[strings.ToLower(strings.TrimSpace(name))]
	return district, ok
}

// AliasKeys returns the alias keys in sorted order, for deterministic
// substring scans.
func (l *Lexicon) AliasKeys() []string { return l.aliasKeys }

// AliasDistrict returns the district mapped to an already-lowercased alias key.
func (l *Lexicon) AliasDistrict(key string) string { return l.districtAliases[key] }

// Title upper-cases the first letter of every space-separated word and
// lower-cases the rest, matching the display style of the canonical labels
// ("leopard skins" -> "Leopard Skins").
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
