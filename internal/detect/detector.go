// Package detect implements the deterministic entity-extraction engine:
// given a free-text incident narrative it returns the canonical,
// deduplicated labels of the animal species and wildlife products mentioned.
// Everything is lexicon- and pattern-driven; there is no model, no I/O and
// no retained state, so a Detector is safe for concurrent use.
package detect

import (
	"strings"
	"sync"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

// Detector runs the extraction passes over narratives. All matchers are
// compiled once at construction and reused across calls.
type Detector struct {
	lex          *lexicon.Lexicon
	products     *literalMatcher
	signals      *literalMatcher
	animalsBirds *boundedMatcher
	composite    *compositeMatcher
}

// NewDetector compiles the matchers for the given lexicon.
func NewDetector(lex *lexicon.Lexicon) *Detector {
	animalsBirds := append(append([]string(nil), lex.AnimalTerms()...), lex.BirdTerms()...)

	return &Detector{
		lex:          lex,
		products:     newLiteralMatcher(lex.ProductTerms()),
		signals:      newLiteralMatcher(lex.ContextSignalTerms()),
		animalsBirds: newBoundedMatcher(animalsBirds),
		composite:    newCompositeMatcher(lex.AnimalTerms(), lex.ProductTerms()),
	}
}

// Detect extracts the canonical entity labels from one narrative. The result
// is sorted, has no duplicates, and no label is a case-insensitive substring
// of another. Empty or unmatchable input yields an empty result, never an
// error: the engine is a best-effort annotator and callers must treat its
// output as advisory.
func (d *Detector) Detect(narrative string) []string {
	if strings.TrimSpace(narrative) == "" {
		return nil
	}

	scan := d.selectContext(narrative)
	candidates := d.extract(scan)
	return d.finalize(scan, candidates)
}

// extract runs the three candidate passes over the scan text. All passes
// always run; overlap resolution belongs entirely to finalize.
func (d *Detector) extract(scan string) map[string]Candidate {
	candidates := make(map[string]Candidate)

	// Pass 1: standalone product terms, substring match.
	for _, term := range d.products.Match(scan) {
		candidates[term] = Candidate{Raw: term, Provenance: ProvenanceProduct}
	}

	// Pass 2: composite animal-near-product spans. May overwrite a pass-1
	// entry for the same raw string with the richer composite form.
	for _, pair := range d.composite.Match(scan) {
		raw := pair.Animal + " " + pair.Product
		candidates[raw] = Candidate{Raw: raw, Provenance: ProvenanceComposite, Product: pair.Product}
	}

	// Pass 3: standalone animal and bird terms at word boundaries.
	for _, term := range d.animalsBirds.Match(scan) {
		if _, exists := candidates[term]; !exists {
			candidates[term] = Candidate{Raw: term, Provenance: ProvenanceAnimal}
		}
	}

	return candidates
}

// Default-detector plumbing for callers that just want the built-in lexicon.
var (
	defaultOnce     sync.Once
	defaultDetector *Detector
)

// Entities extracts entity labels using a process-wide detector built from
// the default lexicon.
func Entities(narrative string) []string {
	defaultOnce.Do(func() {
		defaultDetector = NewDetector(lexicon.Default())
	})
	return defaultDetector.Detect(narrative)
}
