// Package normalize holds the best-effort single-string normalizers that
// clean up already-extracted values: compound species/product phrases,
// free-text location names, and fragmented species names. Unlike the
// narrative detector these operate on short strings, typically model output
// or user input, and always return a usable string instead of failing.
package normalize

import (
	"sync"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

// Normalizer wraps a lexicon with the normalization rules.
type Normalizer struct {
	lex *lexicon.Lexicon
}

// NewNormalizer creates a normalizer over the given lexicon.
func NewNormalizer(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{lex: lex}
}

var (
	defaultOnce sync.Once
	defaultNorm *Normalizer
)

func defaultNormalizer() *Normalizer {
	defaultOnce.Do(func() {
		defaultNorm = NewNormalizer(lexicon.Default())
	})
	return defaultNorm
}

// CompoundPhrase splits a compound phrase using the default lexicon.
func CompoundPhrase(phrase string) string {
	return defaultNormalizer().CompoundPhrase(phrase)
}

// Location normalizes a location name using the default lexicon.
func Location(name string) string {
	return defaultNormalizer().Location(name)
}
