package detect

import (
	"regexp"
	"sort"
	"strings"
)

// literalMatcher finds lexicon phrases as plain substrings. Product phrases
// are matched without word boundaries on purpose: they are often embedded in
// longer technical wording ("carved ivory items", "skins in a bag").
type literalMatcher struct {
	terms []string
}

func newLiteralMatcher(terms []string) *literalMatcher {
	return &literalMatcher{terms: terms}
}

// Match returns every term that occurs in text. Text must be lowercase.
func (m *literalMatcher) Match(text string) []string {
	var found []string
	for _, term := range m.terms {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// Contains reports whether any term occurs in text.
func (m *literalMatcher) Contains(text string) bool {
	for _, term := range m.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// boundedMatcher finds lexicon phrases only at word boundaries, so "bear"
// does not fire inside "nearby". Each term gets its own compiled pattern:
// the pass is defined per term, and independent terms must all report
// ("sloth bear" and "bear" both match "sloth bear traders").
type boundedMatcher struct {
	terms    []string
	patterns []*regexp.Regexp
}

func newBoundedMatcher(terms []string) *boundedMatcher {
	m := &boundedMatcher{
		terms:    terms,
		patterns: make([]*regexp.Regexp, len(terms)),
	}
	for i, term := range terms {
		m.patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return m
}

// Match returns every term that occurs at a word boundary in text.
func (m *boundedMatcher) Match(text string) []string {
	var found []string
	for i, term := range m.terms {
		if m.patterns[i].MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}

// compositePair is one animal/product hit from the composite matcher.
type compositePair struct {
	Animal  string
	Product string
}

// compositeMatcher finds an animal term followed within three whitespace
// tokens by a product term ("leopard skins", "elephant ivory stock").
type compositeMatcher struct {
	re *regexp.Regexp
}

func newCompositeMatcher(animals, products []string) *compositeMatcher {
	pattern := "(" + alternation(animals) + `)(?:\s+\w+){0,3}\s+(` + alternation(products) + ")"
	return &compositeMatcher{re: regexp.MustCompile(pattern)}
}

// Match returns all animal/product pairs found in text.
func (m *compositeMatcher) Match(text string) []compositePair {
	matches := m.re.FindAllStringSubmatch(text, -1)
	pairs := make([]compositePair, 0, len(matches))
	for _, match := range matches {
		pairs = append(pairs, compositePair{Animal: match[1], Product: match[2]})
	}
	return pairs
}

// alternation builds a regexp alternation of escaped literals, longest
// first. Ordering matters: alternation is first-match, and the longer
// surface form must win ("skins" over "skin") so composite candidates keep
// the wording the narrative actually used.
func alternation(terms []string) string {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	escaped := make([]string, len(sorted))
	for i, term := range sorted {
		escaped[i] = regexp.QuoteMeta(term)
	}
	return strings.Join(escaped, "|")
}
