package detect

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// selectContext narrows the narrative to the sentences most likely to
// describe a wildlife object: those carrying a context signal ("seized",
// "poached", "carcass") or a product term. If no sentence qualifies the
// whole narrative is scanned, so terse reports are never silently skipped.
// The returned scan text is lowercase.
func (d *Detector) selectContext(narrative string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(narrative, "\n", " "))
	sentences := sentenceBoundary.Split(clean, -1)

	var relevant []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if d.signals.Contains(lower) || d.products.Contains(lower) {
			relevant = append(relevant, sentence)
		}
	}

	if len(relevant) == 0 {
		return strings.ToLower(narrative)
	}
	return strings.ToLower(strings.Join(relevant, " "))
}
