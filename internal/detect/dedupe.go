package detect

import (
	"sort"
	"strings"
)

// finalize turns the raw candidate set into the final label list: verify,
// suppress contained raw candidates, canonicalize, re-apply containment on
// the mapped labels, run the named suppression heuristics, sort.
func (d *Detector) finalize(scan string, candidates map[string]Candidate) []string {
	// Verification filter: a candidate must literally occur in the scan
	// text. This drops composite artifacts whose animal and product were
	// separated by filler tokens ("leopard killed for its skin" never
	// contains the span "leopard skin").
	var verified []string
	for raw := range candidates {
		if strings.Contains(scan, raw) {
			verified = append(verified, raw)
		}
	}

	kept := suppressContained(verified)

	// Canonical mapping; distinct raw candidates may collapse to one label.
	seen := make(map[string]bool, len(kept))
	var labels []string
	for _, raw := range kept {
		label := d.lex.Canonicalize(raw)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}

	// Mapping can reintroduce containment ("Deer" vs "Sambar Deer"), so the
	// invariant is enforced on the labels as well.
	labels = suppressContained(labels)

	labels = suppressGenericSkin(labels)
	labels = suppressGenericIvory(labels)

	sort.Strings(labels)
	return labels
}

// suppressContained keeps the longest, most specific strings: sorted by
// length descending, an entry survives only if it is not a case-insensitive
// substring of an already-kept entry. Ties break alphabetically so results
// are deterministic.
func suppressContained(items []string) []string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	var kept []string
	for _, item := range sorted {
		lower := strings.ToLower(item)
		redundant := false
		for _, existing := range kept {
			if strings.Contains(strings.ToLower(existing), lower) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, item)
		}
	}
	return kept
}

// suppressGenericSkin drops the generic "Animal Skin" label when a specific
// skin label ("Leopard Skin", "Tiger Skins") is present. A narrow,
// hand-tuned rule kept separate from the containment logic on purpose.
func suppressGenericSkin(labels []string) []string {
	specific := false
	for _, label := range labels {
		if label != "Animal Skin" && strings.Contains(label, "Skin") {
			specific = true
			break
		}
	}
	if !specific {
		return labels
	}
	return remove(labels, "Animal Skin")
}

// suppressGenericIvory drops the generic "Ivory" label when the result
// already names its origin: an elephant label or a tusk composite. Without
// this rule "tusks" in a narrative about an elephant carcass would surface
// a redundant Ivory entry next to Asian Elephant.
func suppressGenericIvory(labels []string) []string {
	specific := false
	for _, label := range labels {
		if label == "Ivory" {
			continue
		}
		if label == "Asian Elephant" || strings.Contains(strings.ToLower(label), "tusk") {
			specific = true
			break
		}
	}
	if !specific {
		return labels
	}
	return remove(labels, "Ivory")
}

func remove(labels []string, target string) []string {
	out := labels[:0]
	for _, label := range labels {
		if label != target {
			out = append(out, label)
		}
	}
	return out
}
