package detect

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	return NewDetector(lexicon.Default())
}

func TestDetect_CompositeProduct(t *testing.T) {
	d := newTestDetector(t)

	got := d.Detect("Forest officials seized leopard skins from smugglers.")
	want := []string{"Leopard Skins"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_TusksSuppressIvory(t *testing.T) {
	d := newTestDetector(t)

	// "ivory" on its own is redundant next to a tusk label
	got := d.Detect("Police recovered elephant tusks and ivory from the traders.")
	want := []string{"Elephant Tusks"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_TuskerCanonicalizes(t *testing.T) {
	d := newTestDetector(t)

	got := d.Detect("A tusker carcass was found in the forest.")
	want := []string{"Asian Elephant"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_FillerSeparatedComposite(t *testing.T) {
	d := newTestDetector(t)

	// "leopard ... skin" with filler words is not a composite; the animal
	// and the generic product surface as separate labels.
	got := d.Detect("The leopard was killed for its skin.")
	want := []string{"Animal Skin", "Leopard"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_SentenceGating(t *testing.T) {
	d := newTestDetector(t)

	// Only the sentence with a context signal is scanned, so the tiger in
	// the signal-free first sentence must not surface.
	got := d.Detect("The tiger escaped from the enclosure. Poachers were arrested with a pangolin.")
	want := []string{"Pangolin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_WholeNarrativeFallback(t *testing.T) {
	d := newTestDetector(t)

	// No sentence carries a signal or product, so the whole narrative is
	// scanned instead of returning nothing.
	got := d.Detect("A tiger and a sambar were spotted near the village pond.")
	want := []string{"Royal Bengal Tiger", "Sambar Deer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect() = %v, want %v", got, want)
	}
}

func TestDetect_EmptyNarrative(t *testing.T) {
	d := newTestDetector(t)

	for _, narrative := range []string{"", "   ", "\n\t"} {
		if got := d.Detect(narrative); len(got) != 0 {
			t.Errorf("Detect(%q) = %v, want empty", narrative, got)
		}
	}
}

func TestDetect_NoMatches(t *testing.T) {
	d := newTestDetector(t)

	if got := d.Detect("The committee met on Tuesday to discuss road repairs."); len(got) != 0 {
		t.Errorf("Detect() = %v, want empty", got)
	}
}

func TestDetect_NoDuplicatesOrContainment(t *testing.T) {
	d := newTestDetector(t)

	got := d.Detect("Smugglers arrested with pangolin scales; another pangolin was rescued with more pangolin scales.")

	seen := make(map[string]bool)
	for _, label := range got {
		if seen[label] {
			t.Errorf("duplicate label %q in %v", label, got)
		}
		seen[label] = true
	}
	for i, a := range got {
		for j, b := range got {
			if i != j && containsFold(b, a) {
				t.Errorf("label %q is contained in %q: %v", a, b, got)
			}
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := newTestDetector(t)
	narrative := "Officials seized elephant tusks, leopard skins and a live pangolin after the arrest."

	first := d.Detect(narrative)
	for i := 0; i < 10; i++ {
		if got := d.Detect(narrative); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestSuppressContained(t *testing.T) {
	got := suppressContained([]string{"skin", "skins", "leopard skins", "ivory"})
	want := []string{"leopard skins", "ivory"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suppressContained() = %v, want %v", got, want)
	}
}

func TestSuppressGenericSkin(t *testing.T) {
	got := suppressGenericSkin([]string{"Animal Skin", "Leopard Skins"})
	want := []string{"Leopard Skins"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suppressGenericSkin() = %v, want %v", got, want)
	}

	// Without a specific skin label the generic one survives
	kept := suppressGenericSkin([]string{"Animal Skin", "Leopard"})
	if !reflect.DeepEqual(kept, []string{"Animal Skin", "Leopard"}) {
		t.Errorf("suppressGenericSkin() dropped generic label without a specific one: %v", kept)
	}
}

func TestSuppressGenericIvory(t *testing.T) {
	got := suppressGenericIvory([]string{"Asian Elephant", "Ivory"})
	want := []string{"Asian Elephant"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suppressGenericIvory() = %v, want %v", got, want)
	}

	kept := suppressGenericIvory([]string{"Ivory", "Pangolin"})
	if !reflect.DeepEqual(kept, []string{"Ivory", "Pangolin"}) {
		t.Errorf("suppressGenericIvory() dropped Ivory without an elephant label: %v", kept)
	}
}

func TestEntities_DefaultDetector(t *testing.T) {
	got := Entities("A tusker carcass was found in the forest.")
	want := []string{"Asian Elephant"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entities() = %v, want %v", got, want)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
