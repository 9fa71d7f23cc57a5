package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	lex := Default()

	if len(lex.AnimalTerms()) == 0 {
		t.Error("default lexicon has no animal terms")
	}
	if len(lex.BirdTerms()) == 0 {
		t.Error("default lexicon has no bird terms")
	}
	if len(lex.ProductTerms()) == 0 {
		t.Error("default lexicon has no product terms")
	}
	if len(lex.ContextSignalTerms()) == 0 {
		t.Error("default lexicon has no context signals")
	}
	if len(lex.Districts()) != 30 {
		t.Errorf("expected 30 districts, got %d", len(lex.Districts()))
	}
}

func TestCanonicalize(t *testing.T) {
	lex := Default()

	tests := []struct {
		term string
		want string
	}{
		{"tusker", "Asian Elephant"},
		{"TUSKER", "Asian Elephant"},
		{"  tiger  ", "Royal Bengal Tiger"},
		{"skins", "Animal Skin"},
		{"ivory", "Ivory"},
		{"leopard skins", "Leopard Skins"}, // unmapped, title-cased
		{"sea cucumber", "Sea Cucumber"},
	}
	for _, tt := range tests {
		if got := lex.Canonicalize(tt.term); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestDistrictForAlias(t *testing.T) {
	lex := Default()

	district, ok := lex.DistrictForAlias("Rourkela")
	if !ok || district != "Sundargarh" {
		t.Errorf("DistrictForAlias(Rourkela) = %q, %v; want Sundargarh, true", district, ok)
	}

	if _, ok := lex.DistrictForAlias("Atlantis"); ok {
		t.Error("DistrictForAlias(Atlantis) should not resolve")
	}
}

func TestIsKnownSpecies(t *testing.T) {
	lex := Default()

	if !lex.IsKnownSpecies("tiger") {
		t.Error("tiger should be a known species")
	}
	if !lex.IsKnownSpecies("Pangolin") {
		t.Error("species check should be case-insensitive")
	}
	if lex.IsKnownSpecies("unicorn") {
		t.Error("unicorn should not be a known species")
	}
}

func TestLoad_PartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `animals:
  - yeti
canonical:
  yeti: Himalayan Yeti
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Overridden section
	if got := lex.AnimalTerms(); len(got) != 1 || got[0] != "yeti" {
		t.Errorf("AnimalTerms() = %v, want [yeti]", got)
	}
	if got := lex.Canonicalize("yeti"); got != "Himalayan Yeti" {
		t.Errorf("Canonicalize(yeti) = %q", got)
	}

	// Untouched sections keep the defaults
	if len(lex.ProductTerms()) == 0 {
		t.Error("products should fall back to defaults")
	}
	if len(lex.Districts()) != 30 {
		t.Errorf("districts should fall back to defaults, got %d", len(lex.Districts()))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing lexicon file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("animals: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed lexicon file")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"leopard skins", "Leopard Skins"},
		{"TIGER", "Tiger"},
		{"elephant TUSKS", "Elephant Tusks"},
		{"", ""},
		{"  padded  ", "Padded"},
	}
	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
