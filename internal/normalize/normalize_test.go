package normalize

import (
	"reflect"
	"testing"

	"github.com/rpradhan/wildtrace/internal/lexicon"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return NewNormalizer(lexicon.Default())
}

func TestLocation(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		in   string
		want string
	}{
		{"Rourkela", "Sundargarh"},          // exact alias
		{"Angul", "Angul"},                  // exact district
		{"angul district", "Angul"},         // district contained in input
		{"near Rourkela town", "Sundargarh"}, // alias contained in input
		{"Keonjhar", "Kendujhar"},           // spelling variant alias
		{"Random City", "Random City"},      // unmatched, title-cased
		{"", ""},
	}
	for _, tt := range tests {
		if got := n.Location(tt.in); got != tt.want {
			t.Errorf("Location(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompoundPhrase(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		in   string
		want string
	}{
		{"tiger skin", "Tiger"},
		{"pangolin scales", "Pangolin"},
		{"elephant tusks", "Elephant"},
		{"tiger", "tiger"},                 // no product indicator, unchanged
		{"animal skin", "animal skin"},     // generic species rejected
		{"mystery hide", "mystery hide"},   // unknown species rejected
		{"Leopard Skins", "Leopard"},
	}
	for _, tt := range tests {
		if got := n.CompoundPhrase(tt.in); got != tt.want {
			t.Errorf("CompoundPhrase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterSpecies(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.FilterSpecies([]string{
		"Wildlife",    // generic, dropped
		"tiger skins", // compound, reduced to species
		"Leopard",     // kept
		"leopard",     // duplicate after normalization
		"tigers",      // singularized, duplicate of the compound result
		"unknownium",  // not whitelisted, dropped
		"",
	})
	want := []string{"Tiger", "Leopard"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterSpecies() = %v, want %v", got, want)
	}
}

func TestSpecies(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"turtle", "Turtles"},
		{"Sea Turtle", "Turtles"},
		{"tortoise", "Turtles"},
		{"Indian Flapshell Turtle", "Turtles"},
		{"tusker", "Elephants"},
		{"Asian Elephant", "Elephants"},
		{"elephant skin", "Elephant Skin"}, // product, not the animal group
		{"leopard", "Leopards"},
		{"leopard skin", "Leopard Skin"},
		{"Royal Bengal Tiger", "Tigers"},
		{"tusks", "Ivory"},
		{"civet", "Civet"}, // ungrouped, title-cased
		{"", ""},
	}
	for _, tt := range tests {
		if got := Species(tt.in); got != tt.want {
			t.Errorf("Species(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	if got := Location("Rourkela"); got != "Sundargarh" {
		t.Errorf("Location(Rourkela) = %q", got)
	}
	if got := CompoundPhrase("tiger skin"); got != "Tiger" {
		t.Errorf("CompoundPhrase(tiger skin) = %q", got)
	}
}
