package worker

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rpradhan/wildtrace/internal/detect"
	"github.com/rpradhan/wildtrace/internal/lexicon"
	"github.com/rpradhan/wildtrace/internal/normalize"
	"github.com/rpradhan/wildtrace/internal/pipeline"
)

func newTestAnnotator(t *testing.T) *pipeline.Annotator {
	t.Helper()
	lex := lexicon.Default()
	return pipeline.NewAnnotator(detect.NewDetector(lex), normalize.NewNormalizer(lex))
}

func TestProcessNarratives(t *testing.T) {
	b := NewBatchProcessor(newTestAnnotator(t), 4)

	narratives := []string{
		"Forest officials seized leopard skins from smugglers.",
		"A tusker carcass was found in the forest.",
		"The village fair opened on Monday.",
	}

	results := b.ProcessNarratives(context.Background(), narratives)
	if len(results) != len(narratives) {
		t.Fatalf("got %d results, want %d", len(results), len(narratives))
	}

	// Input order regardless of completion order
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if r.Narrative != narratives[i] {
			t.Errorf("result %d narrative = %q", i, r.Narrative)
		}
		if r.GetError() != nil {
			t.Errorf("result %d error: %v", i, r.GetError())
		}
	}

	if !reflect.DeepEqual(results[0].Annotation.Species, []string{"Leopard Skins"}) {
		t.Errorf("result 0 species = %v", results[0].Annotation.Species)
	}
	if !reflect.DeepEqual(results[1].Annotation.Species, []string{"Asian Elephant"}) {
		t.Errorf("result 1 species = %v", results[1].Annotation.Species)
	}
	if len(results[2].Annotation.Species) != 0 {
		t.Errorf("result 2 species = %v, want none", results[2].Annotation.Species)
	}
}

func TestProcessNarratives_Empty(t *testing.T) {
	b := NewBatchProcessor(newTestAnnotator(t), 2)

	results := b.ProcessNarratives(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadNarrativesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narratives.txt")
	content := `# comment line
Forest officials seized leopard skins.

A tusker carcass was found.

# trailing comment
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	narratives, err := ReadNarrativesFromFile(path)
	if err != nil {
		t.Fatalf("ReadNarrativesFromFile failed: %v", err)
	}
	want := []string{
		"Forest officials seized leopard skins.",
		"A tusker carcass was found.",
	}
	if !reflect.DeepEqual(narratives, want) {
		t.Errorf("narratives = %v, want %v", narratives, want)
	}
}

func TestReadNarrativesFromFile_Missing(t *testing.T) {
	if _, err := ReadNarrativesFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.txt")
	if err := os.WriteFile(path, []byte("A pangolin was rescued from traders.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBatchProcessor(newTestAnnotator(t), 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if !reflect.DeepEqual(results[0].Annotation.Species, []string{"Pangolin"}) {
		t.Errorf("species = %v", results[0].Annotation.Species)
	}
}
