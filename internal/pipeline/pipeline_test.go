package pipeline

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/rpradhan/wildtrace/internal/detect"
	"github.com/rpradhan/wildtrace/internal/lexicon"
	"github.com/rpradhan/wildtrace/internal/llm"
	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/normalize"
)

type stubProvider struct {
	resp *llm.ExtractResponse
	err  error
}

func (s *stubProvider) Name() string                         { return "stub" }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (s *stubProvider) Extract(ctx context.Context, req llm.ExtractRequest) (*llm.ExtractResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newAnnotator(t *testing.T, opts ...Option) *Annotator {
	t.Helper()
	lex := lexicon.Default()
	return NewAnnotator(detect.NewDetector(lex), normalize.NewNormalizer(lex), opts...)
}

func enricherFor(p llm.Provider) *llm.Enricher {
	return llm.NewEnricher(p, nil, normalize.NewNormalizer(lexicon.Default()))
}

func TestAnnotate_DetectorOnly(t *testing.T) {
	a := newAnnotator(t)

	got := a.Annotate(context.Background(), "Forest officials seized leopard skins from smugglers.")

	if !reflect.DeepEqual(got.Species, []string{"Leopard Skins"}) {
		t.Errorf("Species = %v", got.Species)
	}
	if got.Enriched {
		t.Error("Enriched must be false without an enricher")
	}
	if len(got.Tags) == 0 {
		t.Error("expected tags for a seizure narrative")
	}
	if got.District != "" {
		t.Errorf("District = %q, want empty", got.District)
	}
}

func TestAnnotate_EnrichmentOverridesSpecies(t *testing.T) {
	provider := &stubProvider{resp: &llm.ExtractResponse{
		Animals:  []string{"Tiger"},
		Location: "Rourkela",
	}}
	a := newAnnotator(t, WithEnricher(enricherFor(provider)))

	got := a.Annotate(context.Background(), "Forest officials seized leopard skins from smugglers.")

	if !reflect.DeepEqual(got.Species, []string{"Tiger"}) {
		t.Errorf("Species = %v, want enrichment output", got.Species)
	}
	if got.District != "Sundargarh" {
		t.Errorf("District = %q, want Sundargarh", got.District)
	}
	if !got.Enriched {
		t.Error("Enriched must be true after a successful enrichment")
	}
}

func TestAnnotate_EnrichmentKeepsDetectorWhenEmpty(t *testing.T) {
	// The model found nothing usable; the detector result stands.
	provider := &stubProvider{resp: &llm.ExtractResponse{Animals: []string{"wildlife"}}}
	a := newAnnotator(t, WithEnricher(enricherFor(provider)))

	got := a.Annotate(context.Background(), "Forest officials seized leopard skins from smugglers.")

	if !reflect.DeepEqual(got.Species, []string{"Leopard Skins"}) {
		t.Errorf("Species = %v, want detector output", got.Species)
	}
	if !got.Enriched {
		t.Error("Enriched should still be true; the call succeeded")
	}
}

func TestAnnotate_EnrichmentFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("timeout")}
	a := newAnnotator(t, WithEnricher(enricherFor(provider)))

	got := a.Annotate(context.Background(), "Forest officials seized leopard skins from smugglers.")

	if !reflect.DeepEqual(got.Species, []string{"Leopard Skins"}) {
		t.Errorf("Species = %v, want detector fallback", got.Species)
	}
	if got.Enriched {
		t.Error("Enriched must be false when enrichment fails")
	}
}

func TestAnnotateIncident_FillsEmptyFields(t *testing.T) {
	a := newAnnotator(t)

	inc := a.AnnotateIncident(context.Background(), model.Incident{
		Description: "A tusker carcass was found in the forest.",
	})

	if !reflect.DeepEqual(inc.Species, []string{"Asian Elephant"}) {
		t.Errorf("Species = %v", inc.Species)
	}
	if len(inc.Tags) == 0 {
		t.Error("expected tags to be filled")
	}
}

func TestAnnotateIncident_PreservesHandEnteredFields(t *testing.T) {
	a := newAnnotator(t)

	inc := a.AnnotateIncident(context.Background(), model.Incident{
		Description: "A tusker carcass was found in the forest.",
		Species:     []string{"Indian Bison"},
		Tags:        []string{"Animal Killing"},
		District:    "Angul",
	})

	if !reflect.DeepEqual(inc.Species, []string{"Indian Bison"}) {
		t.Errorf("hand-entered species overwritten: %v", inc.Species)
	}
	if !reflect.DeepEqual(inc.Tags, []string{"Animal Killing"}) {
		t.Errorf("hand-entered tags overwritten: %v", inc.Tags)
	}
	if inc.District != "Angul" {
		t.Errorf("hand-entered district overwritten: %q", inc.District)
	}
}
