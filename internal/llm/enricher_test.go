package llm

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/rpradhan/wildtrace/internal/cache"
	"github.com/rpradhan/wildtrace/internal/lexicon"
	"github.com/rpradhan/wildtrace/internal/normalize"
)

type fakeProvider struct {
	resp  *ExtractResponse
	err   error
	calls int
}

func (f *fakeProvider) Name() string                        { return "fake" }
func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeProvider) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestEnricher(p Provider, c cache.Cache) *Enricher {
	return NewEnricher(p, c, normalize.NewNormalizer(lexicon.Default()))
}

func TestEnrich_FiltersAndNormalizes(t *testing.T) {
	provider := &fakeProvider{resp: &ExtractResponse{
		Animals:  []string{"Tiger", "wildlife", "made-up beast"},
		Location: "Rourkela",
		Keywords: []string{"poaching"},
	}}
	e := newTestEnricher(provider, nil)

	got, err := e.Enrich(context.Background(), "narrative")
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if !reflect.DeepEqual(got.Animals, []string{"Tiger"}) {
		t.Errorf("Animals = %v, want [Tiger]", got.Animals)
	}
	if got.Location != "Sundargarh" {
		t.Errorf("Location = %q, want Sundargarh", got.Location)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"poaching"}) {
		t.Errorf("Keywords = %v", got.Keywords)
	}
}

func TestEnrich_CacheHitSkipsProvider(t *testing.T) {
	provider := &fakeProvider{resp: &ExtractResponse{Animals: []string{"Pangolin"}}}
	e := newTestEnricher(provider, cache.NewMemoryCache(time.Minute, time.Minute))

	first, err := e.Enrich(context.Background(), "same narrative")
	if err != nil {
		t.Fatalf("first Enrich failed: %v", err)
	}
	second, err := e.Enrich(context.Background(), "same narrative")
	if err != nil {
		t.Fatalf("second Enrich failed: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestEnrich_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("rate limited")}
	e := newTestEnricher(provider, nil)

	if _, err := e.Enrich(context.Background(), "n"); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestEnrich_NoProvider(t *testing.T) {
	e := newTestEnricher(nil, nil)

	if _, err := e.Enrich(context.Background(), "n"); err == nil {
		t.Error("expected error without a provider")
	}
}

func TestEnrich_CorruptCacheEntry(t *testing.T) {
	provider := &fakeProvider{resp: &ExtractResponse{Animals: []string{"Leopard"}}}
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	e := newTestEnricher(provider, c)

	key := cache.NarrativeKey("fake", "n")
	_ = c.Set(key, []byte("not json"), time.Minute)

	got, err := e.Enrich(context.Background(), "n")
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("corrupt entry should force a provider call, got %d calls", provider.calls)
	}
	if !reflect.DeepEqual(got.Animals, []string{"Leopard"}) {
		t.Errorf("Animals = %v", got.Animals)
	}
}
