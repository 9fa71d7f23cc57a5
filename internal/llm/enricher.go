package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpradhan/wildtrace/internal/cache"
	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/normalize"
)

// Enricher wraps a provider with response caching and post-filtering. Model
// output is never trusted raw: animals are filtered against the species
// whitelist and the location is normalized onto the district gazetteer.
type Enricher struct {
	provider Provider
	cache    cache.Cache
	norm     *normalize.Normalizer
}

// NewEnricher creates an enricher. The cache may be nil to disable caching.
func NewEnricher(provider Provider, c cache.Cache, norm *normalize.Normalizer) *Enricher {
	return &Enricher{provider: provider, cache: c, norm: norm}
}

// Enrich extracts structured data from a narrative through the provider.
// Identical narratives hit the cache instead of the API.
func (e *Enricher) Enrich(ctx context.Context, narrative string) (model.Enrichment, error) {
	if e.provider == nil {
		return model.Enrichment{}, fmt.Errorf("no LLM provider configured")
	}

	key := cache.NarrativeKey(e.provider.Name(), narrative)
	if e.cache != nil {
		if data, found := e.cache.Get(key); found {
			var enrichment model.Enrichment
			if err := json.Unmarshal(data, &enrichment); err == nil {
				return enrichment, nil
			}
			// Corrupt entry; fall through to a fresh call
			_ = e.cache.Delete(key)
		}
	}

	resp, err := e.provider.Extract(ctx, ExtractRequest{Narrative: narrative})
	if err != nil {
		return model.Enrichment{}, fmt.Errorf("extract via %s: %w", e.provider.Name(), err)
	}

	enrichment := model.Enrichment{
		Animals:  e.norm.FilterSpecies(resp.Animals),
		Keywords: resp.Keywords,
	}
	if resp.Location != "" {
		enrichment.Location = e.norm.Location(resp.Location)
	}

	if e.cache != nil {
		if data, err := json.Marshal(enrichment); err == nil {
			_ = e.cache.Set(key, data, 0)
		}
	}
	return enrichment, nil
}
