// Package cache stores expensive enrichment results: LLM responses keyed by
// narrative text and fetched article bodies keyed by URL. Entries are opaque
// bytes; callers decide the encoding.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the store shared by the memory, disk and layered backends.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// NarrativeKey derives a stable key for an enrichment of the given narrative
// by the given model. The model name is part of the key so switching models
// never serves stale annotations.
func NarrativeKey(model, narrative string) string {
	return key("enrich:" + model + ":" + narrative)
}

// PageKey derives a stable key for a fetched article URL.
func PageKey(url string) string {
	return key("page:" + url)
}

func key(s string) string {
	sum := sha256.Sum256([]byte(s))
	return "wildtrace:v1:" + hex.EncodeToString(sum[:])
}
