// Package llm extracts structured incident data from narratives using a
// language model. The model is optional and advisory: output is filtered
// against the species whitelist, and callers fall back to the deterministic
// detector when no provider is configured or a call fails.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Extract pulls animals, location and keywords out of a narrative
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for LLM extraction
type ExtractRequest struct {
	// Narrative is the incident description to analyze
	Narrative string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the LLM's structured output, unfiltered.
type ExtractResponse struct {
	// Animals are the species and product names the model found
	Animals []string

	// Location is the model's best guess at the incident location
	Location string

	// Keywords are incident-type keywords (poaching, seizure, ...)
	Keywords []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 500,
	}
}

const systemPrompt = "You are an information extraction assistant for wildlife crime incident reports. You respond with strict JSON only, no prose and no markdown fences."

// BuildPrompt constructs the extraction prompt. The JSON schema is spelled
// out verbatim because smaller models drift without it.
func BuildPrompt(narrative string) string {
	return fmt.Sprintf(`Extract structured data from this wildlife incident description.

Description:
%s

Respond with ONLY this JSON object, nothing else:
{"animals": ["specific species or animal product names mentioned"], "location": "the most specific place name mentioned, or empty string", "keywords": ["incident type keywords such as poaching, smuggling, seizure, arrest, rescue"]}

Rules:
- List each animal once, by its common name.
- Do not include generic words like "animal" or "wildlife" in animals.
- Do not guess a location that is not in the text.`, narrative)
}

type extractionPayload struct {
	Animals  []string `json:"animals"`
	Location string   `json:"location"`
	Keywords []string `json:"keywords"`
}

// parseExtraction decodes the model's JSON reply. Markdown code fences are
// stripped first since several models wrap JSON in them despite instructions.
func parseExtraction(text string) (extractionPayload, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// Some models pad the object with commentary. Cut to the outermost braces.
	if start := strings.Index(cleaned, "{"); start > 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return extractionPayload{}, fmt.Errorf("unparseable model reply: %w", err)
	}
	return payload, nil
}
