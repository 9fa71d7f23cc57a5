package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestOllamaExtract(t *testing.T) {
	var gotReq ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        `{"animals": ["Tiger"], "location": "Similipal", "keywords": ["poaching"]}`,
			Done:            true,
			PromptEvalCount: 100,
			EvalCount:       25,
		})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	resp, err := p.Extract(context.Background(), ExtractRequest{Narrative: "A tiger was poached in Similipal."})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !reflect.DeepEqual(resp.Animals, []string{"Tiger"}) {
		t.Errorf("Animals = %v", resp.Animals)
	}
	if resp.Location != "Similipal" {
		t.Errorf("Location = %q", resp.Location)
	}
	if resp.TokensUsed != 125 {
		t.Errorf("TokensUsed = %d, want 125", resp.TokensUsed)
	}

	if gotReq.Format != "json" {
		t.Errorf("request Format = %q, want json", gotReq.Format)
	}
	if gotReq.Stream {
		t.Error("request must not stream")
	}
	if gotReq.Options.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", gotReq.Options.Temperature)
	}
}

func TestOllamaExtract_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing"})
	if _, err := p.Extract(context.Background(), ExtractRequest{Narrative: "n"}); err == nil {
		t.Error("expected API error")
	}
}

func TestOllamaExtract_RequiresModel(t *testing.T) {
	p, _ := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if _, err := p.Extract(context.Background(), ExtractRequest{Narrative: "n"}); err == nil {
		t.Error("expected error when no model is configured")
	}
}

func TestOllamaIsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: server.URL})
	if !p.IsAvailable(context.Background()) {
		t.Error("expected provider to be available")
	}

	server.Close()
	if p.IsAvailable(context.Background()) {
		t.Error("expected provider to be unavailable after shutdown")
	}
}
