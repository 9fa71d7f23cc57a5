package model

import "time"

// Incident represents one logged wildlife-crime incident
type Incident struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date,omitempty"`     // ISO date (YYYY-MM-DD) when known
	District    string    `json:"district,omitempty"` // Normalized administrative district
	Description string    `json:"description"`        // Free-text narrative
	Source      string    `json:"source,omitempty"`   // Report source (publication, URL, upload)
	Species     []string  `json:"species,omitempty"`  // Canonical labels from entity extraction
	Tags        []string  `json:"tags,omitempty"`     // Assigned incident tags
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Annotation holds the derived attributes for one narrative
type Annotation struct {
	Species  []string `json:"species"`            // Canonical, deduplicated entity labels
	Tags     []string `json:"tags,omitempty"`     // Incident category tags
	District string   `json:"district,omitempty"` // Normalized location (if a location was supplied)
	Enriched bool     `json:"enriched"`           // Whether an LLM pass contributed
}

// Enrichment is the structured output of an LLM entity-extraction call.
// Values are advisory and always post-filtered before use.
type Enrichment struct {
	Animals  []string `json:"animals"`
	Location string   `json:"location,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}
