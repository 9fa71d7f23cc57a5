// Package pipeline wires the annotation stages together: deterministic
// entity detection, tag assignment, location normalization and the optional
// LLM enrichment pass.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rpradhan/wildtrace/internal/detect"
	"github.com/rpradhan/wildtrace/internal/llm"
	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/normalize"
	"github.com/rpradhan/wildtrace/internal/tags"
)

// Annotator runs a narrative through the full annotation pipeline.
type Annotator struct {
	detector *detect.Detector
	tagger   *tags.Assigner
	norm     *normalize.Normalizer
	enricher *llm.Enricher

	verbose bool
	errOut  io.Writer
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithEnricher enables the LLM enrichment pass.
func WithEnricher(e *llm.Enricher) Option {
	return func(a *Annotator) { a.enricher = e }
}

// WithVerbose enables progress output on stderr.
func WithVerbose(verbose bool) Option {
	return func(a *Annotator) { a.verbose = verbose }
}

// NewAnnotator creates an annotator over the given detector and normalizer.
func NewAnnotator(detector *detect.Detector, norm *normalize.Normalizer, opts ...Option) *Annotator {
	a := &Annotator{
		detector: detector,
		tagger:   tags.NewAssigner(),
		norm:     norm,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate produces an annotation for a narrative. The deterministic
// detector always runs; when an enricher is configured its output is
// preferred, and any enrichment failure falls back to the detector result
// rather than failing the annotation.
func (a *Annotator) Annotate(ctx context.Context, narrative string) model.Annotation {
	species := a.detector.Detect(narrative)

	annotation := model.Annotation{Species: species}

	if a.enricher != nil {
		enrichment, err := a.enricher.Enrich(ctx, narrative)
		if err != nil {
			if a.verbose {
				fmt.Fprintf(a.errOut, "enrichment failed, using detector output: %v\n", err)
			}
		} else {
			if len(enrichment.Animals) > 0 {
				annotation.Species = enrichment.Animals
			}
			annotation.District = enrichment.Location
			annotation.Enriched = true
		}
	}

	annotation.Tags = a.tagger.Assign(model.Incident{
		Description: narrative,
		Species:     annotation.Species,
		District:    annotation.District,
	})

	if a.verbose {
		fmt.Fprintf(a.errOut, "annotated: %d species, %d tags\n",
			len(annotation.Species), len(annotation.Tags))
	}
	return annotation
}

// AnnotateIncident fills the derived fields of an incident. Hand-entered
// species, tags or district are preserved; only empty fields are populated.
func (a *Annotator) AnnotateIncident(ctx context.Context, inc model.Incident) model.Incident {
	annotation := a.Annotate(ctx, inc.Description)

	if len(inc.Species) == 0 {
		inc.Species = annotation.Species
	}
	if len(inc.Tags) == 0 {
		inc.Tags = annotation.Tags
	}
	if inc.District == "" && annotation.District != "" {
		inc.District = a.norm.Location(annotation.District)
	}
	return inc
}
