package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpradhan/wildtrace/internal/model"
	"github.com/rpradhan/wildtrace/internal/pipeline"
)

// AnnotateJob annotates one narrative.
type AnnotateJob struct {
	Index     int
	Narrative string
	Annotator *pipeline.Annotator
}

// Execute runs the annotation pipeline on the narrative.
func (j *AnnotateJob) Execute(ctx context.Context) Result {
	return &AnnotateResult{
		Index:      j.Index,
		Narrative:  j.Narrative,
		Annotation: j.Annotator.Annotate(ctx, j.Narrative),
	}
}

// AnnotateResult pairs a narrative with its annotation.
type AnnotateResult struct {
	Index      int
	Narrative  string
	Annotation model.Annotation
	Error      error
}

// GetError returns the error from the annotate result
func (r *AnnotateResult) GetError() error {
	return r.Error
}

// BatchProcessor annotates many narratives concurrently.
type BatchProcessor struct {
	annotator   *pipeline.Annotator
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(annotator *pipeline.Annotator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		annotator:   annotator,
		concurrency: concurrency,
	}
}

// ProcessNarratives annotates the narratives concurrently. Results come
// back in input order regardless of completion order.
func (b *BatchProcessor) ProcessNarratives(ctx context.Context, narratives []string) []*AnnotateResult {
	if len(narratives) == 0 {
		return []*AnnotateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, narrative := range narratives {
		pool.Submit(&AnnotateJob{
			Index:     i,
			Narrative: narrative,
			Annotator: b.annotator,
		})
	}

	results := pool.Wait()

	annotated := make([]*AnnotateResult, 0, len(results))
	for _, result := range results {
		annotated = append(annotated, result.(*AnnotateResult))
	}
	sort.Slice(annotated, func(i, j int) bool {
		return annotated[i].Index < annotated[j].Index
	})
	return annotated
}

// ProcessFile annotates narratives read from a file, one per line.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnnotateResult, error) {
	narratives, err := ReadNarrativesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read narratives: %w", err)
	}
	return b.ProcessNarratives(ctx, narratives), nil
}

// ReadNarrativesFromFile reads one narrative per line, skipping blanks and
// comment lines.
func ReadNarrativesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var narratives []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		narratives = append(narratives, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return narratives, nil
}
