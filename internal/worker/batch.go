package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

// Analyzer runs the full collision analysis for one candidate name
type Analyzer interface {
	AnalyzeName(ctx context.Context, name string) (*model.Report, error)
}

// NameJob analyzes one candidate name
type NameJob struct {
	Name     string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *NameJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeName(ctx, j.Name)
	return &NameResult{
		Name:   j.Name,
		Report: report,
		Error:  err,
	}
}

// NameResult holds the outcome for one candidate
type NameResult struct {
	Name   string
	Report *model.Report
	Error  error
}

// GetError returns the analysis error, if any
func (r *NameResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes a list of candidate names concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessNames analyzes the given names concurrently. Results come back in
// completion order; callers that need input order must sort by Name.
func (b *BatchProcessor) ProcessNames(ctx context.Context, names []string) []*NameResult {
	if len(names) == 0 {
		return []*NameResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, name := range names {
		pool.Submit(&NameJob{
			Name:     name,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	nameResults := make([]*NameResult, len(results))
	for i, result := range results {
		nameResults[i] = result.(*NameResult)
	}

	return nameResults
}

// ProcessFile reads candidate names from a file and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*NameResult, error) {
	names, err := ReadNamesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}

	return b.ProcessNames(ctx, names), nil
}

// ReadNamesFromFile reads candidate names from a file, one per line.
// Blank lines and #-comments are skipped, duplicates dropped.
func ReadNamesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var names []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			names = append(names, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return names, nil
}
