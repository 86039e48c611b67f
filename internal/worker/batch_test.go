package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/namelens/namelens/internal/model"
)

type mockAnalyzer struct {
	shouldError bool
}

func (m *mockAnalyzer) AnalyzeName(ctx context.Context, name string) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond)
	if m.shouldError {
		return nil, errors.New("analysis error")
	}
	return &model.Report{CandidateMark: name}, nil
}

func TestBatchProcessor_ProcessNames(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	names := []string{"tool", "fastcache", "silo"}
	results := processor.ProcessNames(context.Background(), names)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Name, res.Error)
		}
		if res.Report == nil || res.Report.CandidateMark != res.Name {
			t.Errorf("report missing or mismatched for %s", res.Name)
		}
	}
}

func TestBatchProcessor_LongShortlist(t *testing.T) {
	concurrency := 4
	processor := NewBatchProcessor(&mockAnalyzer{}, concurrency)

	// Well past the pool's channel capacity at this concurrency
	names := make([]string, 40)
	for i := range names {
		names[i] = fmt.Sprintf("candidate-%02d", i)
	}

	done := make(chan []*NameResult, 1)
	go func() {
		done <- processor.ProcessNames(context.Background(), names)
	}()

	select {
	case results := <-done:
		if len(results) != len(names) {
			t.Fatalf("expected %d results, got %d", len(names), len(results))
		}
	case <-time.After(10 * time.Second):
		t.Fatal("batch stalled on a shortlist longer than the pool buffers")
	}
}

func TestBatchProcessor_ProcessNames_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{shouldError: true}, 2)

	results := processor.ProcessNames(context.Background(), []string{"tool"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessNames_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	results := processor.ProcessNames(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadNamesFromFile(t *testing.T) {
	content := `tool
# shortlist from the naming session
fastcache

silo   `

	tmpfile, err := os.CreateTemp("", "names")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	names, err := ReadNamesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadNamesFromFile failed: %v", err)
	}

	expected := []string{"tool", "fastcache", "silo"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, name)
		}
	}
}

func TestReadNamesFromFile_Deduplication(t *testing.T) {
	content := "tool\ntool\n"

	tmpfile, err := os.CreateTemp("", "names_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	names, err := ReadNamesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadNamesFromFile failed: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("expected 1 name after deduplication, got %d", len(names))
	}
}

func TestReadNamesFromFile_NonExistent(t *testing.T) {
	if _, err := ReadNamesFromFile("no_such_file.txt"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "tool\nfastcache\n# comment\n\nsilo\n"

	tmpfile, err := os.CreateTemp("", "batch_names")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockAnalyzer{}, 2)
	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)
	if _, err := processor.ProcessFile(context.Background(), "no_such_file.txt"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestNameResult_GetError(t *testing.T) {
	r1 := &NameResult{Name: "tool"}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("analysis failed")
	r2 := &NameResult{Name: "tool", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}
