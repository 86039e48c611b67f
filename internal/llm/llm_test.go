package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/namelens/namelens/internal/model"
)

func TestNewProvider_EmptyIsDisabled(t *testing.T) {
	provider, err := NewProvider(model.LLMConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("empty provider name should disable the feature")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(model.LLMConfig{Provider: "crystal-ball"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(model.LLMConfig{Provider: "openai"}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestBuildPrompt_ContainsVerdict(t *testing.T) {
	report := model.Report{
		CandidateMark: "tool",
		Opinion: model.Opinion{
			Tier:    model.TierRed,
			Summary: `"tool" carries blocking collision risk`,
			Reasons: []string{"1 exact conflict(s): the name is already registered"},
			ScoreBreakdown: model.ScoreBreakdown{
				OverallScore: 32,
			},
			ClosestConflicts: []string{`"tool" is already taken on npm (score 100)`},
		},
	}

	prompt := BuildPrompt(report)
	for _, want := range []string{"red", "32/100", "exact conflict", "already taken on npm", "final"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

type fakeProvider struct {
	resp *NoteResponse
	err  error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }
func (f *fakeProvider) Annotate(ctx context.Context, req NoteRequest) (*NoteResponse, error) {
	return f.resp, f.err
}

func TestGenerateNote_NilProvider(t *testing.T) {
	if note := GenerateNote(context.Background(), nil, model.Report{}, 0); note != nil {
		t.Error("nil provider should produce no note")
	}
}

func TestGenerateNote_Success(t *testing.T) {
	provider := &fakeProvider{resp: &NoteResponse{NoteMD: "looks risky", Model: "m1"}}
	note := GenerateNote(context.Background(), provider, model.Report{}, 100)

	if note == nil || !note.Enabled {
		t.Fatal("expected enabled note")
	}
	if note.NoteMD != "looks risky" || note.Model != "m1" || note.Provider != "fake" {
		t.Errorf("note = %+v", note)
	}
}

func TestGenerateNote_FailureDegrades(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	note := GenerateNote(context.Background(), provider, model.Report{}, 100)

	if note == nil {
		t.Fatal("failure should still return a note shell")
	}
	if note.NoteMD != "" {
		t.Error("failed generation should leave the note empty")
	}
	if len(note.Warnings) != 1 || !strings.Contains(note.Warnings[0], "quota exceeded") {
		t.Errorf("warnings = %v", note.Warnings)
	}
}
