package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

// NewProvider creates the configured provider. An empty provider name
// returns (nil, nil): the note feature is off by default.
func NewProvider(config model.LLMConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// GenerateNote runs the provider against a finished report and wraps the
// outcome. Failures degrade to a disabled note with a warning; the report
// itself is already complete by the time this runs.
func GenerateNote(ctx context.Context, provider Provider, report model.Report, maxTokens int) *model.LLMNote {
	if provider == nil {
		return nil
	}

	note := &model.LLMNote{
		Enabled:  true,
		Provider: provider.Name(),
	}

	resp, err := provider.Annotate(ctx, NoteRequest{Report: report, MaxTokens: maxTokens})
	if err != nil {
		note.Warnings = append(note.Warnings, fmt.Sprintf("note generation failed: %v", err))
		return note
	}

	note.Model = resp.Model
	note.NoteMD = resp.NoteMD
	return note
}
