// Package llm generates an optional prose note about a finished report.
// The note is commentary only: it is produced after the opinion is final
// and can never change a tier, a score or a finding.
package llm

import (
	"context"
	"fmt"

	"github.com/namelens/namelens/internal/model"
)

// Provider is one LLM backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Annotate writes a short note about the report
	Annotate(ctx context.Context, req NoteRequest) (*NoteResponse, error)

	// IsAvailable checks that the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// NoteRequest is the input for note generation
type NoteRequest struct {
	// Report is the finished analysis, opinion included
	Report model.Report

	// Model overrides the configured model when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// NoteResponse is the generated note plus usage metadata
type NoteResponse struct {
	NoteMD     string
	Model      string
	TokensUsed int
}

// BuildPrompt renders the report facts the note may draw on. The prompt
// forbids new claims so the note stays a restatement, not a re-scoring.
func BuildPrompt(report model.Report) string {
	opinion := report.Opinion

	prompt := fmt.Sprintf(`You are writing a short note about a name-collision analysis for the candidate name %q.

RULES:
1. The verdict below is final. Do not second-guess the tier or the scores.
2. Only restate facts listed here. Do not invent registries, owners or conflicts.
3. If the evidence is thin, say so plainly.
4. Write 3-4 sentences of markdown, no headings.

Verdict: %s
Summary: %s
Overall score: %d/100
`, report.CandidateMark, opinion.Tier, opinion.Summary, opinion.ScoreBreakdown.OverallScore)

	for i, reason := range opinion.Reasons {
		if i >= 5 {
			break
		}
		prompt += fmt.Sprintf("- %s\n", reason)
	}

	if len(opinion.ClosestConflicts) > 0 {
		prompt += "\nClosest conflicts:\n"
		for _, conflict := range opinion.ClosestConflicts {
			prompt += fmt.Sprintf("- %s\n", conflict)
		}
	}

	return prompt
}
