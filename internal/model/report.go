package model

import "time"

// Report is the complete NameLens analysis artifact for one candidate.
// The Opinion inside it is fully deterministic given the same inputs; the
// envelope carries run metadata only.
type Report struct {
	CandidateMark string    `json:"candidate_mark"`
	CheckedAt     time.Time `json:"checked_at"`

	Variants VariantSet       `json:"variants"`
	Checks   []NamespaceCheck `json:"checks"`
	Findings []Finding        `json:"findings"`
	Opinion  Opinion          `json:"opinion"`

	LLM *LLMNote `json:"llm,omitempty"` // Optional commentary, never affects the opinion
}

// LLMNote contains optional LLM-generated naming commentary.
// CRITICAL: this never affects classification or scoring and is clearly
// separated from the deterministic opinion.
type LLMNote struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	NoteMD   string   `json:"note_md,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
