package model

// VariantKind labels one rendered form of a candidate name
type VariantKind string

const (
	VariantOriginal      VariantKind = "original"
	VariantLower         VariantKind = "lower"
	VariantNoSpace       VariantKind = "nospace"
	VariantHyphenated    VariantKind = "hyphenated"
	VariantUnderscored   VariantKind = "underscored"
	VariantStripped      VariantKind = "stripped" // Punctuation removed entirely
	VariantPhonetic      VariantKind = "phonetic"
	VariantHomoglyphSafe VariantKind = "homoglyph-safe"
)

// VariantForm is one concrete spelling of the candidate
type VariantForm struct {
	Kind  VariantKind `json:"kind"`
	Value string      `json:"value"`
}

// WarningSeverity grades variant-level warnings
type WarningSeverity string

const (
	WarningHigh WarningSeverity = "high"
	WarningWarn WarningSeverity = "warn"
)

// Warning codes
const (
	WarnHomoglyphRisk = "homoglyph_risk"
)

// Warning flags a risk discovered while generating variants
type Warning struct {
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Severity WarningSeverity `json:"severity"`
}

// VariantSet holds every derived form of one candidate. Produced once,
// never mutated.
type VariantSet struct {
	CandidateMark string        `json:"candidate_mark"`
	Canonical     string        `json:"canonical"`
	Forms         []VariantForm `json:"forms"`
	Warnings      []Warning     `json:"warnings,omitempty"`
}
