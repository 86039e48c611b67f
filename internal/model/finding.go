package model

// FindingKind classifies a derived conflict or risk
type FindingKind string

const (
	FindingExactConflict    FindingKind = "exact_conflict"    // Authoritative taken result
	FindingPhoneticConflict FindingKind = "phonetic_conflict" // Sounds-alike collision
	FindingConfusableRisk   FindingKind = "confusable_risk"   // Homoglyph exposure with taken namespaces
	FindingNearConflict     FindingKind = "near_conflict"     // Looks-alike collision below phonetic bar
	FindingVariantTaken     FindingKind = "variant_taken"     // Typo-variant already registered
	FindingCoverageGap      FindingKind = "coverage_gap"      // Core namespace never checked
)

// Severity grades findings
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Finding is a classified, severity-tagged conflict derived from checks and
// variants. Recomputed every run, never mutated.
type Finding struct {
	ID            string      `json:"id"`
	CandidateMark string      `json:"candidate_mark"`
	Kind          FindingKind `json:"kind"`
	Summary       string      `json:"summary"`
	Severity      Severity    `json:"severity"`
	Score         int         `json:"score"` // 0..100
	Why           []string    `json:"why,omitempty"`
	EvidenceRefs  []string    `json:"evidence_refs,omitempty"`
}
