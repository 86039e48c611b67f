package model

// Tier is the final traffic-light risk classification
type Tier string

const (
	TierGreen  Tier = "green"
	TierYellow Tier = "yellow"
	TierRed    Tier = "red"
)

// RiskTolerance selects the scoring weight profile
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceBalanced     RiskTolerance = "balanced"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// SubScore is one weighted component of the score breakdown
type SubScore struct {
	Score   int    `json:"score"` // 0..100
	Weight  int    `json:"weight"`
	Details string `json:"details"`
}

// DuPontFactor is a deterministic proxy score loosely modeled on trademark
// DuPont-factor analysis
type DuPontFactor struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

// DuPontFactors holds the four proxy factors
type DuPontFactors struct {
	SimilarityOfMarks DuPontFactor `json:"similarity_of_marks"`
	ChannelOverlap    DuPontFactor `json:"channel_overlap"`
	FameProxy         DuPontFactor `json:"fame_proxy"`
	IntentProxy       DuPontFactor `json:"intent_proxy"`
}

// TierThresholds documents the advisory score bands. The tier itself is
// decided by finding precedence, never by these numbers.
type TierThresholds struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
}

// ScoreBreakdown is the transparent, explainability-only scoring detail
type ScoreBreakdown struct {
	NamespaceAvailability SubScore       `json:"namespace_availability"`
	CoverageCompleteness  SubScore       `json:"coverage_completeness"`
	ConflictSeverity      SubScore       `json:"conflict_severity"`
	DomainAvailability    SubScore       `json:"domain_availability"`
	OverallScore          int            `json:"overall_score"`
	TierThresholds        TierThresholds `json:"tier_thresholds"`
	DuPontFactors         DuPontFactors  `json:"dupont_factors"`
}

// FactorWeight ranks top factors; ordering is critical > major > moderate > minor
type FactorWeight string

const (
	WeightCritical FactorWeight = "critical"
	WeightMajor    FactorWeight = "major"
	WeightModerate FactorWeight = "moderate"
	WeightMinor    FactorWeight = "minor"
)

// TopFactor is one templated statement explaining the opinion
type TopFactor struct {
	Name      string       `json:"name"`
	Statement string       `json:"statement"`
	Weight    FactorWeight `json:"weight"`
}

// NextAction is a tier-specific coaching entry
type NextAction struct {
	Action  string `json:"action"`
	Urgency string `json:"urgency"`
	URL     string `json:"url,omitempty"`
}

// Opinion is the final analysis artifact consumed by renderers
type Opinion struct {
	Tier                Tier           `json:"tier"`
	Summary             string         `json:"summary"`
	Reasons             []string       `json:"reasons"`
	Assumptions         []string       `json:"assumptions"`
	Limitations         []string       `json:"limitations"`
	RecommendedActions  []string       `json:"recommended_actions"`
	ClosestConflicts    []string       `json:"closest_conflicts"`
	ScoreBreakdown      ScoreBreakdown `json:"score_breakdown"`
	TopFactors          []TopFactor    `json:"top_factors"`
	RiskNarrative       string         `json:"risk_narrative"`
	NextActions         []NextAction   `json:"next_actions"`
	CoverageScore       int            `json:"coverage_score"`
	UncheckedNamespaces []string       `json:"unchecked_namespaces"`
	Disclaimer          string         `json:"disclaimer"`
}

// Disclaimer is attached to every opinion verbatim
const Disclaimer = "NameLens evaluates digital-namespace availability signals only. " +
	"It is not a trademark search, does not provide legal advice, and makes no " +
	"determination of what is lawful to use or register."
