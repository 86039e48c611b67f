package model

// CheckStatus is the normalized availability signal for one namespace lookup
type CheckStatus string

const (
	StatusAvailable CheckStatus = "available" // Name is free to claim
	StatusTaken     CheckStatus = "taken"     // Name is already registered
	StatusUnknown   CheckStatus = "unknown"   // Lookup failed or was ambiguous
)

// Authority classifies how trustworthy a check result is
type Authority string

const (
	AuthorityAuthoritative Authority = "authoritative" // Direct registry lookup
	AuthorityIndicative    Authority = "indicative"    // Cross-ecosystem search signal
)

// Namespace identifiers shared by adapters, coverage math and reports
const (
	NamespaceGitHub      = "github_repo"
	NamespaceNPM         = "npm"
	NamespacePyPI        = "pypi"
	NamespaceDomain      = "domain"
	NamespaceCrates      = "crates"
	NamespaceDockerHub   = "dockerhub"
	NamespaceHuggingFace = "huggingface"
	NamespaceWeb         = "web"
)

// CoreNamespaces are the registries that count toward coverage completeness
var CoreNamespaces = []string{NamespaceGitHub, NamespaceNPM, NamespacePyPI, NamespaceDomain}

// CheckQuery records what was actually asked of a registry
type CheckQuery struct {
	CandidateMark string `json:"candidate_mark"`      // The name under analysis
	Value         string `json:"value"`               // The exact string queried (may be a variant)
	IsVariant     bool   `json:"is_variant,omitempty"` // True for fuzzy-variant probes
}

// NamespaceCheck is the normalized result of one namespace lookup.
// Adapters produce these; the core never performs the lookup itself.
type NamespaceCheck struct {
	Namespace   string            `json:"namespace"`
	Query       CheckQuery        `json:"query"`
	Status      CheckStatus       `json:"status"`
	Authority   Authority         `json:"authority"`
	Details     string            `json:"details,omitempty"`
	Similarity  *SimilarityResult `json:"similarity,omitempty"` // Present on indicative search hits
	EvidenceRef string            `json:"evidence_ref,omitempty"`
}

// Mark returns the candidate mark, defaulting when upstream omitted it
func (c NamespaceCheck) Mark() string {
	if c.Query.CandidateMark == "" {
		return "unknown"
	}
	return c.Query.CandidateMark
}

// SimilarityAxis is one axis of a pairwise comparison
type SimilarityAxis struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// SimilarityResult is the pure comparison output between two name strings
type SimilarityResult struct {
	Looks   SimilarityAxis `json:"looks"`
	Sounds  SimilarityAxis `json:"sounds"`
	Overall float64        `json:"overall"`
	Why     []string       `json:"why"`
}

// CorpusEntry is an offline known mark used for similarity comparison
type CorpusEntry struct {
	Mark       string `json:"mark" yaml:"mark"`
	Class      string `json:"class,omitempty" yaml:"class,omitempty"`
	Registrant string `json:"registrant,omitempty" yaml:"registrant,omitempty"`
}
