package score

import (
	"fmt"
	"sort"

	"github.com/namelens/namelens/internal/model"
)

// weightProfile is one risk-tolerance weighting; the four weights sum to 100
type weightProfile struct {
	availability int
	coverage     int
	conflict     int
	domain       int
}

// weightProfiles keys every supported tolerance. Aggressive skews more
// weight to raw availability.
var weightProfiles = map[model.RiskTolerance]weightProfile{
	model.ToleranceConservative: {availability: 20, coverage: 25, conflict: 40, domain: 15},
	model.ToleranceBalanced:     {availability: 30, coverage: 20, conflict: 35, domain: 15},
	model.ToleranceAggressive:   {availability: 45, coverage: 15, conflict: 25, domain: 15},
}

// conflict deductions per finding kind
var conflictDeductions = map[model.FindingKind]int{
	model.FindingExactConflict:    30,
	model.FindingPhoneticConflict: 20,
	model.FindingConfusableRisk:   10,
	model.FindingNearConflict:     5,
	model.FindingVariantTaken:     5,
}

// Profile exposes the four weights of a tolerance for validation and display
func Profile(t model.RiskTolerance) (availability, coverage, conflict, domain int) {
	p, ok := weightProfiles[t]
	if !ok {
		p = weightProfiles[model.ToleranceConservative]
	}
	return p.availability, p.coverage, p.conflict, p.domain
}

// buildBreakdown computes the explainability-only score detail. It never
// overrides the tier.
func buildBreakdown(checks []model.NamespaceCheck, findings []model.Finding, t tally, opts Options) model.ScoreBreakdown {
	p, ok := weightProfiles[opts.Tolerance]
	if !ok {
		p = weightProfiles[model.ToleranceConservative]
	}

	availability := availabilityScore(checks)
	coverage := coverageScore(checks)
	conflict := conflictScore(findings)
	domain := domainScore(checks)

	weighted := availability.Score*p.availability + coverage.Score*p.coverage +
		conflict.Score*p.conflict + domain.Score*p.domain
	overall := roundHalfUp(float64(weighted) / float64(p.availability+p.coverage+p.conflict+p.domain))

	availability.Weight = p.availability
	coverage.Weight = p.coverage
	conflict.Weight = p.conflict
	domain.Weight = p.domain

	return model.ScoreBreakdown{
		NamespaceAvailability: availability,
		CoverageCompleteness:  coverage,
		ConflictSeverity:      conflict,
		DomainAvailability:    domain,
		OverallScore:          overall,
		TierThresholds:        model.TierThresholds{Green: 80, Yellow: 60},
		DuPontFactors:         dupontFactors(checks, findings, opts.IntakeChannels),
	}
}

func availabilityScore(checks []model.NamespaceCheck) model.SubScore {
	total, available := 0, 0
	for _, check := range checks {
		if check.Namespace == model.NamespaceDomain {
			continue
		}
		total++
		if check.Status == model.StatusAvailable {
			available++
		}
	}
	if total == 0 {
		return model.SubScore{Score: 100, Details: "no non-domain namespaces checked"}
	}
	score := roundHalfUp(float64(available) / float64(total) * 100)
	return model.SubScore{
		Score:   score,
		Details: fmt.Sprintf("%d of %d non-domain checks available", available, total),
	}
}

func coverageScore(checks []model.NamespaceCheck) model.SubScore {
	checked := map[string]bool{}
	for _, check := range checks {
		checked[check.Namespace] = true
	}
	covered := []string{}
	for _, ns := range model.CoreNamespaces {
		if checked[ns] {
			covered = append(covered, ns)
		}
	}
	sort.Strings(covered)
	score := roundHalfUp(float64(len(covered)) / float64(len(model.CoreNamespaces)) * 100)
	return model.SubScore{
		Score:   score,
		Details: fmt.Sprintf("%d of %d core namespaces checked", len(covered), len(model.CoreNamespaces)),
	}
}

func conflictScore(findings []model.Finding) model.SubScore {
	deduction := 0
	for _, f := range findings {
		deduction += conflictDeductions[f.Kind]
	}
	score := 100 - deduction
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return model.SubScore{
		Score:   score,
		Details: fmt.Sprintf("100 minus %d points of conflict deductions, clamped to [0,100]", deduction),
	}
}

func domainScore(checks []model.NamespaceCheck) model.SubScore {
	total, available := 0, 0
	for _, check := range checks {
		if check.Namespace != model.NamespaceDomain {
			continue
		}
		total++
		if check.Status == model.StatusAvailable {
			available++
		}
	}
	if total == 0 {
		return model.SubScore{Score: 50, Details: "no domain checks performed (neutral)"}
	}
	score := roundHalfUp(float64(available) / float64(total) * 100)
	return model.SubScore{
		Score:   score,
		Details: fmt.Sprintf("%d of %d domain checks available", available, total),
	}
}

// dupontFactors computes the four deterministic trademark-style proxies.
// A missing similarity payload simply contributes zero.
func dupontFactors(checks []model.NamespaceCheck, findings []model.Finding, intake []string) model.DuPontFactors {
	maxOverall := 0.0
	fameHits := 0
	for _, check := range checks {
		if check.Similarity == nil {
			continue
		}
		if check.Similarity.Overall > maxOverall {
			maxOverall = check.Similarity.Overall
		}
		if check.Similarity.Overall >= 0.85 {
			fameHits++
		}
	}

	takenNamespaces := map[string]bool{}
	for _, check := range checks {
		if check.Status == model.StatusTaken {
			takenNamespaces[check.Namespace] = true
		}
	}
	overlap := 0
	if len(intake) > 0 {
		overlap = roundHalfUp(float64(len(takenNamespaces)) / float64(len(intake)) * 100)
		if overlap > 100 {
			overlap = 100
		}
	}

	variantTaken := 0
	for _, f := range findings {
		if f.Kind == model.FindingVariantTaken {
			variantTaken++
		}
	}

	fame := 25 * fameHits
	if fame > 100 {
		fame = 100
	}
	intent := 30 * variantTaken
	if intent > 100 {
		intent = 100
	}

	return model.DuPontFactors{
		SimilarityOfMarks: model.DuPontFactor{
			Score:     roundHalfUp(maxOverall * 100),
			Rationale: fmt.Sprintf("strongest similarity among indicative hits: %.3f", maxOverall),
		},
		ChannelOverlap: model.DuPontFactor{
			Score:     overlap,
			Rationale: fmt.Sprintf("%d of %d intake channels have the name taken", len(takenNamespaces), len(intake)),
		},
		FameProxy: model.DuPontFactor{
			Score:     fame,
			Rationale: fmt.Sprintf("%d indicative hit(s) scored 0.85 or higher", fameHits),
		},
		IntentProxy: model.DuPontFactor{
			Score:     intent,
			Rationale: fmt.Sprintf("%d typo variant(s) of the candidate are registered", variantTaken),
		},
	}
}
