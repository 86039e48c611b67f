// Package classify converts namespace-check results plus variant and
// similarity signals into typed, severity-tagged findings.
package classify

import (
	"fmt"
	"math"
	"sort"

	"github.com/namelens/namelens/internal/model"
)

// phoneticBar is the sounds-like score at which an indicative hit becomes a
// phonetic conflict. The sounds axis is tested before the overall split;
// reordering changes which branch fires at the boundary.
const phoneticBar = 0.85

// nearHighBar is the overall score at which a near conflict is high severity
const nearHighBar = 0.85

// Classify derives findings from checks and variant sets, applied per check
// in input order. Pre-existing findings (coverage gaps computed by the
// caller) pass through unchanged after the derived ones.
func Classify(checks []model.NamespaceCheck, variants []model.VariantSet, passthrough []model.Finding) []model.Finding {
	findings := []model.Finding{}
	anyTaken := false
	for _, check := range checks {
		if check.Status == model.StatusTaken {
			anyTaken = true
			break
		}
	}

	for i, check := range checks {
		if check.Status != model.StatusTaken {
			continue
		}
		switch {
		case check.Query.IsVariant:
			findings = append(findings, variantTakenFinding(check, i))
		case check.Authority == model.AuthorityIndicative:
			findings = append(findings, indicativeFinding(check, i))
		default:
			findings = append(findings, exactConflictFinding(check, i))
		}
	}

	// Homoglyph warnings are promoted to findings only when at least one
	// check anywhere in the run came back taken; otherwise the risk stays
	// informational.
	if anyTaken {
		for i, set := range variants {
			for _, warning := range set.Warnings {
				if warning.Code != model.WarnHomoglyphRisk {
					continue
				}
				findings = append(findings, confusableFinding(set, warning, i))
			}
		}
	}

	findings = append(findings, passthrough...)
	return findings
}

func exactConflictFinding(check model.NamespaceCheck, index int) model.Finding {
	return model.Finding{
		ID:            findingID(model.FindingExactConflict, check.Namespace, index),
		CandidateMark: check.Mark(),
		Kind:          model.FindingExactConflict,
		Summary:       fmt.Sprintf("%q is already taken on %s", check.Query.Value, check.Namespace),
		Severity:      model.SeverityHigh,
		Score:         100,
		Why: []string{
			fmt.Sprintf("authoritative lookup on %s returned taken", check.Namespace),
		},
		EvidenceRefs: evidenceRefs(check),
	}
}

func indicativeFinding(check model.NamespaceCheck, index int) model.Finding {
	sim := check.Similarity
	if sim == nil {
		// Indicative hit without a similarity payload: conservative middle
		// ground rather than a failure.
		return model.Finding{
			ID:            findingID(model.FindingNearConflict, check.Namespace, index),
			CandidateMark: check.Mark(),
			Kind:          model.FindingNearConflict,
			Summary:       fmt.Sprintf("%q surfaced in a cross-ecosystem search on %s", check.Query.Value, check.Namespace),
			Severity:      model.SeverityMedium,
			Score:         50,
			Why:           []string{"indicative search hit carried no similarity detail"},
			EvidenceRefs:  evidenceRefs(check),
		}
	}

	score := roundHalfUp(sim.Overall * 100)
	if sim.Sounds.Score >= phoneticBar {
		return model.Finding{
			ID:            findingID(model.FindingPhoneticConflict, check.Namespace, index),
			CandidateMark: check.Mark(),
			Kind:          model.FindingPhoneticConflict,
			Summary:       fmt.Sprintf("%q sounds like an existing name on %s", check.Query.Value, check.Namespace),
			Severity:      model.SeverityHigh,
			Score:         score,
			Why:           sim.Why,
			EvidenceRefs:  evidenceRefs(check),
		}
	}

	severity := model.SeverityMedium
	if sim.Overall >= nearHighBar {
		severity = model.SeverityHigh
	}
	return model.Finding{
		ID:            findingID(model.FindingNearConflict, check.Namespace, index),
		CandidateMark: check.Mark(),
		Kind:          model.FindingNearConflict,
		Summary:       fmt.Sprintf("%q is close to an existing name on %s", check.Query.Value, check.Namespace),
		Severity:      severity,
		Score:         score,
		Why:           sim.Why,
		EvidenceRefs:  evidenceRefs(check),
	}
}

func variantTakenFinding(check model.NamespaceCheck, index int) model.Finding {
	return model.Finding{
		ID:            findingID(model.FindingVariantTaken, check.Namespace, index),
		CandidateMark: check.Mark(),
		Kind:          model.FindingVariantTaken,
		Summary:       fmt.Sprintf("typo variant %q is already taken on %s", check.Query.Value, check.Namespace),
		Severity:      model.SeverityMedium,
		Score:         60,
		Why: []string{
			fmt.Sprintf("edit-distance-1 variant of %q is registered on %s", check.Mark(), check.Namespace),
		},
		EvidenceRefs: evidenceRefs(check),
	}
}

func confusableFinding(set model.VariantSet, warning model.Warning, index int) model.Finding {
	severity := model.SeverityLow
	score := 20
	if warning.Severity == model.WarningHigh {
		severity = model.SeverityHigh
		score = 60
	}
	return model.Finding{
		ID:            findingID(model.FindingConfusableRisk, set.Canonical, index),
		CandidateMark: set.CandidateMark,
		Kind:          model.FindingConfusableRisk,
		Summary:       fmt.Sprintf("%q has confusable look-alike spellings while namespaces are taken", set.CandidateMark),
		Severity:      severity,
		Score:         score,
		Why:           []string{warning.Message},
	}
}

// CoverageGaps is the caller-side coverage computation: one low-severity
// finding per core namespace that was never checked.
func CoverageGaps(candidate string, checks []model.NamespaceCheck) []model.Finding {
	checked := map[string]bool{}
	for _, check := range checks {
		checked[check.Namespace] = true
	}
	gaps := []model.Finding{}
	missing := []string{}
	for _, ns := range model.CoreNamespaces {
		if !checked[ns] {
			missing = append(missing, ns)
		}
	}
	sort.Strings(missing)
	for i, ns := range missing {
		gaps = append(gaps, model.Finding{
			ID:            findingID(model.FindingCoverageGap, ns, i),
			CandidateMark: candidate,
			Kind:          model.FindingCoverageGap,
			Summary:       fmt.Sprintf("core namespace %s was not checked", ns),
			Severity:      model.SeverityLow,
			Score:         10,
			Why:           []string{fmt.Sprintf("no %s lookup in this run", ns)},
		})
	}
	return gaps
}

func findingID(kind model.FindingKind, scope string, index int) string {
	return fmt.Sprintf("%s-%s-%d", kind, scope, index)
}

func evidenceRefs(check model.NamespaceCheck) []string {
	if check.EvidenceRef == "" {
		return nil
	}
	return []string{check.EvidenceRef}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
