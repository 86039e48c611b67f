package classify

import (
	"testing"

	"github.com/namelens/namelens/internal/model"
)

func takenCheck(ns, mark, value string) model.NamespaceCheck {
	return model.NamespaceCheck{
		Namespace: ns,
		Query:     model.CheckQuery{CandidateMark: mark, Value: value},
		Status:    model.StatusTaken,
		Authority: model.AuthorityAuthoritative,
	}
}

func TestClassify_ExactConflict(t *testing.T) {
	checks := []model.NamespaceCheck{takenCheck(model.NamespaceNPM, "taken-tool", "taken-tool")}

	findings := Classify(checks, nil, nil)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Kind != model.FindingExactConflict {
		t.Errorf("kind = %q, want exact_conflict", f.Kind)
	}
	if f.Severity != model.SeverityHigh {
		t.Errorf("severity = %q, want high", f.Severity)
	}
	if f.Score != 100 {
		t.Errorf("score = %d, want 100", f.Score)
	}
	if f.CandidateMark != "taken-tool" {
		t.Errorf("candidate mark = %q", f.CandidateMark)
	}
}

func TestClassify_AvailableChecksProduceNothing(t *testing.T) {
	checks := []model.NamespaceCheck{
		{Namespace: model.NamespaceNPM, Status: model.StatusAvailable, Authority: model.AuthorityAuthoritative},
		{Namespace: model.NamespacePyPI, Status: model.StatusUnknown, Authority: model.AuthorityAuthoritative},
	}
	if findings := Classify(checks, nil, nil); len(findings) != 0 {
		t.Errorf("got findings for non-taken checks: %v", findings)
	}
}

func TestClassify_PhoneticBeforeOverall(t *testing.T) {
	// sounds >= 0.85 wins even when overall is below the near-conflict
	// severity bar; the rule order is part of the contract.
	sim := &model.SimilarityResult{
		Looks:   model.SimilarityAxis{Score: 0.60, Label: "low"},
		Sounds:  model.SimilarityAxis{Score: 0.85, Label: "high"},
		Overall: 0.70,
	}
	check := model.NamespaceCheck{
		Namespace:  model.NamespaceWeb,
		Query:      model.CheckQuery{CandidateMark: "fonetool", Value: "phonetool"},
		Status:     model.StatusTaken,
		Authority:  model.AuthorityIndicative,
		Similarity: sim,
	}

	findings := Classify([]model.NamespaceCheck{check}, nil, nil)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Kind != model.FindingPhoneticConflict {
		t.Errorf("kind = %q, want phonetic_conflict", findings[0].Kind)
	}
	if findings[0].Score != 70 {
		t.Errorf("score = %d, want round(overall*100) = 70", findings[0].Score)
	}
}

func TestClassify_NearConflictSeveritySplit(t *testing.T) {
	cases := []struct {
		overall float64
		want    model.Severity
	}{
		{0.85, model.SeverityHigh},
		{0.84, model.SeverityMedium},
	}
	for _, c := range cases {
		check := model.NamespaceCheck{
			Namespace: model.NamespaceWeb,
			Query:     model.CheckQuery{CandidateMark: "tool", Value: "tuul"},
			Status:    model.StatusTaken,
			Authority: model.AuthorityIndicative,
			Similarity: &model.SimilarityResult{
				Looks:   model.SimilarityAxis{Score: c.overall, Label: "high"},
				Sounds:  model.SimilarityAxis{Score: 0.50, Label: "low"},
				Overall: c.overall,
			},
		}
		findings := Classify([]model.NamespaceCheck{check}, nil, nil)
		if len(findings) != 1 {
			t.Fatalf("got %d findings, want 1", len(findings))
		}
		if findings[0].Kind != model.FindingNearConflict {
			t.Errorf("kind = %q, want near_conflict", findings[0].Kind)
		}
		if findings[0].Severity != c.want {
			t.Errorf("overall %v: severity = %q, want %q", c.overall, findings[0].Severity, c.want)
		}
	}
}

func TestClassify_IndicativeWithoutSimilarity(t *testing.T) {
	check := model.NamespaceCheck{
		Namespace: model.NamespaceWeb,
		Status:    model.StatusTaken,
		Authority: model.AuthorityIndicative,
	}
	findings := Classify([]model.NamespaceCheck{check}, nil, nil)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Kind != model.FindingNearConflict || findings[0].Severity != model.SeverityMedium {
		t.Errorf("defensive classification = %q/%q", findings[0].Kind, findings[0].Severity)
	}
	if findings[0].CandidateMark != "unknown" {
		t.Errorf("missing candidate mark should default to unknown, got %q", findings[0].CandidateMark)
	}
}

func TestClassify_VariantTaken(t *testing.T) {
	check := model.NamespaceCheck{
		Namespace: model.NamespaceNPM,
		Query:     model.CheckQuery{CandidateMark: "tool", Value: "tol", IsVariant: true},
		Status:    model.StatusTaken,
		Authority: model.AuthorityAuthoritative,
	}
	findings := Classify([]model.NamespaceCheck{check}, nil, nil)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Kind != model.FindingVariantTaken || f.Severity != model.SeverityMedium || f.Score != 60 {
		t.Errorf("variant finding = %q/%q/%d, want variant_taken/medium/60", f.Kind, f.Severity, f.Score)
	}
}

func TestClassify_ConfusableGating(t *testing.T) {
	variants := []model.VariantSet{{
		CandidateMark: "silo",
		Canonical:     "silo",
		Warnings: []model.Warning{{
			Code:     model.WarnHomoglyphRisk,
			Message:  "8 confusable look-alike forms exist",
			Severity: model.WarningHigh,
		}},
	}}

	// No taken checks anywhere: warning stays informational
	open := []model.NamespaceCheck{{Namespace: model.NamespaceNPM, Status: model.StatusAvailable, Authority: model.AuthorityAuthoritative}}
	if findings := Classify(open, variants, nil); len(findings) != 0 {
		t.Errorf("homoglyph warning promoted without taken checks: %v", findings)
	}

	// One taken check anywhere promotes the warning
	taken := append(open, takenCheck(model.NamespacePyPI, "silo", "silo"))
	findings := Classify(taken, variants, nil)
	var confusable *model.Finding
	for i := range findings {
		if findings[i].Kind == model.FindingConfusableRisk {
			confusable = &findings[i]
		}
	}
	if confusable == nil {
		t.Fatal("expected confusable_risk finding with a taken check present")
	}
	if confusable.Severity != model.SeverityHigh || confusable.Score != 60 {
		t.Errorf("promoted finding = %q/%d, want high/60", confusable.Severity, confusable.Score)
	}
}

func TestClassify_ConfusableWarnSeverity(t *testing.T) {
	variants := []model.VariantSet{{
		CandidateMark: "ax",
		Canonical:     "ax",
		Warnings: []model.Warning{{
			Code:     model.WarnHomoglyphRisk,
			Message:  "2 confusable look-alike forms exist",
			Severity: model.WarningWarn,
		}},
	}}
	checks := []model.NamespaceCheck{takenCheck(model.NamespaceNPM, "ax", "ax")}

	findings := Classify(checks, variants, nil)
	var confusable *model.Finding
	for i := range findings {
		if findings[i].Kind == model.FindingConfusableRisk {
			confusable = &findings[i]
		}
	}
	if confusable == nil {
		t.Fatal("expected confusable_risk finding")
	}
	if confusable.Severity != model.SeverityLow || confusable.Score != 20 {
		t.Errorf("warn-level finding = %q/%d, want low/20", confusable.Severity, confusable.Score)
	}
}

func TestClassify_PassthroughUnchanged(t *testing.T) {
	gap := model.Finding{
		ID:            "coverage_gap-domain-0",
		CandidateMark: "tool",
		Kind:          model.FindingCoverageGap,
		Summary:       "core namespace domain was not checked",
		Severity:      model.SeverityLow,
		Score:         10,
	}
	findings := Classify(nil, nil, []model.Finding{gap})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].ID != gap.ID || findings[0].Summary != gap.Summary {
		t.Errorf("passthrough finding modified: %+v", findings[0])
	}
}

func TestCoverageGaps(t *testing.T) {
	checks := []model.NamespaceCheck{
		{Namespace: model.NamespaceNPM, Status: model.StatusAvailable},
		{Namespace: model.NamespacePyPI, Status: model.StatusAvailable},
	}
	gaps := CoverageGaps("tool", checks)
	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2 (domain, github_repo)", len(gaps))
	}
	if gaps[0].Summary == gaps[1].Summary {
		t.Errorf("gap summaries should name distinct namespaces")
	}
	for _, g := range gaps {
		if g.Kind != model.FindingCoverageGap || g.Severity != model.SeverityLow {
			t.Errorf("gap = %q/%q", g.Kind, g.Severity)
		}
	}
	if full := CoverageGaps("tool", append(checks,
		model.NamespaceCheck{Namespace: model.NamespaceGitHub},
		model.NamespaceCheck{Namespace: model.NamespaceDomain})); len(full) != 0 {
		t.Errorf("no gaps expected with full coverage, got %v", full)
	}
}
