// Package score turns checks, findings and variants into the final
// deterministic opinion: a traffic-light tier, a weighted explainable score
// breakdown, ranked top factors and a templated risk narrative.
//
// Given identical inputs the output is byte-identical: no clock, no
// randomness, no map iteration affecting output order.
package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/namelens/namelens/internal/model"
)

// Options parameterize a single scoring run
type Options struct {
	Tolerance      model.RiskTolerance
	IntakeChannels []string
	ReservationURL string
}

// DefaultOptions returns the conservative profile over the standard channels
func DefaultOptions() Options {
	return Options{
		Tolerance:      model.ToleranceConservative,
		IntakeChannels: model.DefaultConfig().Risk.IntakeChannels,
	}
}

// BuildOpinion evaluates one candidate to a terminal tier. This is a pure
// classification function, not a long-lived state machine.
func BuildOpinion(checks []model.NamespaceCheck, findings []model.Finding, variants []model.VariantSet, opts Options) model.Opinion {
	if opts.Tolerance == "" {
		opts.Tolerance = model.ToleranceConservative
	}
	if len(opts.IntakeChannels) == 0 {
		opts.IntakeChannels = DefaultOptions().IntakeChannels
	}

	tally := tallyInputs(checks, findings)
	tier := decideTier(tally, opts.Tolerance)
	breakdown := buildBreakdown(checks, findings, tally, opts)
	factors := topFactors(tier, tally)
	candidate := candidateMark(checks, variants)

	return model.Opinion{
		Tier:                tier,
		Summary:             summaryLine(candidate, tier, tally),
		Reasons:             reasons(tier, tally),
		Assumptions:         assumptions(),
		Limitations:         limitations(),
		RecommendedActions:  recommendedActions(tier),
		ClosestConflicts:    closestConflicts(findings),
		ScoreBreakdown:      breakdown,
		TopFactors:          factors,
		RiskNarrative:       narrative(tier, factors),
		NextActions:         nextActions(tier, opts.ReservationURL),
		CoverageScore:       breakdown.CoverageCompleteness.Score,
		UncheckedNamespaces: uncheckedNamespaces(checks, opts.IntakeChannels),
		Disclaimer:          model.Disclaimer,
	}
}

// tally aggregates everything the tier decision and factor ranking need
type tally struct {
	anyTaken       bool
	unknownChecks  int
	takenChecks    int
	totalChecks    int
	exact          int
	phonetic       int
	nearConflicts  int
	variantTaken   int
	coverageGaps   int
	confusables    int
	confusableHigh int
}

func tallyInputs(checks []model.NamespaceCheck, findings []model.Finding) tally {
	var t tally
	t.totalChecks = len(checks)
	for _, check := range checks {
		switch check.Status {
		case model.StatusTaken:
			t.anyTaken = true
			t.takenChecks++
		case model.StatusUnknown:
			t.unknownChecks++
		}
	}
	for _, f := range findings {
		switch f.Kind {
		case model.FindingExactConflict:
			t.exact++
		case model.FindingPhoneticConflict:
			t.phonetic++
		case model.FindingNearConflict:
			t.nearConflicts++
		case model.FindingVariantTaken:
			t.variantTaken++
		case model.FindingCoverageGap:
			t.coverageGaps++
		case model.FindingConfusableRisk:
			t.confusables++
			if f.Severity == model.SeverityHigh {
				t.confusableHigh++
			}
		}
	}
	return t
}

// decideTier applies the priority ladder: first true wins.
func decideTier(t tally, tolerance model.RiskTolerance) model.Tier {
	// High-severity confusables count toward red only alongside a taken check
	gatedConfusables := 0
	if t.anyTaken {
		gatedConfusables = t.confusableHigh
	}

	switch {
	case t.exact > 0 || t.phonetic > 0:
		return model.TierRed
	case gatedConfusables >= 2:
		return model.TierRed
	case tolerance == model.ToleranceConservative && gatedConfusables >= 1:
		return model.TierRed
	case t.unknownChecks > 0 || t.nearConflicts > 0 || t.coverageGaps > 0 || t.variantTaken > 0 || t.confusables > 0:
		return model.TierYellow
	case t.totalChecks == 0:
		// No evidence at all never earns a green light
		return model.TierYellow
	default:
		return model.TierGreen
	}
}

func candidateMark(checks []model.NamespaceCheck, variants []model.VariantSet) string {
	if len(variants) > 0 && variants[0].CandidateMark != "" {
		return variants[0].CandidateMark
	}
	if len(checks) > 0 {
		return checks[0].Mark()
	}
	return "unknown"
}

func summaryLine(candidate string, tier model.Tier, t tally) string {
	switch tier {
	case model.TierRed:
		return fmt.Sprintf("%q carries blocking collision risk: %d conflict finding(s) across %d check(s)",
			candidate, t.exact+t.phonetic, t.totalChecks)
	case model.TierYellow:
		return fmt.Sprintf("%q has open questions: %d unknown check(s) and %d advisory finding(s)",
			candidate, t.unknownChecks, t.nearConflicts+t.coverageGaps+t.variantTaken+t.confusables)
	default:
		return fmt.Sprintf("%q looks clear across %d checked namespace(s)", candidate, t.totalChecks)
	}
}

func reasons(tier model.Tier, t tally) []string {
	out := []string{}
	if t.exact > 0 {
		out = append(out, fmt.Sprintf("%d exact conflict(s): the name is already registered", t.exact))
	}
	if t.phonetic > 0 {
		out = append(out, fmt.Sprintf("%d phonetic conflict(s): an existing name sounds the same", t.phonetic))
	}
	if t.confusables > 0 {
		out = append(out, fmt.Sprintf("%d confusable-spelling risk(s) flagged", t.confusables))
	}
	if t.nearConflicts > 0 {
		out = append(out, fmt.Sprintf("%d near conflict(s) with similar existing names", t.nearConflicts))
	}
	if t.variantTaken > 0 {
		out = append(out, fmt.Sprintf("%d typo variant(s) already taken", t.variantTaken))
	}
	if t.coverageGaps > 0 {
		out = append(out, fmt.Sprintf("%d core namespace(s) were not checked", t.coverageGaps))
	}
	if t.unknownChecks > 0 {
		out = append(out, fmt.Sprintf("%d check(s) returned unknown and need a re-run", t.unknownChecks))
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("all %d namespace check(s) came back available", t.totalChecks))
	}
	return out
}

func assumptions() []string {
	return []string{
		"registry responses reflect the moment of the run and can change at any time",
		"indicative search hits are availability signals, not ownership records",
		"namespace availability is a proxy for collision risk, not a guarantee of safe use",
	}
}

func limitations() []string {
	return []string{
		"no trademark register was searched",
		"social-media handles and app stores were not checked",
		"only single-character confusable substitutions were considered",
	}
}

func recommendedActions(tier model.Tier) []string {
	switch tier {
	case model.TierRed:
		return []string{
			"pick an alternative name before investing in this one",
			"seek trademark counsel if the name must be kept",
		}
	case model.TierYellow:
		return []string{
			"re-run the unknown checks before deciding",
			"shortlist one alternative name as a fallback",
		}
	default:
		return []string{
			"claim the name on the core registries promptly",
			"register the matching domain before announcing",
		}
	}
}

// closestConflicts renders the strongest conflict findings, strongest first,
// capped at three.
func closestConflicts(findings []model.Finding) []string {
	conflicts := []model.Finding{}
	for _, f := range findings {
		switch f.Kind {
		case model.FindingExactConflict, model.FindingPhoneticConflict,
			model.FindingNearConflict, model.FindingVariantTaken:
			conflicts = append(conflicts, f)
		}
	}
	sort.SliceStable(conflicts, func(i, j int) bool {
		if conflicts[i].Score != conflicts[j].Score {
			return conflicts[i].Score > conflicts[j].Score
		}
		return conflicts[i].ID < conflicts[j].ID
	})
	if len(conflicts) > 3 {
		conflicts = conflicts[:3]
	}
	out := []string{}
	for _, f := range conflicts {
		out = append(out, fmt.Sprintf("%s (score %d)", f.Summary, f.Score))
	}
	return out
}

func uncheckedNamespaces(checks []model.NamespaceCheck, intake []string) []string {
	checked := map[string]bool{}
	for _, check := range checks {
		checked[check.Namespace] = true
	}
	missing := []string{}
	for _, ns := range intake {
		if !checked[ns] {
			missing = append(missing, ns)
		}
	}
	sort.Strings(missing)
	return missing
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
