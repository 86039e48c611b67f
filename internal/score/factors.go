package score

import (
	"fmt"
	"sort"

	"github.com/namelens/namelens/internal/model"
)

var weightRank = map[model.FactorWeight]int{
	model.WeightCritical: 0,
	model.WeightMajor:    1,
	model.WeightModerate: 2,
	model.WeightMinor:    3,
}

// allClearFactors pad the list when a green run produces fewer than three
// factors. They are appended in order until the floor is met.
var allClearFactors = []model.TopFactor{
	{Name: "all_clear", Statement: "every checked namespace reported the name available", Weight: model.WeightMinor},
	{Name: "all_clear_similarity", Statement: "no similar existing names surfaced above the comparison threshold", Weight: model.WeightMinor},
	{Name: "all_clear_variants", Statement: "no typo variants of the name are registered anywhere checked", Weight: model.WeightMinor},
}

// topFactors maps the run's findings onto template statements with fixed
// weight tiers, sorts by weight then name, and clamps to three-to-five
// entries.
func topFactors(tier model.Tier, t tally) []model.TopFactor {
	factors := []model.TopFactor{}

	if t.exact > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "exact_conflict",
			Statement: fmt.Sprintf("the name is already registered in %d namespace(s)", t.exact),
			Weight:    model.WeightCritical,
		})
	}
	if t.phonetic > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "phonetic_conflict",
			Statement: fmt.Sprintf("%d existing name(s) sound indistinguishable from the candidate", t.phonetic),
			Weight:    model.WeightCritical,
		})
	}
	if t.confusables > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "confusable_risk",
			Statement: fmt.Sprintf("%d confusable-spelling exposure(s) coincide with taken namespaces", t.confusables),
			Weight:    model.WeightMajor,
		})
	}
	if t.nearConflicts > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "near_conflict",
			Statement: fmt.Sprintf("%d existing name(s) are visually close to the candidate", t.nearConflicts),
			Weight:    model.WeightModerate,
		})
	}
	if t.variantTaken > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "variant_taken",
			Statement: fmt.Sprintf("%d edit-distance-1 variant(s) are already registered", t.variantTaken),
			Weight:    model.WeightModerate,
		})
	}
	if t.coverageGaps > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "coverage_gap",
			Statement: fmt.Sprintf("%d core namespace(s) were never checked", t.coverageGaps),
			Weight:    model.WeightMinor,
		})
	}
	if t.unknownChecks > 0 {
		factors = append(factors, model.TopFactor{
			Name:      "unknown_checks",
			Statement: fmt.Sprintf("%d lookup(s) returned no usable answer", t.unknownChecks),
			Weight:    model.WeightMinor,
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if weightRank[factors[i].Weight] != weightRank[factors[j].Weight] {
			return weightRank[factors[i].Weight] < weightRank[factors[j].Weight]
		}
		return factors[i].Name < factors[j].Name
	})

	if tier == model.TierGreen {
		for _, pad := range allClearFactors {
			if len(factors) >= 3 {
				break
			}
			factors = append(factors, pad)
		}
	}
	if len(factors) > 5 {
		factors = factors[:5]
	}
	return factors
}
