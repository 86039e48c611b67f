package score

import "github.com/namelens/namelens/internal/model"

// narrativeKey selects a static template by tier and dominant factor
type narrativeKey struct {
	tier   model.Tier
	factor string
}

// narratives are the only texts the engine can emit. Never freeform.
var narratives = map[narrativeKey]string{
	{model.TierRed, "exact_conflict"}: "The candidate name is already claimed in at least one " +
		"authoritative registry. Shipping under this name would collide directly with an " +
		"existing project, and users searching for one will find the other. Treat this as a " +
		"blocking conflict and move to an alternative unless the existing registration can be acquired.",
	{model.TierRed, "phonetic_conflict"}: "An existing name sounds the same as the candidate " +
		"when spoken aloud. Word-of-mouth discovery, podcasts and conference mentions will route " +
		"traffic to the established project. Spelling differences do not protect against this kind " +
		"of collision; treat it as blocking.",
	{model.TierRed, "confusable_risk"}: "The candidate is one character-swap away from existing " +
		"registered names, which is the classic shape of typosquatting exposure. With namespaces " +
		"already taken, confusable spellings can be used to impersonate the project. Choose a name " +
		"with fewer look-alike neighbours.",
	{model.TierYellow, "near_conflict"}: "One or more existing names are close enough to the " +
		"candidate to cause occasional confusion, though none collide outright. The name is usable, " +
		"but expect some mistaken attribution and plan distinctive branding around it. Re-check " +
		"before any major launch.",
	{model.TierYellow, "variant_taken"}: "Typo variants of the candidate are already registered " +
		"in public namespaces. The name itself is free, but users who mistype it will land on " +
		"someone else's package. Claim the most common misspellings early if you proceed.",
	{model.TierYellow, "coverage_gap"}: "The picture is incomplete: some core namespaces were " +
		"never checked or returned no answer. Nothing blocking was found in what was checked, but " +
		"the remaining gaps could hide a conflict. Re-run the missing checks before committing.",
	{model.TierYellow, "unknown_checks"}: "The picture is incomplete: some core namespaces were " +
		"never checked or returned no answer. Nothing blocking was found in what was checked, but " +
		"the remaining gaps could hide a conflict. Re-run the missing checks before committing.",
	{model.TierGreen, "all_clear"}: "Every namespace checked reported the candidate available, " +
		"and no similar existing names surfaced above the comparison threshold. The name is as " +
		"clear as public availability signals can show. Claim the core registrations promptly, " +
		"since availability is a moment-in-time observation.",
}

// fallback narratives per tier when no keyed template matches the dominant factor
var tierFallbacks = map[model.Tier]string{
	model.TierRed: "Blocking conflict signals were found for the candidate name. Review the " +
		"closest conflicts listed and move to an alternative unless the conflicting registration " +
		"can be resolved.",
	model.TierYellow: "Advisory risk signals were found for the candidate name. None are " +
		"blocking on their own, but together they warrant a re-check and a fallback option " +
		"before launch.",
	model.TierGreen: "Every namespace checked reported the candidate available, and no similar " +
		"existing names surfaced above the comparison threshold. Claim the core registrations " +
		"promptly, since availability is a moment-in-time observation.",
}

// narrative picks the template for the tier and the dominant (first-ranked)
// top factor.
func narrative(tier model.Tier, factors []model.TopFactor) string {
	if len(factors) > 0 {
		if text, ok := narratives[narrativeKey{tier, factors[0].Name}]; ok {
			return text
		}
	}
	return tierFallbacks[tier]
}
