package variant

import (
	"fmt"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

// homoglyphRiskThreshold is the variant count at which the warning escalates
const homoglyphRiskThreshold = 5

// deleet maps confusable substitution characters back to the letter they
// imitate, producing the homoglyph-safe rendering of a name.
var deleet = strings.NewReplacer(
	"4", "a", "@", "a",
	"8", "b",
	"3", "e",
	"9", "g",
	"1", "i",
	"!", "i",
	"0", "o",
	"5", "s", "$", "s",
	"7", "t",
	"2", "z",
)

// BuildVariantSet assembles every derived form of a candidate in fixed order,
// deduplicated by (kind, value) keeping the first occurrence, and attaches a
// homoglyph-risk warning when confusable substitutions exist.
func BuildVariantSet(candidate string) model.VariantSet {
	canonical := Normalize(candidate)
	lower := strings.ToLower(candidate)
	tokens := Tokenize(candidate)

	forms := []model.VariantForm{
		{Kind: model.VariantOriginal, Value: candidate},
		{Kind: model.VariantLower, Value: lower},
		{Kind: model.VariantNoSpace, Value: strings.ReplaceAll(lower, " ", "")},
		{Kind: model.VariantHyphenated, Value: canonical},
		{Kind: model.VariantUnderscored, Value: strings.ReplaceAll(canonical, "-", "_")},
		{Kind: model.VariantStripped, Value: StripAll(candidate)},
	}
	if sig := PhoneticSignature(tokens); sig != "" {
		forms = append(forms, model.VariantForm{Kind: model.VariantPhonetic, Value: sig})
	}
	forms = append(forms, model.VariantForm{Kind: model.VariantHomoglyphSafe, Value: deleet.Replace(canonical)})

	set := model.VariantSet{
		CandidateMark: candidate,
		Canonical:     canonical,
		Forms:         dedupeForms(forms),
	}

	if glyphs := HomoglyphVariants(canonical); len(glyphs) > 0 {
		set.Warnings = append(set.Warnings, homoglyphWarning(glyphs))
	}
	return set
}

func dedupeForms(forms []model.VariantForm) []model.VariantForm {
	seen := map[model.VariantForm]bool{}
	out := make([]model.VariantForm, 0, len(forms))
	for _, f := range forms {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func homoglyphWarning(glyphs []string) model.Warning {
	severity := model.WarningWarn
	if len(glyphs) >= homoglyphRiskThreshold {
		severity = model.WarningHigh
	}
	shown := glyphs
	suffix := ""
	if len(shown) > 3 {
		shown = shown[:3]
		suffix = ", …"
	}
	return model.Warning{
		Code: model.WarnHomoglyphRisk,
		Message: fmt.Sprintf("%d confusable look-alike forms exist (e.g. %s%s)",
			len(glyphs), strings.Join(shown, ", "), suffix),
		Severity: severity,
	}
}
