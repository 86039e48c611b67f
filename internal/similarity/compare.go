package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/variant"
)

// Weights blends the two comparison axes
type Weights struct {
	Look  float64
	Sound float64
}

// DefaultWeights favor visual similarity over phonetic
var DefaultWeights = Weights{Look: 0.6, Sound: 0.4}

// DefaultThreshold is the minimum overall score FindSimilarMarks keeps
const DefaultThreshold = 0.70

// ComparePair scores how alike two names are. The looks axis runs
// Jaro-Winkler over normalized forms; the sounds axis runs it over phonetic
// signatures, scoring zero when either signature is empty. Overall is the
// weighted average rounded to three decimals.
func ComparePair(a, b string, w Weights) model.SimilarityResult {
	if w.Look == 0 && w.Sound == 0 {
		w = DefaultWeights
	}

	looks := round3(JaroWinkler(variant.Normalize(a), variant.Normalize(b)))

	sigA := variant.PhoneticSignature(variant.Tokenize(a))
	sigB := variant.PhoneticSignature(variant.Tokenize(b))
	sounds := 0.0
	if sigA != "" && sigB != "" {
		sounds = round3(JaroWinkler(sigA, sigB))
	}

	overall := round3(w.Look*looks + w.Sound*sounds)

	return model.SimilarityResult{
		Looks:   model.SimilarityAxis{Score: looks, Label: Label(looks)},
		Sounds:  model.SimilarityAxis{Score: sounds, Label: Label(sounds)},
		Overall: overall,
		Why: []string{
			fmt.Sprintf("looks like %q with score %.3f (%s)", b, looks, Label(looks)),
			fmt.Sprintf("sounds like %q with score %.3f (%s)", b, sounds, Label(sounds)),
		},
	}
}

// MarkMatch pairs a known mark with its comparison result
type MarkMatch struct {
	Mark   string                 `json:"mark"`
	Result model.SimilarityResult `json:"result"`
}

// FindSimilarMarks compares a candidate against each known mark and keeps
// matches at or above the threshold, sorted by overall score descending with
// ties broken by lexical mark name. The ordering is part of the output
// contract.
func FindSimilarMarks(candidate string, marks []string, threshold float64) []MarkMatch {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	matches := []MarkMatch{}
	for _, mark := range marks {
		result := ComparePair(candidate, mark, DefaultWeights)
		if result.Overall >= threshold {
			matches = append(matches, MarkMatch{Mark: mark, Result: result})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Result.Overall != matches[j].Result.Overall {
			return matches[i].Result.Overall > matches[j].Result.Overall
		}
		return matches[i].Mark < matches[j].Mark
	})
	return matches
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
