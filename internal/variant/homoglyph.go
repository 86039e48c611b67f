package variant

import (
	"sort"
	"strings"
)

// confusables is the fixed single-character substitution table. Keys are the
// characters attackers or typos replace; values are what they get replaced
// with. Substitutions are applied one position at a time, never combined.
var confusables = map[byte][]string{
	'a': {"4", "@"},
	'b': {"8"},
	'e': {"3"},
	'g': {"9"},
	'i': {"1", "l", "!"},
	'l': {"1", "i"},
	'o': {"0"},
	's': {"5", "$"},
	't': {"7"},
	'z': {"2"},
}

// HomoglyphVariants generates every single-position looks-like substitution
// of a normalized name. Output is sorted and deduplicated; the original
// string is excluded.
func HomoglyphVariants(name string) []string {
	lower := strings.ToLower(name)
	seen := map[string]bool{}
	variants := []string{}
	for i := 0; i < len(lower); i++ {
		subs, ok := confusables[lower[i]]
		if !ok {
			continue
		}
		for _, sub := range subs {
			v := lower[:i] + sub + lower[i+1:]
			if v == lower || seen[v] {
				continue
			}
			seen[v] = true
			variants = append(variants, v)
		}
	}
	sort.Strings(variants)
	return variants
}

// AreConfusable reports whether b is a case-insensitive match for a or one
// of a's homoglyph variants.
func AreConfusable(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return true
	}
	for _, v := range HomoglyphVariants(a) {
		if v == lb {
			return true
		}
	}
	return false
}
