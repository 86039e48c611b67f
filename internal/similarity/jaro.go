// Package similarity scores looks-like and sounds-like closeness between
// candidate names. All functions are pure.
package similarity

import "strings"

// Jaro computes classic Jaro similarity between two strings: greedy matches
// inside the half-length window, transposition counting over matched pairs,
// and the three-way average. Returns 1 for equal strings and 0 when either
// string is empty or nothing matches.
func Jaro(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	window := maxLen/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(ra))
	bMatched := make([]bool, len(rb))
	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi >= len(rb) {
			hi = len(rb) - 1
		}
		for j := lo; j <= hi; j++ {
			if bMatched[j] || ra[i] != rb[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Transpositions: matched characters out of order, counted pairwise
	transpositions := 0
	j := 0
	for i := range ra {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions)
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-t/2)/m) / 3
}

// winklerPrefixCap bounds the common-prefix bonus
const winklerPrefixCap = 4

// JaroWinkler adds the common-prefix bonus to Jaro similarity. Comparison is
// case-insensitive.
func JaroWinkler(a, b string) float64 {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	score := Jaro(la, lb)
	if score == 0 {
		return 0
	}

	prefix := 0
	ra, rb := []rune(la), []rune(lb)
	for prefix < len(ra) && prefix < len(rb) && prefix < winklerPrefixCap && ra[prefix] == rb[prefix] {
		prefix++
	}
	return score + float64(prefix)*0.1*(1-score)
}

// Label maps a similarity score to its human bucket.
func Label(score float64) string {
	switch {
	case score >= 0.95:
		return "very high"
	case score >= 0.85:
		return "high"
	case score >= 0.70:
		return "medium"
	default:
		return "low"
	}
}
