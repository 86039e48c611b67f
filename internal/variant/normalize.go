// Package variant derives canonical forms, phonetic codes and risk variants
// from a candidate name. Everything here is pure and synchronous.
package variant

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a name to a comparable lowercase/hyphenated form:
// every character outside [a-z0-9-] becomes '-', runs collapse, edges trim.
func Normalize(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	prevHyphen := false
	for _, r := range lower {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if ok {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// StripAll lowercases and removes everything but [a-z0-9].
func StripAll(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits a name into lowercase word tokens. Separators split first,
// then camelCase and acronym boundaries inside each piece, so "HTMLParser"
// yields ["html","parser"] and "myCoolTool" yields ["my","cool","tool"].
func Tokenize(name string) []string {
	tokens := []string{}
	for _, piece := range splitSeparators(name) {
		for _, word := range splitCaseBoundaries(piece) {
			if word != "" {
				tokens = append(tokens, strings.ToLower(word))
			}
		}
	}
	return tokens
}

func splitSeparators(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '-', '_', '.', ' ':
			return true
		}
		return unicode.IsSpace(r)
	})
}

// splitCaseBoundaries breaks a piece at lowercase-to-uppercase transitions
// and before the Titlecase letter ending an uppercase run.
func splitCaseBoundaries(piece string) []string {
	runes := []rune(piece)
	if len(runes) == 0 {
		return nil
	}
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		if unicode.IsLower(prev) && unicode.IsUpper(cur) {
			boundary = true
		} else if unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			// "HTMLParser": split between L and P
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
