package variant

import "sort"

// fuzzyAlphabet is the character set used for substitutions and insertions
const fuzzyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"

// DefaultMaxVariants caps FuzzyVariants output
const DefaultMaxVariants = 30

// DefaultTopN is how many variants downstream registry probing takes
const DefaultTopN = 12

type editOp struct {
	kind  string // "del" < "ins" < "sub" lexically
	pos   int
	char  byte // replacement or inserted char; 0 for deletions
	value string
}

// FuzzyVariants generates every edit-distance-1 variant of a lowercase name:
// deletions, substitutions and insertions over [a-z0-9-]. Results equal to
// the input or empty are excluded. Ordering is the stable key
// (op kind, position, replacement char, result value); duplicates keep the
// first occurrence; output is truncated to maxVariants.
func FuzzyVariants(name string, maxVariants int) []string {
	if maxVariants <= 0 {
		maxVariants = DefaultMaxVariants
	}
	n := len(name)
	var ops []editOp

	for i := 0; i < n; i++ {
		ops = append(ops, editOp{kind: "del", pos: i, value: name[:i] + name[i+1:]})
	}
	for i := 0; i <= n; i++ {
		for j := 0; j < len(fuzzyAlphabet); j++ {
			c := fuzzyAlphabet[j]
			ops = append(ops, editOp{kind: "ins", pos: i, char: c, value: name[:i] + string(c) + name[i:]})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < len(fuzzyAlphabet); j++ {
			c := fuzzyAlphabet[j]
			if c == name[i] {
				continue
			}
			ops = append(ops, editOp{kind: "sub", pos: i, char: c, value: name[:i] + string(c) + name[i+1:]})
		}
	}

	sort.SliceStable(ops, func(a, b int) bool {
		if ops[a].kind != ops[b].kind {
			return ops[a].kind < ops[b].kind
		}
		if ops[a].pos != ops[b].pos {
			return ops[a].pos < ops[b].pos
		}
		if ops[a].char != ops[b].char {
			return ops[a].char < ops[b].char
		}
		return ops[a].value < ops[b].value
	})

	seen := map[string]bool{}
	variants := []string{}
	for _, op := range ops {
		if op.value == "" || op.value == name || seen[op.value] {
			continue
		}
		seen[op.value] = true
		variants = append(variants, op.value)
		if len(variants) == maxVariants {
			break
		}
	}
	return variants
}

// SelectTopN returns the first n variants for downstream registry querying.
// This is a size and cost control, not a ranking by risk.
func SelectTopN(variants []string, n int) []string {
	if n <= 0 {
		n = DefaultTopN
	}
	if len(variants) <= n {
		return variants
	}
	return variants[:n]
}
