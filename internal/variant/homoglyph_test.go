package variant

import (
	"sort"
	"testing"
)

func TestHomoglyphVariants(t *testing.T) {
	got := HomoglyphVariants("so")
	// s -> 5,$ and o -> 0, one position at a time
	want := []string{"$o", "5o", "s0"}
	if len(got) != len(want) {
		t.Fatalf("HomoglyphVariants(\"so\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variant[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHomoglyphVariants_SortedAndDeduped(t *testing.T) {
	got := HomoglyphVariants("silo")
	if !sort.StringsAreSorted(got) {
		t.Errorf("variants not sorted: %v", got)
	}
	seen := map[string]bool{}
	for _, v := range got {
		if v == "silo" {
			t.Errorf("original string leaked into variants")
		}
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
}

func TestHomoglyphVariants_NoConfusables(t *testing.T) {
	if got := HomoglyphVariants("xy"); len(got) != 0 {
		t.Errorf("HomoglyphVariants(\"xy\") = %v, want none", got)
	}
}

func TestAreConfusable(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Tool", "tool", true},  // case-insensitive match
		{"tool", "t0ol", true},  // homoglyph substitution
		{"tool", "t00l", false}, // two substitutions is out of scope
		{"tool", "fool", false},
	}
	for _, c := range cases {
		if got := AreConfusable(c.a, c.b); got != c.want {
			t.Errorf("AreConfusable(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
