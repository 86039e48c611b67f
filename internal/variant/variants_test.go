package variant

import (
	"strings"
	"testing"

	"github.com/namelens/namelens/internal/model"
)

func TestBuildVariantSet_FormOrder(t *testing.T) {
	set := BuildVariantSet("My Tool")

	if set.Canonical != "my-tool" {
		t.Errorf("canonical = %q, want %q", set.Canonical, "my-tool")
	}

	wantKinds := []model.VariantKind{
		model.VariantOriginal, model.VariantLower, model.VariantNoSpace,
		model.VariantHyphenated, model.VariantUnderscored, model.VariantStripped,
		model.VariantPhonetic, model.VariantHomoglyphSafe,
	}
	if len(set.Forms) != len(wantKinds) {
		t.Fatalf("got %d forms, want %d: %v", len(set.Forms), len(wantKinds), set.Forms)
	}
	for i, kind := range wantKinds {
		if set.Forms[i].Kind != kind {
			t.Errorf("form[%d].Kind = %q, want %q", i, set.Forms[i].Kind, kind)
		}
	}

	if set.Forms[4].Value != "my_tool" {
		t.Errorf("underscored form = %q, want %q", set.Forms[4].Value, "my_tool")
	}
	if set.Forms[6].Value != "M TL" {
		t.Errorf("phonetic form = %q, want %q", set.Forms[6].Value, "M TL")
	}
}

func TestBuildVariantSet_Dedupe(t *testing.T) {
	set := BuildVariantSet("tool")
	seen := map[model.VariantForm]bool{}
	for _, f := range set.Forms {
		if seen[f] {
			t.Errorf("duplicate form %+v", f)
		}
		seen[f] = true
	}
}

func TestBuildVariantSet_HomoglyphWarning(t *testing.T) {
	// "silo" has eight confusable substitutions, above the high threshold
	set := BuildVariantSet("silo")
	if len(set.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(set.Warnings))
	}
	w := set.Warnings[0]
	if w.Code != model.WarnHomoglyphRisk {
		t.Errorf("warning code = %q", w.Code)
	}
	if w.Severity != model.WarningHigh {
		t.Errorf("warning severity = %q, want high", w.Severity)
	}
	if !strings.Contains(w.Message, "…") {
		t.Errorf("message should list the first three variants with an ellipsis: %q", w.Message)
	}
}

func TestBuildVariantSet_LowRiskWarning(t *testing.T) {
	// "ax" has exactly two confusable substitutions, below the threshold
	set := BuildVariantSet("ax")
	if len(set.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(set.Warnings))
	}
	if set.Warnings[0].Severity != model.WarningWarn {
		t.Errorf("severity = %q, want warn", set.Warnings[0].Severity)
	}
}

func TestBuildVariantSet_NoWarningWithoutConfusables(t *testing.T) {
	set := BuildVariantSet("xy")
	if len(set.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", set.Warnings)
	}
}
