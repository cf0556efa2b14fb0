package cycloid

import (
	"strings"
	"testing"
)

func TestCheckQuality_CleanDesign(t *testing.T) {
	rep := CheckQuality(defaultParams())
	if !rep.Valid {
		t.Fatalf("expected valid report, got warnings %v", rep.Warnings)
	}
	if len(rep.Warnings) != 0 || len(rep.Fixes) != 0 {
		t.Errorf("clean design produced %d warnings and %d fixes", len(rep.Warnings), len(rep.Fixes))
	}
}

func TestCheckQuality_HeavyDutyScenario(t *testing.T) {
	p := Parameters{
		PinCount:        8,
		PinCircleRadius: 100,
		PinRadius:       15,
		Eccentricity:    4.0,
		HoleRadius:      25,
		Resolution:      720,
	}
	rep := CheckQuality(p)
	for _, w := range rep.Warnings {
		if strings.Contains(w, "bore") {
			t.Errorf("unexpected wall-thickness warning: %s", w)
		}
	}
	if !rep.Valid {
		t.Errorf("heavy-duty design should pass, got %v", rep.Warnings)
	}
}

func TestCheckQuality_ExcessiveEccentricity(t *testing.T) {
	p := defaultParams()
	p.Eccentricity = 3.5 // safe max for N=12, R=50 is 2.78

	rep := CheckQuality(p)
	if rep.Valid {
		t.Fatal("excessive eccentricity must invalidate the design")
	}
	if len(rep.Warnings) == 0 || !strings.Contains(rep.Warnings[0], "eccentricity") {
		t.Fatalf("missing eccentricity warning in %v", rep.Warnings)
	}
	if len(rep.Fixes) < 2 {
		t.Fatalf("expected both corrective proposals, got %d", len(rep.Fixes))
	}

	// Applying the first fix must clear the eccentricity rule.
	fixed := CheckQuality(rep.Fixes[0].Params)
	for _, w := range fixed.Warnings {
		if strings.Contains(w, "eccentricity") {
			t.Errorf("first fix did not clear the eccentricity rule: %s", w)
		}
	}

	// Proposed values follow the rule's rounding.
	if got := rep.Fixes[0].Params.Eccentricity; got != 2.08 {
		t.Errorf("reduced eccentricity = %v, want 2.08", got)
	}
	if got := rep.Fixes[1].Params.PinCircleRadius; got != 84.0 {
		t.Errorf("enlarged pin circle = %v, want 84.0", got)
	}
}

func TestCheckQuality_PinCrowding(t *testing.T) {
	p := Parameters{
		PinCount:        12,
		PinCircleRadius: 20,
		PinRadius:       5, // spacing is 10.47 mm, pins need 10
		HoleRadius:      5,
		Resolution:      360,
	}
	rep := CheckQuality(p)
	if rep.Valid {
		t.Fatal("crowded pins must invalidate the design")
	}

	var fix *Fix
	for i := range rep.Fixes {
		if rep.Fixes[i].Label == "shrink pins" {
			fix = &rep.Fixes[i]
		}
	}
	if fix == nil {
		t.Fatalf("no pin fix in %v", rep.Fixes)
	}
	fixed := CheckQuality(fix.Params)
	for _, w := range fixed.Warnings {
		if strings.Contains(w, "crowd") {
			t.Errorf("fix did not clear crowding: %s", w)
		}
	}
}

func TestCheckQuality_ThinWall(t *testing.T) {
	p := defaultParams()
	p.HoleRadius = 30 // approx inner radius is 27

	rep := CheckQuality(p)
	if rep.Valid {
		t.Fatal("thin wall must invalidate the design")
	}
	var fix *Fix
	for i := range rep.Fixes {
		if rep.Fixes[i].Label == "shrink center bore" {
			fix = &rep.Fixes[i]
		}
	}
	if fix == nil {
		t.Fatalf("no bore fix in %v", rep.Fixes)
	}
	if fix.Params.HoleRadius != 25 {
		t.Errorf("proposed bore = %v, want 25", fix.Params.HoleRadius)
	}
	if !CheckQuality(fix.Params).Valid {
		t.Error("bore fix did not produce a valid design")
	}
}

func TestCheckQuality_RulesRunIndependently(t *testing.T) {
	// Violate eccentricity and wall thickness at once; both must report.
	p := defaultParams()
	p.Eccentricity = 3.5
	p.HoleRadius = 30

	rep := CheckQuality(p)
	if len(rep.Warnings) < 2 {
		t.Fatalf("expected at least 2 warnings, got %v", rep.Warnings)
	}
}

func TestCheckQuality_FixesAreIndependentCopies(t *testing.T) {
	p := defaultParams()
	p.Eccentricity = 3.5
	rep := CheckQuality(p)

	if len(rep.Fixes) == 0 {
		t.Fatal("no fixes")
	}
	fix := rep.Fixes[0]
	if fix.Params == p {
		t.Error("fix must differ from the original parameters")
	}
	// The untouched fields carry over unchanged.
	if fix.Params.PinCount != p.PinCount || fix.Params.HoleRadius != p.HoleRadius {
		t.Error("fix must be a complete parameter set, not a delta")
	}
	// Original is untouched.
	if p.Eccentricity != 3.5 {
		t.Error("original parameters were modified")
	}
}

func TestReport_ProposeDeduplicates(t *testing.T) {
	var rep Report
	f := Fix{Label: "a", Params: defaultParams()}
	rep.propose(f)
	rep.propose(f)
	if len(rep.Fixes) != 1 {
		t.Errorf("duplicate fix kept: %d entries", len(rep.Fixes))
	}

	other := f
	other.Params.Eccentricity++
	rep.propose(other)
	if len(rep.Fixes) != 2 {
		t.Errorf("distinct fix dropped: %d entries", len(rep.Fixes))
	}
}
