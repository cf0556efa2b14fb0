package cycloid

import (
	"math"
	"testing"
)

func assembleParams() Parameters {
	p := defaultParams()
	p.Resolution = 360
	p.OutputPinCount = 6
	p.OutputPinRadius = 4
	p.OutputPinCircleRadius = 25
	return p
}

// signedArea computes the shoelace area of a closed polyline; positive
// means counter-clockwise winding.
func signedArea(pts []Point) float64 {
	var area float64
	for i := 0; i+1 < len(pts); i++ {
		area += pts[i].Cross(pts[i+1])
	}
	return area / 2
}

func TestAssemblePath_EvenOddContract(t *testing.T) {
	p := assembleParams()
	path := AssemblePath(p, Profile(p))
	if path.Rule != FillRuleEvenOdd {
		t.Fatalf("assembled path rule = %v, want even-odd", path.Rule)
	}
}

func TestAssemblePath_SubpathCount(t *testing.T) {
	p := assembleParams()
	path := AssemblePath(p, Profile(p))

	subs := path.Flatten(0)
	if len(subs) != 1+p.OutputPinCount {
		t.Fatalf("got %d subpaths, want outline plus %d holes", len(subs), p.OutputPinCount)
	}
}

func TestAssemblePath_HolesWindAgainstOutline(t *testing.T) {
	p := assembleParams()
	path := AssemblePath(p, Profile(p))
	subs := path.Flatten(0)

	outline := signedArea(subs[0])
	if outline <= 0 {
		t.Fatalf("outline area = %v, want counter-clockwise (positive)", outline)
	}
	for i, hole := range subs[1:] {
		if a := signedArea(hole); a >= 0 {
			t.Errorf("hole %d area = %v, want clockwise (negative)", i, a)
		}
	}
}

func TestAssemblePath_HoleClearance(t *testing.T) {
	p := assembleParams()
	path := AssemblePath(p, Profile(p))
	subs := path.Flatten(0.01)

	// First hole is centered at angle 0 on the output pin circle; its
	// radius must cover pin, orbit, and fit clearance.
	wantRadius := p.OutputPinRadius + p.Eccentricity + p.HoleTolerance
	center := Pt(p.OutputPinCircleRadius, 0)
	for i, pt := range subs[1] {
		if d := pt.Distance(center); math.Abs(d-wantRadius) > 0.05 {
			t.Fatalf("hole point %d at %v from center, want ≈ %v", i, d, wantRadius)
		}
	}
}

func TestAssemblePath_NoHolesWithoutOutputPins(t *testing.T) {
	p := assembleParams()
	p.OutputPinCount = 0
	path := AssemblePath(p, Profile(p))
	if subs := path.Flatten(0); len(subs) != 1 {
		t.Errorf("got %d subpaths, want outline only", len(subs))
	}
}

func TestAssemblePath_EmptyProfile(t *testing.T) {
	p := assembleParams()
	path := AssemblePath(p, nil)
	subs := path.Flatten(0)
	if len(subs) != p.OutputPinCount {
		t.Errorf("got %d subpaths, want %d holes and no outline", len(subs), p.OutputPinCount)
	}
}
