package cycloid

import (
	"math"
	"reflect"
	"testing"
)

// defaultParams is the reference design used across tests.
func defaultParams() Parameters {
	return Parameters{
		PinCount:        12,
		PinCircleRadius: 50,
		PinRadius:       5,
		Eccentricity:    1.5,
		HoleRadius:      10,
		Resolution:      720,
		Tolerance:       0.15,
		HoleTolerance:   0.1,
	}
}

func TestProfile_Deterministic(t *testing.T) {
	p := defaultParams()
	first := Profile(p)
	second := Profile(p)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical parameters must produce identical point sequences")
	}
}

func TestProfile_DefaultScenarioBounds(t *testing.T) {
	p := defaultParams()
	points := Profile(p)

	if len(points) == 0 {
		t.Fatal("empty profile")
	}
	if len(points) > p.Resolution+1 {
		t.Errorf("profile has %d points, want at most %d", len(points), p.Resolution+1)
	}

	const eps = 1e-9
	lo := p.PinCircleRadius - p.PinRadius - p.Eccentricity - p.Tolerance - eps
	hi := p.PinCircleRadius + p.PinRadius + p.Eccentricity + eps
	for i, pt := range points {
		d := pt.Pos.Length()
		if d < lo || d > hi {
			t.Fatalf("point %d at radius %v, want within [%v, %v]", i, d, lo, hi)
		}
	}
}

func TestProfileOffset_EnclosesToleranceCurve(t *testing.T) {
	p := defaultParams()
	p.Resolution = 360
	theoretical := ProfileOffset(p, 0)
	offset := ProfileOffset(p, p.Tolerance)

	if len(theoretical) != len(offset) {
		t.Fatalf("sample counts diverge: %d vs %d", len(theoretical), len(offset))
	}
	for i := range theoretical {
		// Each offset point sits Tolerance further along the same inward
		// normal...
		moved := theoretical[i].Pos.Distance(offset[i].Pos)
		if math.Abs(moved-p.Tolerance) > 1e-9 {
			t.Fatalf("point %d moved %v, want %v", i, moved, p.Tolerance)
		}
		// ...which must contract the curve, not grow it.
		if offset[i].Pos.Length() >= theoretical[i].Pos.Length() {
			t.Fatalf("point %d: offset radius %v not inside theoretical radius %v",
				i, offset[i].Pos.Length(), theoretical[i].Pos.Length())
		}
	}
}

func TestProfile_UnitInwardNormals(t *testing.T) {
	p := defaultParams()
	p.Resolution = 90
	for i, pt := range Profile(p) {
		if math.Abs(pt.Normal.Length()-1) > 1e-9 {
			t.Fatalf("point %d normal length %v, want 1", i, pt.Normal.Length())
		}
		// Inward means the normal has a component toward the origin.
		if pt.Normal.Dot(pt.Pos) >= 0 {
			t.Fatalf("point %d normal %v points away from origin at %v", i, pt.Normal, pt.Pos)
		}
	}
}

func TestProfile_MinimumResolution(t *testing.T) {
	p := defaultParams()
	p.Resolution = 3
	points := Profile(p)
	if len(points) == 0 {
		t.Fatal("resolution=3 must still yield a non-empty sequence")
	}
	if len(points) > 4 {
		t.Errorf("resolution=3 yielded %d points, want at most 4", len(points))
	}
}

func TestProfileOffset_DropsCuspSamples(t *testing.T) {
	// R = E·N makes the tangent vanish at t=0 and t=2π; those samples
	// must be dropped, not substituted.
	p := Parameters{
		PinCount:        4,
		PinCircleRadius: 8,
		PinRadius:       1,
		Eccentricity:    2,
		Resolution:      8,
	}
	points := ProfileOffset(p, 0)
	if len(points) >= p.Resolution+1 {
		t.Errorf("cusp samples not dropped: got %d points for resolution %d", len(points), p.Resolution)
	}
	if len(points) == 0 {
		t.Error("dropping cusps must not empty the profile")
	}
}
