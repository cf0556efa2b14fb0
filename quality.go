package cycloid

import (
	"fmt"
	"math"
)

// Fix is a corrective parameter proposal attached to a quality warning.
// Params is a complete, independent copy of the design with the
// correction applied; it never shares state with the original.
type Fix struct {
	// Label is a short human-readable handle for the fix.
	Label string `json:"label"`
	// Description explains what the fix changes and why.
	Description string `json:"description"`
	// Params is the full corrected design.
	Params Parameters `json:"params"`
}

// Report is the result of the heuristic design-rule check.
type Report struct {
	// Valid is true when no rule produced a warning.
	Valid bool `json:"valid"`
	// Warnings lists rule violations in evaluation order.
	Warnings []string `json:"warnings"`
	// Fixes lists corrective proposals in evaluation order, de-duplicated
	// by label and full parameter equality.
	Fixes []Fix `json:"fixes"`
}

// CheckQuality evaluates closed-form manufacturability heuristics over a
// design. Rules are advisory and independent: all of them run even after
// one fails, and the engine never refuses a design the rules reject.
//
// The wall-thickness rule uses a conservative closed-form inner-radius
// estimate, not the sampled profile minimum.
func CheckQuality(p Parameters) Report {
	rep := Report{Valid: true}
	n := float64(p.PinCount)

	// Eccentricity safety: past R/(1.5N) the lobes sharpen into cusps.
	maxSafe := p.PinCircleRadius / (1.5 * n)
	if p.Eccentricity > maxSafe {
		rep.warn("eccentricity %.2f exceeds safe maximum %.2f for this pin circle", p.Eccentricity, maxSafe)

		reduced := p
		reduced.Eccentricity = round2(p.PinCircleRadius / (2 * n))
		rep.propose(Fix{
			Label:       "reduce eccentricity",
			Description: fmt.Sprintf("lower eccentricity to %.2f mm to keep the lobe profile smooth", reduced.Eccentricity),
			Params:      reduced,
		})

		enlarged := p
		enlarged.PinCircleRadius = round1(p.Eccentricity * 2 * n)
		rep.propose(Fix{
			Label:       "enlarge pin circle",
			Description: fmt.Sprintf("grow the pin circle to %.1f mm so the current eccentricity is safe", enlarged.PinCircleRadius),
			Params:      enlarged,
		})
	}

	// Pin crowding: adjacent ring pins must not overlap.
	spacing := 2 * math.Pi * p.PinCircleRadius / n
	if 2*p.PinRadius > 0.95*spacing {
		rep.warn("pins of radius %.2f crowd the %.2f mm spacing on the pin circle", p.PinRadius, spacing)

		slimmer := p
		slimmer.PinRadius = 0.9 * spacing / 2
		rep.propose(Fix{
			Label:       "shrink pins",
			Description: fmt.Sprintf("reduce pin radius to %.2f mm to restore clearance between pins", slimmer.PinRadius),
			Params:      slimmer,
		})
	}

	// Wall thickness: conservative inner-radius estimate vs the bore.
	approxInner := p.PinCircleRadius - n*p.Eccentricity - p.PinRadius
	if approxInner < p.HoleRadius+1.5 {
		rep.warn("center bore %.2f leaves under 1.5 mm of wall at the estimated inner radius %.2f", p.HoleRadius, approxInner)

		if approxInner-2.0 > 0 {
			bored := p
			bored.HoleRadius = math.Max(2, approxInner-2.0)
			rep.propose(Fix{
				Label:       "shrink center bore",
				Description: fmt.Sprintf("reduce the bore to %.2f mm to keep a machinable wall", bored.HoleRadius),
				Params:      bored,
			})
		}
	}

	return rep
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	r.Valid = false
}

// propose appends a fix unless an identical (label, params) pair is
// already present.
func (r *Report) propose(f Fix) {
	for _, existing := range r.Fixes {
		if existing.Label == f.Label && existing.Params == f.Params {
			return
		}
	}
	r.Fixes = append(r.Fixes, f)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
