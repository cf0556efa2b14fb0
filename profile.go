package cycloid

import "math"

// degenerateTangent is the tangent magnitude below which a sample sits on
// a cusp of the pin-center locus and has no usable normal.
const degenerateTangent = 1e-6

// locusAt evaluates the pin-center locus (an epitrochoid) and its
// derivative at parameter t.
func locusAt(p Parameters, t float64) (pos, tangent Point) {
	r := p.PinCircleRadius
	e := p.Eccentricity
	n := float64(p.PinCount)

	pos = Point{
		X: r*math.Cos(t) - e*math.Cos(n*t),
		Y: r*math.Sin(t) - e*math.Sin(n*t),
	}
	tangent = Point{
		X: -r*math.Sin(t) + e*n*math.Sin(n*t),
		Y: r*math.Cos(t) - e*n*math.Cos(n*t),
	}
	return pos, tangent
}

// inwardNormal returns the unit normal pointing toward the disc interior
// for the given curve tangent. The locus winds counterclockwise, so
// (-dy, dx) faces the origin.
func inwardNormal(tangent Point) Point {
	return Point{X: -tangent.Y, Y: tangent.X}.Normalize()
}

// Profile samples the disc boundary using the design's manufacturing
// tolerance. See ProfileOffset.
func Profile(p Parameters) []ProfilePoint {
	return ProfileOffset(p, p.Tolerance)
}

// ProfileOffset samples the disc boundary curve, contracted inward by
// tol millimeters of machining clearance. tol = 0 yields the theoretical
// zero-clearance curve, useful as a comparison baseline.
//
// The rotation parameter t covers [0, 2π] in Resolution steps, giving at
// most Resolution+1 samples. Samples whose locus tangent is shorter than
// 1e-6 sit on a cusp and are dropped rather than substituted, so the
// result may be shorter than Resolution+1.
//
// ProfileOffset is pure: identical inputs produce an identical sequence.
func ProfileOffset(p Parameters, tol float64) []ProfilePoint {
	steps := p.Resolution
	points := make([]ProfilePoint, 0, steps+1)
	offset := p.PinRadius + tol

	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		pos, tangent := locusAt(p, t)
		if tangent.Length() < degenerateTangent {
			continue
		}
		normal := inwardNormal(tangent)
		points = append(points, ProfilePoint{
			Pos:    pos.Add(normal.Mul(offset)),
			Normal: normal,
		})
	}
	return points
}
