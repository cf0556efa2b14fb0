package cycloid

import "math"

// AssemblePath converts a sampled profile and the design's output-pin
// hole placement into a single vector path. The disc outline is one
// closed polyline subpath; each output-pin hole is a pair of
// complementary half-circle arcs wound clockwise, opposite the outline.
// Combined with the even-odd rule carried on the returned path, the
// holes visually void the disc without boolean geometry.
//
// The hole radius is outputPinRadius + eccentricity + holeTolerance: the
// clearance must cover the orbit of the output pins relative to the
// disc, not merely the pins themselves.
func AssemblePath(p Parameters, pts []ProfilePoint) *Path {
	path := NewPath()
	path.Rule = FillRuleEvenOdd

	if len(pts) > 0 {
		path.MoveTo(pts[0].Pos.X, pts[0].Pos.Y)
		for _, pt := range pts[1:] {
			path.LineTo(pt.Pos.X, pt.Pos.Y)
		}
		path.Close()
	}

	holeRadius := p.OutputPinRadius + p.Eccentricity + p.HoleTolerance
	if p.OutputPinCount <= 0 || holeRadius <= 0 {
		return path
	}

	for i := 0; i < p.OutputPinCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(p.OutputPinCount)
		center := Pt(p.OutputPinCircleRadius, 0).Rotate(angle)
		addHole(path, center, holeRadius)
	}
	return path
}

// addHole emits one hole as two reversed half-circle arcs.
func addHole(path *Path, center Point, radius float64) {
	path.MoveTo(center.X+radius, center.Y)
	path.Arc(center.X, center.Y, radius, 0, -math.Pi)
	path.Arc(center.X, center.Y, radius, -math.Pi, -2*math.Pi)
	path.Close()
}
