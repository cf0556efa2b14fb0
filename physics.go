package cycloid

import "math"

// Metrics aggregates the physics analysis of a disc profile.
type Metrics struct {
	// MinCurvatureRadius is the signed net curvature radius of smallest
	// magnitude found along the profile, in millimeters. Values at or
	// below zero mean the profile is undercut: no cutting tool of the
	// configured pin radius can mill the cavity.
	MinCurvatureRadius float64 `json:"min_curvature_radius"`
	// MaxPressureAngle is the largest engagement pressure angle along the
	// profile, in degrees. Values above 45° indicate poor transmission
	// efficiency and a risk of self-locking.
	MaxPressureAngle float64 `json:"max_pressure_angle"`
	// Points is the sampled profile enriched with per-sample physics
	// attributes, reusable by callers that also need the geometry.
	Points []ProfilePoint `json:"points"`
}

// Undercut reports whether the profile cannot be milled at the
// configured pin radius.
func (m Metrics) Undercut() bool {
	return m.MinCurvatureRadius <= 0
}

// Analyze samples the profile curve and computes pressure angle and net
// surface curvature per sample, tracking the extrema that drive
// manufacturability and efficiency verdicts.
//
// Analyze walks the same parameter grid as Profile and shares its
// degenerate-sample policy: cusp samples are dropped. An undercut
// extremum is reported as data, never as an error.
func Analyze(p Parameters) Metrics {
	r := p.PinCircleRadius
	e := p.Eccentricity
	n := float64(p.PinCount)
	steps := p.Resolution
	offset := p.PinRadius + p.Tolerance

	m := Metrics{
		MinCurvatureRadius: math.MaxFloat64,
		Points:             make([]ProfilePoint, 0, steps+1),
	}

	// Pressure angle coefficient; constant across the profile.
	k := e * n / r

	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		pos, tangent := locusAt(p, t)
		if tangent.Length() < degenerateTangent {
			continue
		}
		normal := inwardNormal(tangent)

		angle := pressureAngle(k, n, t)
		if angle > m.MaxPressureAngle {
			m.MaxPressureAngle = angle
		}

		curvature := surfaceCurvature(r, e, n, t) - p.PinRadius
		// Smallest magnitude wins; the sign is kept so undercut survives
		// into the verdict.
		if !math.IsInf(curvature, 0) && !math.IsNaN(curvature) &&
			math.Abs(curvature) < math.Abs(m.MinCurvatureRadius) {
			m.MinCurvatureRadius = curvature
		}

		m.Points = append(m.Points, ProfilePoint{
			Pos:             pos.Add(normal.Mul(offset)),
			Normal:          normal,
			PressureAngle:   angle,
			CurvatureRadius: curvature,
		})
	}
	return m
}

// pressureAngle returns the engagement pressure angle in degrees at
// parameter t for coefficient k = E·N/R.
func pressureAngle(k, n, t float64) float64 {
	rad := math.Atan2(
		math.Abs(k*math.Sin(n*t)),
		math.Abs(1-k*math.Cos(n*t)),
	)
	return rad * 180 / math.Pi
}

// surfaceCurvature returns the epitrochoid's curvature radius ρ at
// parameter t, before the pin-radius tool offset.
func surfaceCurvature(r, e, n, t float64) float64 {
	phi := (n - 1) * t
	cos := math.Cos(phi)
	num := math.Pow(r*r+e*e*n*n-2*r*e*n*cos, 1.5)
	den := r*r + e*e*n*n*n - r*e*n*(n+1)*cos
	return num / den
}
