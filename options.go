package cycloid

// DesignerOption configures a Designer during creation.
// Use functional options to customize process-wide defaults.
//
// Example:
//
//	// Library defaults
//	d := cycloid.NewDesigner()
//
//	// Coarser sampling for quick previews
//	d := cycloid.NewDesigner(cycloid.WithDefaultResolution(180))
type DesignerOption func(*Designer)

// DefaultResolution is the sample density used when a design leaves
// Resolution unset.
const DefaultResolution = 720

// Designer runs the full design pipeline with process-wide defaults
// applied. It holds configuration only, never user geometry, so a single
// Designer is safe to share across concurrent callers.
type Designer struct {
	resolution int
	flattenTol float64
}

// NewDesigner creates a Designer with the given options.
func NewDesigner(opts ...DesignerOption) *Designer {
	d := &Designer{
		resolution: DefaultResolution,
		flattenTol: FlattenTolerance,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithDefaultResolution sets the sample density applied to designs that
// leave Resolution at zero.
func WithDefaultResolution(n int) DesignerOption {
	return func(d *Designer) {
		if n >= 3 {
			d.resolution = n
		}
	}
}

// WithFlattenTolerance sets the curve-flattening tolerance used when
// assembling paths for rasterization.
func WithFlattenTolerance(tol float64) DesignerOption {
	return func(d *Designer) {
		if tol > 0 {
			d.flattenTol = tol
		}
	}
}

// Normalize fills defaulted fields of a design without touching anything
// the caller set explicitly.
func (d *Designer) Normalize(p Parameters) Parameters {
	if p.Resolution == 0 {
		p.Resolution = d.resolution
	}
	return p
}

// FlattenTolerance returns the configured curve-flattening tolerance.
func (d *Designer) FlattenTolerance() float64 {
	return d.flattenTol
}

// Profile samples the disc boundary with defaults applied.
func (d *Designer) Profile(p Parameters) []ProfilePoint {
	return Profile(d.Normalize(p))
}

// Analyze runs the physics analysis with defaults applied.
func (d *Designer) Analyze(p Parameters) Metrics {
	return Analyze(d.Normalize(p))
}

// CheckQuality runs the design-rule check. Quality heuristics are
// closed-form over the parameters and need no normalization.
func (d *Designer) CheckQuality(p Parameters) Report {
	return CheckQuality(p)
}

// AssemblePath samples the profile and assembles the renderable path
// with defaults applied.
func (d *Designer) AssemblePath(p Parameters) *Path {
	p = d.Normalize(p)
	return AssemblePath(p, Profile(p))
}
