package cycloid

// DriveConfig selects which member of the drive is held stationary.
type DriveConfig int

const (
	// HousingFixed holds the pin housing stationary; the output shaft
	// turns at 1/(N-1) of input speed, opposite the input direction.
	HousingFixed DriveConfig = iota
	// OutputFixed holds the output stationary and takes motion from the
	// housing, giving a ratio of 1/N in the input direction.
	OutputFixed
)

// String returns the configuration name.
func (dc DriveConfig) String() string {
	switch dc {
	case HousingFixed:
		return "housing_fixed"
	case OutputFixed:
		return "output_fixed"
	}
	return "unknown"
}

// Parameters describes a cycloidal drive design. All lengths are in
// millimeters. The value is treated as immutable: every function in this
// package takes Parameters by value and never modifies the caller's copy.
//
// The engine does not clamp or default any field; callers supply a fully
// populated record. CheckQuality reports (but does not enforce) values
// outside sensible manufacturing ranges.
type Parameters struct {
	// PinCount is the number of ring pins N. The disc carries N-1 lobes.
	PinCount int `json:"pin_count"`
	// PinCircleRadius R is the radius of the circle the ring pin centers
	// lie on.
	PinCircleRadius float64 `json:"pin_circle_radius"`
	// PinRadius r is the radius of each ring pin.
	PinRadius float64 `json:"pin_radius"`
	// Eccentricity E is the offset of the disc center from the input axis.
	Eccentricity float64 `json:"eccentricity"`
	// HoleRadius is the radius of the center bore.
	HoleRadius float64 `json:"hole_radius"`
	// Resolution is the number of parameter steps used when sampling the
	// profile curve. The sampled sequence has at most Resolution+1 points.
	Resolution int `json:"resolution"`
	// Tolerance contracts the profile inward to leave machining clearance.
	Tolerance float64 `json:"tolerance"`
	// HoleTolerance expands the center bore and the output pin holes.
	HoleTolerance float64 `json:"hole_tolerance"`
	// OutputPinCount is the number of output pins (and disc holes).
	OutputPinCount int `json:"output_pin_count"`
	// OutputPinRadius is the radius of each output pin.
	OutputPinRadius float64 `json:"output_pin_radius"`
	// OutputPinCircleRadius is the radius of the circle the output pin
	// holes are centered on.
	OutputPinCircleRadius float64 `json:"output_pin_circle_radius"`
	// DriveConfig selects the stationary member.
	DriveConfig DriveConfig `json:"drive_config"`
}

// Lobes returns the number of lobes on the disc.
func (p Parameters) Lobes() int {
	return p.PinCount - 1
}

// ReductionRatio returns the speed reduction of the drive for the
// configured stationary member. Negative means the output turns opposite
// the input.
func (p Parameters) ReductionRatio() int {
	if p.DriveConfig == OutputFixed {
		return p.PinCount
	}
	return -(p.PinCount - 1)
}

// ProfilePoint is one sample of the disc boundary. Position and the unit
// inward normal are filled by Profile; Analyze additionally fills the
// physics attributes. Values are recomputed per call and never shared
// between calls.
type ProfilePoint struct {
	// Pos is the sample position in the disc's local frame.
	Pos Point `json:"pos"`
	// Normal is the unit inward normal at the sample.
	Normal Point `json:"normal"`
	// PressureAngle is the engagement pressure angle in degrees.
	PressureAngle float64 `json:"pressure_angle,omitempty"`
	// CurvatureRadius is the net surface curvature radius after the
	// pin-radius tool offset, in millimeters. Negative means undercut.
	CurvatureRadius float64 `json:"curvature_radius,omitempty"`
}
