// Package cycloid provides the geometry and physics engine for designing
// cycloidal reduction-gear drives.
//
// # Overview
//
// A cycloidal drive transmits torque through a lobed disc orbiting
// eccentrically inside a ring of fixed pins. The disc boundary is an
// epitrochoid offset curve; its shape, together with the pin geometry,
// determines both manufacturability and transmission efficiency.
//
// The package derives the disc profile, analyzes it (pressure angle,
// surface curvature), checks design heuristics with corrective parameter
// suggestions, assembles a renderable vector path, and exports a minimal
// DXF drawing.
//
// # Quick Start
//
//	import "github.com/gearkit/cycloid"
//
//	params := cycloid.Parameters{
//	    PinCount:        12,
//	    PinCircleRadius: 50,
//	    PinRadius:       5,
//	    Eccentricity:    1.5,
//	    HoleRadius:      10,
//	    Resolution:      720,
//	    Tolerance:       0.15,
//	}
//
//	points := cycloid.Profile(params)
//	metrics := cycloid.Analyze(params)
//	report := cycloid.CheckQuality(params)
//
// # Architecture
//
// The engine is a set of pure functions over an immutable Parameters
// value: identical inputs always produce identical outputs, nothing is
// cached or persisted, and a full recompute is cheap. Sub-packages add
// the surrounding tooling:
//   - render: software rasterizer producing PNG previews
//   - advisory: client for the remote design-advisory service
//   - store: SQLite-backed parameter presets
//
// # Coordinate System
//
// The disc's local frame: origin at the disc center, X right, Y up,
// angles in radians measured counter-clockwise from +X. All lengths
// are millimeters.
package cycloid

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
