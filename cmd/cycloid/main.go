// Command cycloid computes a cycloidal disc design from the command line
// and writes DXF and PNG artifacts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/render"
)

func main() {
	var (
		pinCount         = flag.Int("pins", 12, "number of ring pins")
		pinCircleRadius  = flag.Float64("pin-circle", 50, "pin circle radius (mm)")
		pinRadius        = flag.Float64("pin-radius", 5, "ring pin radius (mm)")
		eccentricity     = flag.Float64("eccentricity", 1.5, "eccentricity (mm)")
		holeRadius       = flag.Float64("bore", 10, "center bore radius (mm)")
		resolution       = flag.Int("resolution", cycloid.DefaultResolution, "profile sample density")
		tolerance        = flag.Float64("tolerance", 0.15, "machining clearance (mm)")
		holeTolerance    = flag.Float64("hole-tolerance", 0.1, "bore and hole clearance (mm)")
		outputPins       = flag.Int("output-pins", 6, "number of output pins")
		outputPinRadius  = flag.Float64("output-pin-radius", 4, "output pin radius (mm)")
		outputPinCircle  = flag.Float64("output-pin-circle", 25, "output pin circle radius (mm)")
		outputFixed      = flag.Bool("output-fixed", false, "hold the output stationary instead of the housing")
		dxfOut           = flag.String("dxf", "", "write profile DXF to this file")
		pngOut           = flag.String("png", "", "write preview PNG to this file")
		pngSize          = flag.Int("png-size", 800, "preview image size in pixels")
	)
	flag.Parse()

	params := cycloid.Parameters{
		PinCount:              *pinCount,
		PinCircleRadius:       *pinCircleRadius,
		PinRadius:             *pinRadius,
		Eccentricity:          *eccentricity,
		HoleRadius:            *holeRadius,
		Resolution:            *resolution,
		Tolerance:             *tolerance,
		HoleTolerance:         *holeTolerance,
		OutputPinCount:        *outputPins,
		OutputPinRadius:       *outputPinRadius,
		OutputPinCircleRadius: *outputPinCircle,
	}
	if *outputFixed {
		params.DriveConfig = cycloid.OutputFixed
	}

	metrics := cycloid.Analyze(params)
	fmt.Printf("lobes: %d  reduction: %d:1\n", params.Lobes(), params.ReductionRatio())
	fmt.Printf("max pressure angle: %.2f deg\n", metrics.MaxPressureAngle)
	if metrics.Undercut() {
		fmt.Printf("min curvature radius: UNDERCUT (%.3f mm)\n", metrics.MinCurvatureRadius)
	} else {
		fmt.Printf("min curvature radius: %.3f mm\n", metrics.MinCurvatureRadius)
	}

	report := cycloid.CheckQuality(params)
	if report.Valid {
		fmt.Println("quality: ok")
	} else {
		for _, warning := range report.Warnings {
			fmt.Printf("warning: %s\n", warning)
		}
		for _, fix := range report.Fixes {
			fmt.Printf("  fix (%s): %s\n", fix.Label, fix.Description)
		}
	}

	if *dxfOut != "" {
		writeDXF(*dxfOut, params)
	}
	if *pngOut != "" {
		writePNG(*pngOut, params, *pngSize)
	}
}

func writeDXF(path string, params cycloid.Parameters) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := cycloid.ExportDXF(f, cycloid.Profile(params), params); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	log.Printf("DXF saved to %s", path)
}

func writePNG(path string, params cycloid.Parameters, size int) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	vec := cycloid.AssemblePath(params, cycloid.Profile(params))
	if err := render.WritePNG(f, vec, size, size); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)", path, size, size)
}
