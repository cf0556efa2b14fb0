package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gearkit/cycloid"
)

// supersample is the oversampling factor used before downscaling; the
// scanline filler is unantialiased, so edge quality comes from here.
const supersample = 4

// margin is the fraction of the canvas left blank around the drawing.
const margin = 0.05

var (
	// Background is the canvas color behind the disc.
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// DiscColor is the fill color of the disc body.
	DiscColor = color.RGBA{R: 0x5a, G: 0x6e, B: 0x8c, A: 0xff}
)

// Preview rasterizes an assembled disc path into a width×height image.
// The path's fill rule is honored, so output-pin holes and any other
// even-odd subpaths void the disc. The drawing is uniformly scaled and
// centered to fit the canvas, with Y flipped so +Y in the disc frame
// points up on screen.
func Preview(path *cycloid.Path, width, height int) *image.RGBA {
	w := width * supersample
	h := height * supersample

	big := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(big, big.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)

	subpaths := path.Transform(fitTransform(path, w, h)).Flatten(cycloid.FlattenTolerance * supersample)
	fill(big, subpaths, path.Rule, DiscColor)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)

	cycloid.Logger().Debug("preview rendered",
		"width", width, "height", height, "subpaths", len(subpaths))
	return out
}

// WritePNG renders the path and encodes it as PNG.
func WritePNG(w io.Writer, path *cycloid.Path, width, height int) error {
	img := Preview(path, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

// fitTransform maps the path's bounding box onto a w×h canvas, centered,
// uniformly scaled, and flipped vertically.
func fitTransform(path *cycloid.Path, w, h int) cycloid.Matrix {
	minPt, maxPt := pathBounds(path)
	spanX := maxPt.X - minPt.X
	spanY := maxPt.Y - minPt.Y
	if spanX <= 0 || spanY <= 0 {
		return cycloid.Identity()
	}

	usableW := float64(w) * (1 - 2*margin)
	usableH := float64(h) * (1 - 2*margin)
	scale := math.Min(usableW/spanX, usableH/spanY)

	cx := (minPt.X + maxPt.X) / 2
	cy := (minPt.Y + maxPt.Y) / 2

	// Center on origin, scale with Y flip, then center on the canvas.
	m := cycloid.Translate(float64(w)/2, float64(h)/2)
	m = m.Multiply(cycloid.Scale(scale, -scale))
	m = m.Multiply(cycloid.Translate(-cx, -cy))
	return m
}

// pathBounds returns the axis-aligned bounding box of the flattened path.
func pathBounds(path *cycloid.Path) (minPt, maxPt cycloid.Point) {
	minPt = cycloid.Pt(math.MaxFloat64, math.MaxFloat64)
	maxPt = cycloid.Pt(-math.MaxFloat64, -math.MaxFloat64)
	for _, sub := range path.Flatten(0) {
		for _, pt := range sub {
			minPt.X = math.Min(minPt.X, pt.X)
			minPt.Y = math.Min(minPt.Y, pt.Y)
			maxPt.X = math.Max(maxPt.X, pt.X)
			maxPt.Y = math.Max(maxPt.Y, pt.Y)
		}
	}
	return minPt, maxPt
}
