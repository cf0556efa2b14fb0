// Package render rasterizes assembled disc paths into preview images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/gearkit/cycloid"
)

// edge is a non-horizontal line segment prepared for scanline
// rasterization.
type edge struct {
	x0, y0 float64 // start, y0 < y1 after normalization
	x1, y1 float64
	dir    int // winding direction before normalization
}

// newEdge builds an edge from two points, normalizing so y0 < y1 while
// remembering the original direction for the non-zero rule.
func newEdge(p0, p1 cycloid.Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// xAt calculates the x coordinate at the given y coordinate.
func (e *edge) xAt(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// crossing is one edge intersection on the active scanline.
type crossing struct {
	x   float64
	dir int
}

// fill rasterizes the flattened subpaths onto dst with the given fill
// rule. All subpaths contribute edges to the same scanline pass, which
// is what lets even-odd hole subpaths void the disc outline.
func fill(dst *image.RGBA, subpaths [][]cycloid.Point, rule cycloid.FillRule, c color.RGBA) {
	var edges []edge
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64

	for _, pts := range subpaths {
		for i := 0; i+1 < len(pts); i++ {
			// Horizontal edges never cross a scanline center.
			if math.Abs(pts[i+1].Y-pts[i].Y) < 1e-9 {
				continue
			}
			e := newEdge(pts[i], pts[i+1])
			edges = append(edges, e)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
		}
	}
	if len(edges) == 0 {
		return
	}

	bounds := dst.Bounds()
	yStart := int(math.Floor(yMin))
	yEnd := int(math.Ceil(yMax))
	if yStart < bounds.Min.Y {
		yStart = bounds.Min.Y
	}
	if yEnd > bounds.Max.Y {
		yEnd = bounds.Max.Y
	}

	crossings := make([]crossing, 0, 32)
	for y := yStart; y < yEnd; y++ {
		scanY := float64(y) + 0.5
		crossings = crossings[:0]
		for i := range edges {
			if edges[i].y0 <= scanY && scanY < edges[i].y1 {
				crossings = append(crossings, crossing{x: edges[i].xAt(scanY), dir: edges[i].dir})
			}
		}
		if len(crossings) == 0 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

		if rule == cycloid.FillRuleNonZero {
			fillNonZero(dst, crossings, y, c)
		} else {
			fillEvenOdd(dst, crossings, y, c)
		}
	}
}

// fillNonZero fills spans where the winding number is non-zero.
func fillNonZero(dst *image.RGBA, crossings []crossing, y int, c color.RGBA) {
	winding := 0
	var x1 float64
	for _, cr := range crossings {
		if winding == 0 {
			x1 = cr.x
		}
		winding += cr.dir
		if winding == 0 {
			fillSpan(dst, x1, cr.x, y, c)
		}
	}
}

// fillEvenOdd fills between alternating crossing pairs.
func fillEvenOdd(dst *image.RGBA, crossings []crossing, y int, c color.RGBA) {
	for i := 0; i+1 < len(crossings); i += 2 {
		fillSpan(dst, crossings[i].x, crossings[i+1].x, y, c)
	}
}

// fillSpan fills a horizontal span of pixels, clipped to dst.
func fillSpan(dst *image.RGBA, xa, xb float64, y int, c color.RGBA) {
	bounds := dst.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	x1 := int(math.Round(xa))
	x2 := int(math.Round(xb))
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if x1 >= x2 {
		return
	}
	draw.Draw(dst, image.Rect(x1, y, x2, y+1), image.NewUniform(c), image.Point{}, draw.Src)
}
