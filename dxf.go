package cycloid

import (
	"bufio"
	"fmt"
	"io"
)

// Entity layer names used in the exported document.
const (
	profileLayer = "CycloidProfile"
	boreLayer    = "CenterHole"
)

// ExportDXF serializes an already-offset profile point sequence and the
// expanded center bore into a minimal DXF interchange document: one
// ENTITIES section holding a closed POLYLINE for the profile and a
// CIRCLE for the bore, terminated by an EOF marker. All numeric fields
// are written at four decimal places. The document is self-contained and
// references nothing external.
func ExportDXF(w io.Writer, pts []ProfilePoint, p Parameters) error {
	bw := bufio.NewWriter(w)
	d := dxfWriter{w: bw}

	d.tag(0, "SECTION")
	d.tag(2, "ENTITIES")

	d.tag(0, "POLYLINE")
	d.tag(8, profileLayer)
	d.tag(66, "1") // vertices follow
	d.tag(70, "1") // closed polyline
	for _, pt := range pts {
		d.tag(0, "VERTEX")
		d.tag(8, profileLayer)
		d.num(10, pt.Pos.X)
		d.num(20, pt.Pos.Y)
		d.num(30, 0)
	}
	d.tag(0, "SEQEND")

	d.tag(0, "CIRCLE")
	d.tag(8, boreLayer)
	d.num(10, 0)
	d.num(20, 0)
	d.num(30, 0)
	d.num(40, p.HoleRadius+p.HoleTolerance)

	d.tag(0, "ENDSEC")
	d.tag(0, "EOF")

	if d.err != nil {
		return fmt.Errorf("export dxf: %w", d.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export dxf: %w", err)
	}
	return nil
}

// dxfWriter emits DXF group code / value pairs, remembering the first
// write error so call sites stay flat.
type dxfWriter struct {
	w   io.Writer
	err error
}

func (d *dxfWriter) tag(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%d\n%s\n", code, value)
}

func (d *dxfWriter) num(code int, value float64) {
	d.tag(code, fmt.Sprintf("%.4f", value))
}
