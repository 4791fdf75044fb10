package hypergraph

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG draws an optional node-and-hyperedge-point diagram, per
// SPEC_FULL.md's C2 diagnostic: one circle per vertex, laid out on a single
// row, and one small square per hyperedge with polylines to its source and
// every sink. label(id) controls the text drawn next to each vertex circle
// (depgraph passes the option name).
//
// This is purely diagnostic: it never mutates the graph and its layout
// (a naive single row) is not meant to be aesthetically competitive with a
// real graph-layout engine.
func (g *Graph[V, E]) RenderSVG(w io.Writer, label func(id string) string) {
	const (
		rowY      = 80
		spacing   = 120
		radius    = 18
		edgeBoxSz = 10
	)

	verts := g.Vertices()
	width := spacing*(len(verts)+1) + 40
	height := 240

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	pos := make(map[string][2]int, len(verts))
	for i, v := range verts {
		x := spacing*(i+1) + 20
		pos[v.ID] = [2]int{x, rowY}
		canvas.Circle(x, rowY, radius, "fill:#eef;stroke:#335")
		name := v.ID
		if label != nil {
			name = label(v.ID)
		}
		canvas.Text(x, rowY+radius+16, name, "text-anchor:middle;font-size:11px")
	}

	edgeY := rowY + 90
	edgeIdx := 0
	for _, v := range verts {
		for _, e := range g.OutEdges(v.ID) {
			ex := pos[e.Source][0]
			ey := edgeY + (edgeIdx%3)*24
			edgeIdx++
			canvas.Rect(ex-edgeBoxSz/2, ey-edgeBoxSz/2, edgeBoxSz, edgeBoxSz, "fill:#633")
			canvas.Line(pos[e.Source][0], pos[e.Source][1], ex, ey, "stroke:#633")
			for _, sinkID := range e.Sinks {
				sp, ok := pos[sinkID]
				if !ok {
					continue
				}
				canvas.Line(ex, ey, sp[0], sp[1], "stroke:#633;stroke-dasharray:4,3")
			}
		}
	}
}
