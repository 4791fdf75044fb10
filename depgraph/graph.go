package depgraph

import (
	"io"

	"github.com/koldar/phdtester-go/condition"
	"github.com/koldar/phdtester-go/hypergraph"
	"github.com/koldar/phdtester-go/option"
)

// Graph is the option dependency hypergraph: vertices are *option.Option
// keyed by option name, hyperedges carry a condition.Condition. Built once
// via Builder.Build and never mutated afterward.
type Graph struct {
	hg *hypergraph.Graph[*option.Option, condition.Condition]
}

// Option returns the descriptor for name.
func (g *Graph) Option(name string) (*option.Option, bool) {
	v, ok := g.hg.GetVertex(name)
	if !ok {
		return nil, false
	}
	return v.Payload, true
}

// Options returns every declared option, in declaration order.
func (g *Graph) Options() []*option.Option {
	verts := g.hg.Vertices()
	out := make([]*option.Option, 0, len(verts))
	for _, v := range verts {
		out = append(out, v.Payload)
	}
	return out
}

// OptionsByBelonging filters Options by the given belonging, preserving
// declaration order.
func (g *Graph) OptionsByBelonging(b option.Belonging) []*option.Option {
	var out []*option.Option
	for _, o := range g.Options() {
		if o.Belonging == b {
			out = append(out, o)
		}
	}
	return out
}

// RenderSVG draws the diagnostic hypergraph layout described in
// SPEC_FULL.md's C2 section; it never mutates the graph.
func (g *Graph) RenderSVG(w io.Writer) {
	g.hg.RenderSVG(w, func(id string) string { return id })
}
