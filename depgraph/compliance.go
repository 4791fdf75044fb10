package depgraph

import (
	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/condition"
)

// Check runs a candidate test context through the two-phase
// compliance-and-relevance evaluator described in SPEC_FULL.md §4.3.
//
// Phase 1 (checkEssential) rejects outright candidates that fail any
// ESSENTIAL_TO_RUN constraint — a cheap pre-filter evaluated against the raw,
// unpruned candidate, since no relevance set exists yet at this point.
//
// Phase 2 (computeRelevantSet) seeds a breadth-first walk (a FIFO queue)
// from every option that is not the
// sink of an IMPORTANT edge, then walks IMPORTANT and NORMAL edges in
// insertion order, failing the whole candidate on any REQUIRED+REJECT,
// growing the relevant set on SUCCESS+EnableSinkVisit, and ignoring
// NOT_RELEVANT edges entirely.
//
// On success, Check returns a clone of tc with every option outside the
// relevant set pruned to null, and true. On failure it returns (nil, false).
func (g *Graph) Check(tc *bundle.TestContext) (*bundle.TestContext, bool) {
	if !g.checkEssential(tc) {
		return nil, false
	}
	relevant, ok := g.computeRelevantSet(tc)
	if !ok {
		return nil, false
	}
	return pruneToRelevant(tc, relevant), true
}

func (g *Graph) checkEssential(tc *bundle.TestContext) bool {
	for _, v := range g.Options() {
		for _, edge := range g.hg.OutEdges(v.Name) {
			if edge.Payload.Priority() != condition.EssentialToRun {
				continue
			}
			outcome := evalEdge(tc, edge)
			if edge.Payload.IsRequired() && outcome == condition.REJECT {
				return false
			}
		}
	}
	return true
}
