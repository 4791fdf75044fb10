package depgraph

import (
	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/condition"
	"github.com/koldar/phdtester-go/hypergraph"
)

// evalEdge builds the Condition.Accept arguments from tc and evaluates them.
func evalEdge(tc *bundle.TestContext, edge *hypergraph.Hyperedge[condition.Condition]) condition.Outcome {
	sourceValue, _ := tc.Get(edge.Source)
	source := condition.Endpoint{Name: edge.Source, Value: sourceValue}

	sinks := make([]condition.Endpoint, 0, len(edge.Sinks))
	for _, s := range edge.Sinks {
		v, _ := tc.Get(s)
		sinks = append(sinks, condition.Endpoint{Name: s, Value: v})
	}
	return edge.Payload.Accept(tc, source, sinks)
}

// computeRelevantSet walks the IMPORTANT and NORMAL hyperedges to determine
// which options are relevant to tc, per SPEC_FULL.md §4.3. Returns
// (nil, false) if any REQUIRED edge REJECTs along the way.
func (g *Graph) computeRelevantSet(tc *bundle.TestContext) (map[string]struct{}, bool) {
	excludedFromSeed := map[string]struct{}{}
	for _, v := range g.Options() {
		for _, edge := range g.hg.InEdges(v.Name) {
			if edge.Payload.Priority() == condition.Important {
				excludedFromSeed[v.Name] = struct{}{}
			}
		}
	}

	relevant := map[string]struct{}{}
	var queue []string
	for _, v := range g.Options() {
		if _, excluded := excludedFromSeed[v.Name]; excluded {
			continue
		}
		relevant[v.Name] = struct{}{}
		queue = append(queue, v.Name)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		for _, edge := range g.hg.OutEdges(name) {
			if edge.Payload.Priority() == condition.EssentialToRun {
				continue
			}
			outcome := evalEdge(tc, edge)
			switch outcome {
			case condition.NotRelevant:
				continue
			case condition.REJECT:
				if edge.Payload.IsRequired() {
					return nil, false
				}
			case condition.SUCCESS:
				if !edge.Payload.EnableSinkVisit() {
					continue
				}
				for _, sink := range edge.Sinks {
					if _, ok := relevant[sink]; ok {
						continue
					}
					relevant[sink] = struct{}{}
					queue = append(queue, sink)
				}
			}
		}
	}
	return relevant, true
}

// pruneToRelevant clones tc and nulls out every option not in relevant.
func pruneToRelevant(tc *bundle.TestContext, relevant map[string]struct{}) *bundle.TestContext {
	clone := tc.Clone()
	for _, name := range clone.Names() {
		if _, ok := relevant[name]; !ok {
			_ = clone.Set(name, nil)
		}
	}
	return clone
}
