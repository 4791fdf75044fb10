package condition

import "github.com/koldar/phdtester-go/bundle"

// SimplePairCondition is a condition between exactly two options (one source,
// one sink). Its predicate is always relevant: the outcome is SUCCESS or
// REJECT, never NOT_RELEVANT.
type SimplePairCondition struct {
	base
	Eval func(sourceValue, sinkValue interface{}) bool
}

// NewSimplePairCondition builds a SimplePairCondition.
func NewSimplePairCondition(enableSinkVisit, required bool, priority Priority, eval func(sourceValue, sinkValue interface{}) bool) *SimplePairCondition {
	return &SimplePairCondition{base: base{enableSinkVisit, required, priority}, Eval: eval}
}

func (c *SimplePairCondition) Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome {
	if len(sinks) != 1 {
		// A malformed hyperedge: this condition type requires a simple edge.
		// Treated as a hard rejection rather than a panic.
		return REJECT
	}
	if c.Eval(source.Value, sinks[0].Value) {
		return SUCCESS
	}
	return REJECT
}

// NeedsToHappen is SUCCESS iff the given Predicate holds over source+sinks.
type NeedsToHappen struct {
	base
	Predicate Predicate
}

func NewNeedsToHappen(enableSinkVisit, required bool, priority Priority, p Predicate) *NeedsToHappen {
	return &NeedsToHappen{base: base{enableSinkVisit, required, priority}, Predicate: p}
}

func (c *NeedsToHappen) Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome {
	if c.Predicate.Eval(allEndpoints(source, sinks)) {
		return SUCCESS
	}
	return REJECT
}

// CantHappen is SUCCESS iff the given Predicate does NOT hold over
// source+sinks — a compliant context is required to invalidate it.
type CantHappen struct {
	base
	Predicate Predicate
}

func NewCantHappen(enableSinkVisit, required bool, priority Priority, p Predicate) *CantHappen {
	return &CantHappen{base: base{enableSinkVisit, required, priority}, Predicate: p}
}

func (c *CantHappen) Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome {
	if c.Predicate.Eval(allEndpoints(source, sinks)) {
		return REJECT
	}
	return SUCCESS
}

// RequiresMapping is SUCCESS iff every sink value equals mapping(source
// value); any null endpoint (source or any sink) is REJECT. Preserves the
// original's documented edge case (SPEC_FULL.md §9 Open Questions): when the
// source is non-null but every sink is null, the outcome is REJECT, never
// NOT_RELEVANT.
type RequiresMapping struct {
	base
	Mapping func(sourceValue interface{}) interface{}
}

func NewRequiresMapping(enableSinkVisit, required bool, priority Priority, mapping func(interface{}) interface{}) *RequiresMapping {
	return &RequiresMapping{base: base{enableSinkVisit, required, priority}, Mapping: mapping}
}

func (c *RequiresMapping) Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome {
	if source.Value == nil {
		return REJECT
	}
	for _, sink := range sinks {
		if sink.Value == nil {
			return REJECT
		}
		if c.Mapping(source.Value) != sink.Value {
			return REJECT
		}
	}
	return SUCCESS
}

// InSetImpliesNotNullSink is REJECT if source is in allowedValues and any
// sink is null, SUCCESS if source is in allowedValues and every sink is
// non-null, and NOT_RELEVANT if source is outside allowedValues.
type InSetImpliesNotNullSink struct {
	base
	AllowedValues []interface{}
}

func NewInSetImpliesNotNullSink(enableSinkVisit, required bool, priority Priority, allowed []interface{}) *InSetImpliesNotNullSink {
	return &InSetImpliesNotNullSink{base: base{enableSinkVisit, required, priority}, AllowedValues: allowed}
}

func (c *InSetImpliesNotNullSink) Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome {
	inSet := false
	for _, v := range c.AllowedValues {
		if v == source.Value {
			inSet = true
			break
		}
	}
	if !inSet {
		return NotRelevant
	}
	for _, sink := range sinks {
		if sink.Value == nil {
			return REJECT
		}
	}
	return SUCCESS
}

func allEndpoints(source Endpoint, sinks []Endpoint) []Endpoint {
	out := make([]Endpoint, 0, len(sinks)+1)
	out = append(out, source)
	out = append(out, sinks...)
	return out
}
