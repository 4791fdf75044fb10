// Package depgraph specializes package hypergraph into the option
// dependency hypergraph described in SPEC_FULL.md §3–§4.3+4.1: vertices are
// *option.Option descriptors keyed by option name, hyperedges carry a
// condition.Condition.
//
// Package depgraph owns two things package hypergraph deliberately doesn't
// know about:
//
//   - Builder, a fluent construction surface (add_flag/add_choice/add_value/
//     add_multivalue plus the constraint_* family), grounded on
//     lvlath/builder's BuildGraph/Constructor/BuilderOption pattern.
//   - Check, the two-phase compliance-and-relevance evaluator a candidate
//     test context is run through before it's accepted into the enumerated
//     stream (package enumerator).
package depgraph
