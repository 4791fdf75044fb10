// Package condition implements the evaluable predicates that label each
// hyperedge of an option dependency graph (package depgraph). A Condition
// takes the hyperedge's source name/value and its sinks' name/value pairs,
// plus the whole test context for context-sensitive checks, and returns one
// of three outcomes: SUCCESS, REJECT, or NOT_RELEVANT.
//
// Predicates passed to the built-in conditions (NeedsToHappen, CantHappen)
// are represented as the single-method Predicate interface rather than bare
// closures, and composed via And/Or/Not, per SPEC_FULL.md §9's
// "callable-as-value" redesign note — this keeps conditions inspectable and
// easy to name in diagnostics instead of opaque func values.
package condition
